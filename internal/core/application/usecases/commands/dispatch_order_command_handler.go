package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

var (
	ErrNoPendingOrders  = errors.New("no pending orders found")
	ErrNoFreeDeliverers = errors.New("no free deliverers found")
)

// DispatchOrderCommandHandler orchestrates automatic order assignment.
// Finds the oldest pending order, ranks the free deliverers by transport
// speed through DelivererDispatcher, and claims the order for the winner
// using the same atomic claim a manual deliverer would go through.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(orders, deliverers, transports)
//	err := handler.Handle(ctx, NewDispatchOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("nothing to dispatch")
//	case errors.Is(err, ErrNoFreeDeliverers):
//	    log.Println("all deliverers are busy")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchOrderCommandHandler struct {
	orders     ports.CustomerOrderRepository
	deliverers ports.DelivererRepository
	transports ports.TransportRepository
}

// NewDispatchOrderCommandHandler creates a handler for dispatch rounds.
func NewDispatchOrderCommandHandler(
	orders ports.CustomerOrderRepository,
	deliverers ports.DelivererRepository,
	transports ports.TransportRepository,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		orders:     orders,
		deliverers: deliverers,
		transports: transports,
	}
}

// Handle processes one dispatch round.
// Returns ErrNoPendingOrders when the pool is empty and ErrNoFreeDeliverers
// when every deliverer already has an active order.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, command DispatchOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	order, err := h.orders.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	all, err := h.deliverers.GetAll(ctx)
	if err != nil {
		return err
	}

	free := make([]*deliverer.Deliverer, 0, len(all))
	for _, d := range all {
		active, activeErr := h.orders.GetInProcessByDeliverer(ctx, d.ID())
		if activeErr != nil {
			return activeErr
		}
		if len(active) == 0 {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		return ErrNoFreeDeliverers
	}

	transports, err := h.transports.GetAll(ctx)
	if err != nil {
		return err
	}

	best, err := services.NewDelivererDispatcher().Dispatch(order, free, transports)
	if err != nil {
		return err
	}

	_, err = h.orders.Claim(ctx, order.ID(), best.ID())
	return err
}
