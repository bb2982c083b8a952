package services

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"
)

// ErrDelivererNotFound is returned when no suitable deliverer is available
// for a pending order: either none were offered, or none of them has a known
// transport to rank by.
var ErrDelivererNotFound = errors.New("deliverer not found")

// DelivererDispatcher is a domain service that selects the best free
// deliverer for a confirmed order waiting in the pool.
//
// Selection ranks candidates by the speed of their transport and picks the
// fastest one. Candidates whose transport is unknown cannot be ranked and are
// skipped. The dispatcher only selects; claiming the order is the caller's
// responsibility, so the compare-and-swap against concurrent claims stays in
// one place.
type DelivererDispatcher struct{}

// NewDelivererDispatcher creates a new DelivererDispatcher instance.
func NewDelivererDispatcher() DelivererDispatcher {
	return DelivererDispatcher{}
}

// Dispatch picks the fastest free deliverer for the given order.
// The order must be in the claimable state: confirmed, waiting for a
// deliverer, with nobody assigned yet. Transports are the speed lookup for
// the candidates.
//
// Returns ErrDelivererNotFound if no candidate can be ranked.
func (d DelivererDispatcher) Dispatch(
	order *cart.CustomerOrder,
	candidates []*deliverer.Deliverer,
	transports []*deliverer.Transport,
) (*deliverer.Deliverer, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if order.Status() != cart.LookingForDeliverer || order.DelivererID() != nil {
		return nil, errors.New("order is not waiting for a deliverer")
	}

	speedByTransport := make(map[kernel.UUID]int, len(transports))
	for _, t := range transports {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		speedByTransport[t.ID()] = t.Speed()
	}

	var best *deliverer.Deliverer
	bestSpeed := 0
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		speed, ok := speedByTransport[candidate.TransportID()]
		if !ok {
			continue
		}
		if best == nil || speed > bestSpeed {
			best = candidate
			bestSpeed = speed
		}
	}

	if best == nil {
		return nil, ErrDelivererNotFound
	}
	return best, nil
}
