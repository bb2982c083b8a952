package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/deliverer"

	"github.com/google/uuid"
)

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest selects a food from a branch's menu.
type AddCartItemRequest struct {
	BranchID uuid.UUID `json:"branch_id"`
	FoodID   uuid.UUID `json:"food_id"`
	Quantity int       `json:"quantity"`
}

// AddCartItemResponse reports the resulting line and whether adding the food
// replaced a cart opened for a different brand.
type AddCartItemResponse struct {
	CartID       uuid.UUID `json:"cart_id"`
	CartReplaced bool      `json:"cart_replaced"`
	Line         CartLine  `json:"line"`
}

// CartLine is one line of a cart: a food, a quantity, and the line total.
type CartLine struct {
	ID       uuid.UUID `json:"id"`
	FoodID   uuid.UUID `json:"food_id"`
	Quantity int       `json:"quantity"`
	Price    string    `json:"price"`
}

// OpenCart is the user's open cart with its lines and running total.
type OpenCart struct {
	CartID   uuid.UUID  `json:"cart_id"`
	BranchID uuid.UUID  `json:"branch_id"`
	Lines    []CartLine `json:"lines"`
	Total    string     `json:"total"`
}

// ConfirmOrderRequest turns the open cart into a confirmed order.
type ConfirmOrderRequest struct {
	AddressID   uuid.UUID `json:"address_id"`
	PaymentType string    `json:"payment_type"`
}

// DelivererAction identifies the deliverer acting on an order: claiming it,
// confirming pickup, or completing the delivery.
type DelivererAction struct {
	DelivererID uuid.UUID `json:"deliverer_id"`
}

// FailDeliveryRequest marks a claimed order as failed with a reason.
type FailDeliveryRequest struct {
	DelivererID uuid.UUID `json:"deliverer_id"`
	Reason      string    `json:"reason"`
}

// Order is a customer order in API responses. Optional fields are absent for
// carts that were never confirmed or claimed.
type Order struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	BranchID    uuid.UUID  `json:"branch_id"`
	CreatedAt   time.Time  `json:"created_at"`
	Status      string     `json:"status"`
	Price       *string    `json:"price,omitempty"`
	PaymentType *string    `json:"payment_type,omitempty"`
	DelivererID *uuid.UUID `json:"deliverer_id,omitempty"`
}

// NewBrand creates a brand.
type NewBrand struct {
	Name string `json:"name"`
}

// Brand is a restaurant brand in API responses.
type Brand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewBranch creates a branch of an existing brand.
type NewBranch struct {
	BrandID uuid.UUID `json:"brand_id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// Branch is a brand's outlet in API responses.
type Branch struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

// NewCategory creates a menu category.
type NewCategory struct {
	Name string `json:"name"`
}

// Category is a menu category in API responses.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewFood creates a food with its unit price.
type NewFood struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Food is a dish in API responses; the price is the unit price.
type Food struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price string    `json:"price"`
}

// NewFoodBrandMapping puts a food on a brand's menu under a category.
type NewFoodBrandMapping struct {
	FoodID   uuid.UUID `json:"food_id"`
	BrandID  uuid.UUID `json:"brand_id"`
	Category string    `json:"category"`
}

// FoodBrandMapping is a menu entry in API responses.
type FoodBrandMapping struct {
	ID       uuid.UUID `json:"id"`
	FoodID   uuid.UUID `json:"food_id"`
	BrandID  uuid.UUID `json:"brand_id"`
	Category string    `json:"category"`
}

// NewUser registers a user.
type NewUser struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// User is a registered user in API responses.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// NewAddress adds a delivery address for a user.
type NewAddress struct {
	UserID uuid.UUID `json:"user_id"`
	Text   string    `json:"text"`
}

// Address is a delivery address in API responses.
type Address struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Text   string    `json:"text"`
}

// NewDeliverer registers a deliverer riding an existing transport.
type NewDeliverer struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TransportID uuid.UUID `json:"transport_id"`
}

// Deliverer is a registered deliverer in API responses.
type Deliverer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	TransportID uuid.UUID `json:"transport_id"`
}

// NewTransport registers a transport with its speed.
type NewTransport struct {
	Name  string `json:"name"`
	Speed int    `json:"speed"`
}

// Transport is a transport in API responses.
type Transport struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Speed int       `json:"speed"`
}

func cartLineFromQuery(line queries.CartLineResponse) CartLine {
	return CartLine{
		ID:       line.ID.Bytes(),
		FoodID:   line.FoodID.Bytes(),
		Quantity: line.Quantity,
		Price:    line.Price.String(),
	}
}

func cartLinesFromQuery(lines []queries.CartLineResponse) []CartLine {
	out := make([]CartLine, len(lines))
	for i, line := range lines {
		out[i] = cartLineFromQuery(line)
	}
	return out
}

func orderFromQuery(resp queries.OrderResponse) Order {
	order := Order{
		ID:          resp.ID.Bytes(),
		UserID:      resp.UserID.Bytes(),
		BranchID:    resp.BranchID.Bytes(),
		CreatedAt:   resp.CreatedAt,
		Status:      resp.Status,
		PaymentType: resp.PaymentType,
	}
	if resp.Price != nil {
		price := resp.Price.String()
		order.Price = &price
	}
	if resp.DelivererID != nil {
		id := resp.DelivererID.Bytes()
		order.DelivererID = &id
	}
	return order
}

func ordersFromQuery(responses []queries.OrderResponse) []Order {
	out := make([]Order, len(responses))
	for i, resp := range responses {
		out[i] = orderFromQuery(resp)
	}
	return out
}

func brandFromDomain(b *catalog.Brand) Brand {
	return Brand{ID: b.ID().Bytes(), Name: b.Name()}
}

func branchFromDomain(b *catalog.Branch) Branch {
	return Branch{
		ID:      b.ID().Bytes(),
		BrandID: b.BrandID().Bytes(),
		Name:    b.Name(),
		Address: b.Address(),
	}
}

func categoryFromDomain(c *catalog.Category) Category {
	return Category{ID: c.ID().Bytes(), Name: c.Name()}
}

func foodFromDomain(f *catalog.Food) Food {
	return Food{ID: f.ID().Bytes(), Name: f.Name(), Price: f.Price().String()}
}

func mappingFromDomain(m *catalog.FoodBrandMapping) FoodBrandMapping {
	return FoodBrandMapping{
		ID:       m.ID().Bytes(),
		FoodID:   m.FoodID().Bytes(),
		BrandID:  m.BrandID().Bytes(),
		Category: m.CategoryName(),
	}
}

func userFromDomain(u *account.User) User {
	return User{ID: u.ID().Bytes(), Name: u.Name(), Phone: u.Phone()}
}

func addressFromDomain(a *account.Address) Address {
	return Address{ID: a.ID().Bytes(), UserID: a.UserID().Bytes(), Text: a.Text()}
}

func delivererFromDomain(d *deliverer.Deliverer) Deliverer {
	return Deliverer{
		ID:          d.ID().Bytes(),
		Name:        d.Name(),
		Phone:       d.Phone(),
		TransportID: d.TransportID().Bytes(),
	}
}

func transportFromDomain(t *deliverer.Transport) Transport {
	return Transport{ID: t.ID().Bytes(), Name: t.Name(), Speed: t.Speed()}
}
