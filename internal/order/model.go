package order

import (
	"strings"
	"time"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Business rule limits on a single order.
const (
	MaxQuantity      = 1000
	MaxItemsPerOrder = 100
)

var validStatuses = map[OrderStatus]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// ParseStatus resolves a status name case-insensitively. Any recognized
// status may follow any other; there is no transition graph.
func ParseStatus(name string) (OrderStatus, error) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(name)))
	if !validStatuses[st] {
		return "", apperr.Newf(apperr.Invalid, "invalid order status: %s", name)
	}
	return st, nil
}

// OrderItem is append-only history: created during order placement, mutated
// only through status updates, never deleted. UnitPrice is a snapshot of the
// catalog price at placement time.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	UserID    uint
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

type Order struct {
	ID         uint
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	Items      []OrderItem
}

type OrderItemRequest struct {
	ProductID uint
	Quantity  int
}

// OrderRequest is the inbound placement payload. A strictly positive
// TotalPrice overrides the computed sum of line totals.
type OrderRequest struct {
	Items      []OrderItemRequest
	TotalPrice *decimal.Decimal
}
