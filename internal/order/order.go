package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observed order statuses. The column is free text; these are the values the
// frontend writes.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Order is a purchase header together with its line items. Header and items
// are only ever written atomically; readers never see one without the other.
type Order struct {
	OrderID                      int         `json:"orderId"`
	RetailerID                   int         `json:"retailerId"`
	RegionalDistributionCenterID int         `json:"regionalDistributionCenterId"`
	EstimatedDeliveryDate        time.Time   `json:"estimatedDeliveryDate"`
	OrderStatus                  string      `json:"orderStatus"`
	CreatedDate                  time.Time   `json:"createdDate"`
	CreatedBy                    string      `json:"createdBy"`
	UpdatedDate                  *time.Time  `json:"updatedDate,omitempty"`
	UpdatedBy                    *string     `json:"updatedBy,omitempty"`
	Items                        []OrderItem `json:"items"`
}

// OrderItem is one line of an order. Total is quantity * unitPrice, computed
// by the repository at write time.
type OrderItem struct {
	OrderItemID int             `json:"orderItemId"`
	OrderID     int             `json:"orderId"`
	ProductID   int             `json:"productId"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}
