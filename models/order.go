package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. preparing/ready only make sense after the kitchen accepted
// the order; completed and cancelled are terminal.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	FulfillmentPickup   = "pickup"
	FulfillmentDelivery = "delivery"
)

var orderTransitions = map[string][]string{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted, OrderCancelled},
}

// IsOrderStatus reports whether s is one of the known order statuses.
func IsOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionOrder reports whether an order in status from may move to status to.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOrderOpen reports whether the order still needs kitchen attention and
// therefore counts as pending work on the dashboard.
func IsOrderOpen(status string) bool {
	return status == OrderPending || status == OrderConfirmed || status == OrderPreparing
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderNumber string    `gorm:"uniqueIndex;not null"` // human-readable, e.g. ORD-20240325-A1B2C3

	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"index;not null"`
	CustomerPhone string

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	// Total = sum(item UnitPrice*Quantity) + DeliveryFee, recomputed server-side.
	Total       float64 `gorm:"type:decimal(10,2);not null"`
	DeliveryFee float64 `gorm:"type:decimal(10,2);default:0.0"`

	Status          string `gorm:"type:varchar(20);index;not null;default:'pending'"`
	FulfillmentType string `gorm:"type:varchar(20);not null"` // pickup or delivery
	DeliveryAddress string // present iff FulfillmentType is delivery

	PaymentMethod string
	PaymentLast4  string `gorm:"type:varchar(4)"`

	EstimatedReadyAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null"`

	MenuItemID   uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"not null"`
	UnitPrice    float64   `gorm:"type:decimal(10,2);not null"`
	Quantity     int       `gorm:"default:1"`
	Instructions string    `gorm:"type:text"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
