// controllers/order.go
package controllers

import (
	"errors"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/utils"
)

// OrderItemInput defines the structure for an order line item
type OrderItemInput struct {
	MenuItemID   uuid.UUID `json:"menuItemId" binding:"required"`
	Quantity     int       `json:"quantity" binding:"min=1"`
	Instructions string    `json:"instructions"`
}

// CreateOrderInput defines the expected JSON structure for placing an order
type CreateOrderInput struct {
	Name            string           `json:"name" binding:"required"`
	Email           string           `json:"email" binding:"required,email"`
	Phone           string           `json:"phone"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1"`
	FulfillmentType string           `json:"fulfillmentType" binding:"required,oneof=pickup delivery"`
	DeliveryAddress string           `json:"deliveryAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentLast4    string           `json:"paymentLast4" binding:"omitempty,len=4"`
}

// UpdateOrderStatusInput defines the staff-initiated status change
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places a public order. Prices and the total are taken from the
// menu, never from the client.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FulfillmentType == models.FulfillmentDelivery && input.DeliveryAddress == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Delivery orders require a delivery address")
		return
	}
	if input.FulfillmentType == models.FulfillmentPickup {
		input.DeliveryAddress = ""
	}

	// Validate items against the menu and price the order
	var total float64
	var orderItems []models.OrderItem

	for _, item := range input.Items {
		var menuItem models.MenuItem
		if err := config.DB.Where("id = ? AND is_available = ?", item.MenuItemID, true).
			First(&menuItem).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Menu item not found: "+item.MenuItemID.String())
			} else {
				utils.RespondWithError(c, http.StatusServiceUnavailable, "Database error")
			}
			return
		}

		total += menuItem.Price * float64(item.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID:   menuItem.ID,
			Name:         menuItem.Name,
			UnitPrice:    menuItem.Price,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		})
	}

	deliveryFee := 0.0
	if input.FulfillmentType == models.FulfillmentDelivery {
		deliveryFee = deliveryFeeFromEnv()
	}
	total = math.Round((total+deliveryFee)*100) / 100

	estimatedReady := time.Now().Add(estimatedPrepTime(len(orderItems)))

	order := models.Order{
		OrderNumber:      "ORD-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		CustomerName:     input.Name,
		CustomerEmail:    utils.NormalizeEmail(input.Email),
		CustomerPhone:    input.Phone,
		Items:            orderItems,
		Total:            total,
		DeliveryFee:      deliveryFee,
		Status:           models.OrderPending,
		FulfillmentType:  input.FulfillmentType,
		DeliveryAddress:  input.DeliveryAddress,
		PaymentMethod:    input.PaymentMethod,
		PaymentLast4:     input.PaymentLast4,
		EstimatedReadyAt: &estimatedReady,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrderByNumber lets a guest look up their order
func GetOrderByNumber(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").
		First(&order, "order_number = ?", c.Param("number")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrders lists orders for the back office, optionally filtered by status
func GetOrders(c *gin.Context) {
	query := config.DB.Preload("Items").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !models.IsOrderStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown order status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus applies a staff-initiated status change, enforcing the
// order transition graph. Terminal orders reject any further change.
func UpdateOrderStatus(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// An unknown status string is a malformed request, not an illegal
	// transition.
	if !models.IsOrderStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown order status")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		}
		return
	}

	if !models.CanTransitionOrder(order.Status, input.Status) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity,
			"Status change not allowed from the current status")
		return
	}

	order.Status = input.Status
	if err := config.DB.Model(&order).Update("status", order.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

func deliveryFeeFromEnv() float64 {
	if v := os.Getenv("DELIVERY_FEE"); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil && fee >= 0 {
			return fee
		}
	}
	return 4.99
}

// estimatedPrepTime gives a rough kitchen estimate scaled by order size.
func estimatedPrepTime(itemCount int) time.Duration {
	minutes := 20 + 5*itemCount
	if minutes > 60 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
