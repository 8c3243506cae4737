// controllers/customer.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/services"
	"restobook-backend/utils"
)

// Customers are not stored: they are derived at read time by grouping orders
// on normalized email. The admin views below are thin wrappers around
// services.ComputeCustomers.

// GetCustomers lists derived customers, most recently active first
func GetCustomers(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		return
	}

	c.JSON(http.StatusOK, services.ComputeCustomers(orders))
}

// GetCustomer returns the rollup for one normalized email address
func GetCustomer(c *gin.Context) {
	email := utils.NormalizeEmail(c.Param("email"))
	if email == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email required")
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("LOWER(TRIM(customer_email)) = ?", email).
		Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		return
	}

	customers := services.ComputeCustomers(orders)
	if len(customers) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, customers[0])
}
