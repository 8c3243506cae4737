// controllers/menuitem.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/utils"
)

// CreateMenuItemInput defines the expected JSON structure for creating a menu item
type CreateMenuItemInput struct {
	CategoryID   uuid.UUID `json:"categoryId" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" binding:"required,min=0"`
	ImageURL     string    `json:"imageUrl"`
	IsFeatured   bool      `json:"isFeatured"`
	DisplayOrder int       `json:"displayOrder"`
}

// UpdateMenuItemInput defines the expected JSON structure for updating a menu item
type UpdateMenuItemInput struct {
	CategoryID   *uuid.UUID `json:"categoryId"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Price        *float64   `json:"price" binding:"omitempty,min=0"`
	ImageURL     *string    `json:"imageUrl"`
	IsFeatured   *bool      `json:"isFeatured"`
	IsAvailable  *bool      `json:"isAvailable"`
	DisplayOrder *int       `json:"displayOrder"`
}

// CreateMenuItem creates a new menu item under an existing category
func CreateMenuItem(c *gin.Context) {
	var input CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate category exists
	var category models.Category
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	item := models.MenuItem{
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		IsFeatured:   input.IsFeatured,
		IsAvailable:  true,
		DisplayOrder: input.DisplayOrder,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create menu item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetMenu returns the public menu: active categories with their available items
func GetMenu(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).
		Order("display_order, name").
		Preload("MenuItems", "is_available = ?", true).
		Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Failed to retrieve menu")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetFeaturedItems returns available menu items flagged as featured
func GetFeaturedItems(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Where("is_featured = ? AND is_available = ?", true, true).
		Order("display_order, name").
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Failed to retrieve featured items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMenuItems retrieves all menu items for the back office
func GetMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Order("display_order, name")
	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Failed to retrieve menu items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateMenuItem updates an existing menu item
func UpdateMenuItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}

	var input UpdateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Menu item not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update menu item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem soft-deletes a menu item
func DeleteMenuItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Menu item not found")
		} else {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
