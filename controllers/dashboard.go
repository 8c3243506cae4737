// controllers/dashboard.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restobook-backend/config"
	"restobook-backend/models"
	"restobook-backend/services"
	"restobook-backend/utils"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
	revenueWindowDays = 30
)

type dashboardResponse struct {
	services.DashboardStats
	TotalReservations   int `json:"totalReservations"`
	PendingReservations int `json:"pendingReservations"`
	TodayReservations   int `json:"todayReservations"`
	TotalCustomers      int `json:"totalCustomers"`
}

// GetDashboardStats returns the admin dashboard snapshot. The result is a
// pure function of the current order and reservation sets, cached briefly in
// Redis; when Redis is down the stats are computed on every request.
func GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := readDashboardCache(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Order store unavailable")
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Reservation store unavailable")
		return
	}

	resp := dashboardResponse{
		DashboardStats: services.ComputeDashboardStats(orders, revenueWindowDays, time.Now()),
		TotalCustomers: len(services.ComputeCustomers(orders)),
	}

	today := utils.BeginningOfDayUTC(time.Now())
	for _, r := range reservations {
		resp.TotalReservations++
		if r.Status == models.ReservationPending {
			resp.PendingReservations++
		}
		if utils.BeginningOfDayUTC(r.Date).Equal(today) {
			resp.TodayReservations++
		}
	}

	writeDashboardCache(ctx, resp)
	c.JSON(http.StatusOK, resp)
}

func readDashboardCache(ctx context.Context) (dashboardResponse, bool) {
	var resp dashboardResponse
	if config.Redis == nil {
		return resp, false
	}
	raw, err := config.Redis.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, false
	}
	return resp, true
}

func writeDashboardCache(ctx context.Context, resp dashboardResponse) {
	if config.Redis == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	// Cache errors are ignored; the next request recomputes.
	config.Redis.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL)
}
