package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports store reachability.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Timestamp string `json:"timestamp"`
}

// Check performs one trivial store read and reports status and latency.
func (h *HealthHandler) Check(c echo.Context) error {
	start := time.Now()
	var one int
	err := h.db.WithContext(c.Request().Context()).Raw("SELECT 1").Scan(&one).Error
	latency := time.Since(start).Milliseconds()

	resp := HealthResponse{
		Status:    "ok",
		LatencyMS: latency,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		resp.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
