package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"qport/models"
	"qport/services/booking"
	"qport/utils"
)

const (
	slotCacheKey = "demo:slots"
	slotCacheTTL = 60 * time.Second
)

// SlotsHandler serves the generated demo-slot set to the booking widget.
// Responses are briefly cached in Redis when a cache client is available;
// without one every request computes the set directly.
type SlotsHandler struct {
	Cache *redis.Client
}

// NewSlotsHandler creates a handler with an optional cache client.
func NewSlotsHandler(cache *redis.Client) *SlotsHandler {
	return &SlotsHandler{Cache: cache}
}

// GetSlots handles GET /api/demo-slots.
func (h *SlotsHandler) GetSlots(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, slotCacheKey).Result(); err == nil {
			var buckets []models.DayBucket
			if err := json.Unmarshal([]byte(cached), &buckets); err == nil {
				c.JSON(http.StatusOK, gin.H{"days": buckets})
				return
			}
		}
	}

	buckets := booking.GenerateSlots(time.Now())

	if h.Cache != nil {
		if payload, err := json.Marshal(buckets); err == nil {
			if err := h.Cache.Set(ctx, slotCacheKey, payload, slotCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache demo slots", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"days": buckets})
}
