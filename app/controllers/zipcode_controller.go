package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/app/requests"
	"github.com/zipcodetw/zipcodetw/app/responses"
	"github.com/zipcodetw/zipcodetw/internal/cache"
	"github.com/zipcodetw/zipcodetw/internal/zipaddr"
	"github.com/zipcodetw/zipcodetw/internal/zipdir"
)

// ZipcodeController serves address-to-zipcode lookups.
type ZipcodeController struct {
	lookup *zipdir.Lookup
	cache  cache.Cache
	logger *zap.Logger
}

// NewZipcodeController wires a Lookup and an optional cache (nil disables
// caching) behind the controller.
func NewZipcodeController(lookup *zipdir.Lookup, c cache.Cache, logger *zap.Logger) *ZipcodeController {
	return &ZipcodeController{lookup: lookup, cache: c, logger: logger}
}

// Find handles GET /v1/zipcode?address=...
func (zc *ZipcodeController) Find(c *gin.Context) {
	var req requests.ZipcodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	start := time.Now()
	key := zipaddr.NewStandardAddress(req.Address).Flat()

	if zc.cache != nil {
		if zipcode, ok, err := zc.cache.Get(c.Request.Context(), key); err != nil {
			zc.logger.Warn("cache get failed", zap.Error(err))
		} else if ok {
			c.JSON(http.StatusOK, responses.ZipcodeResponse{
				Address:          req.Address,
				Zipcode:          zipcode,
				Found:            zipcode != "",
				CacheHit:         true,
				ProcessingTimeMs: time.Since(start).Milliseconds(),
			})
			return
		}
	}

	zipcode, err := zc.lookup.Find(c.Request.Context(), req.Address)
	if err != nil {
		zc.logger.Error("lookup failed", zap.Error(err), zap.String("address", req.Address))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LOOKUP_ERROR",
			Message: err.Error(),
		})
		return
	}

	if zc.cache != nil {
		if err := zc.cache.Set(c.Request.Context(), key, zipcode); err != nil {
			zc.logger.Warn("cache set failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, responses.ZipcodeResponse{
		Address:          req.Address,
		Zipcode:          zipcode,
		Found:            zipcode != "",
		CacheHit:         false,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// Health handles the liveness/readiness check routes.
func (zc *ZipcodeController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "ok"})
}
