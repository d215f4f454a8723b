package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comptoir/backend/internal/infrastructure/assetcache"
)

// AssetsHandler serves the static shell through the offline asset cache.
// It registers directly on the engine, outside the versioned API group.
type AssetsHandler struct {
	BaseHandler
	cache *assetcache.Cache
}

// NewAssetsHandler creates a new AssetsHandler
func NewAssetsHandler(cache *assetcache.Cache) *AssetsHandler {
	return &AssetsHandler{cache: cache}
}

// Register mounts the asset routes on the engine
func (h *AssetsHandler) Register(engine *gin.Engine) {
	engine.GET("/", h.Serve)
	engine.GET("/assets/*path", h.Serve)
}

// Serve answers from the cache, falling back to disk
func (h *AssetsHandler) Serve(c *gin.Context) {
	p := c.Param("path")
	if p == "" {
		p = "/"
	}

	data, contentType, ok := h.cache.Get(p)
	if !ok {
		h.NotFound(c, "Asset not found")
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
