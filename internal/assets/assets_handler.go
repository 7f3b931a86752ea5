package assets

import (
	"errors"
	"net/http"

	custom_error "facility/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssetsHandler struct {
	Repository AssetRepository
	History    *HistoryService
	Logger     *zap.Logger
}

func NewHandler(r AssetRepository, history *HistoryService, logger *zap.Logger) *AssetsHandler {
	return &AssetsHandler{
		Repository: r,
		History:    history,
		Logger:     logger,
	}
}

func (h *AssetsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assets", h.GetAssets)
	router.GET("/assets/:id", h.GetAsset)
	router.GET("/assets/:id/history", h.GetAssetHistory)
}

func (h *AssetsHandler) GetAssets(c *gin.Context) {
	assets, err := h.Repository.GetAssets()
	if err != nil {
		h.Logger.Error("failed to list assets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetsHandler) GetAsset(c *gin.Context) {
	id, ok := h.bindAssetID(c)
	if !ok {
		return
	}

	asset, err := h.Repository.GetAsset(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find asset", "code": "ASSET_NOT_FOUND"})
			return
		}
		h.Logger.Error("failed to get asset", zap.String("asset_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) GetAssetHistory(c *gin.Context) {
	id, ok := h.bindAssetID(c)
	if !ok {
		return
	}

	history, err := h.History.GetAssetHistory(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find asset", "code": "ASSET_NOT_FOUND"})
			return
		}
		h.Logger.Error("failed to reconcile asset history", zap.String("asset_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *AssetsHandler) bindAssetID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID", "details": err.Error()})
		return "", false
	}
	return id, true
}
