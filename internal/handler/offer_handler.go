package handler

import (
	"errors"
	"net/http"
	"strconv"

	"work_market/internal/model"
	"work_market/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OfferHandler handles offer related requests
type OfferHandler struct {
	service service.OfferService
	log     *zap.Logger
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(s service.OfferService, log *zap.Logger) *OfferHandler {
	return &OfferHandler{service: s, log: log}
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list offers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve offers"})
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req model.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrOfferExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("failed to create offer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "offer created"})
}

func (h *OfferHandler) GetOfferByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	offer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("failed to get offer", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve offer"})
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var req model.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("failed to update offer", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "offer updated"})
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("failed to delete offer", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "offer deleted"})
}

// RegisterOfferRoutes registers offer routes
func (h *OfferHandler) RegisterOfferRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	{
		offers.GET("", h.ListOffers)
		offers.POST("", h.CreateOffer)
		offers.GET("/:id", h.GetOfferByID)
		offers.PUT("/:id", h.UpdateOffer)
		offers.DELETE("/:id", h.DeleteOffer)
	}
}
