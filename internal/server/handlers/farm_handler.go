package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
	"github.com/rangeland-tools/grazeplan/internal/repository/mongodb"
	"github.com/rangeland-tools/grazeplan/internal/service/planner"
)

const defaultHistoryLimit = 20

// FarmHandler exposes single-tenant farm, paddock, and herd storage plus
// server-side plan generation.
type FarmHandler struct {
	store  mongodb.Repository
	svc    *planner.Service
	logger *zap.Logger
}

// NewFarmHandler constructs the HTTP handler adapter.
func NewFarmHandler(store mongodb.Repository, svc *planner.Service, logger *zap.Logger) *FarmHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmHandler{store: store, svc: svc, logger: logger}
}

// CreateFarm registers a new farm.
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	var req models.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid farm payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farm, err := h.store.CreateFarm(c.Request.Context(), models.Farm{
		Name:   req.Name,
		Region: req.Region,
		Zip:    req.Zip,
	})
	if err != nil {
		h.logger.Error("failed creating farm", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create farm"})
		return
	}

	c.JSON(http.StatusCreated, farm)
}

// ListFarms returns all farms.
func (h *FarmHandler) ListFarms(c *gin.Context) {
	farms, err := h.store.ListFarms(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing farms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list farms"})
		return
	}
	c.JSON(http.StatusOK, farms)
}

// GetFarm returns one farm by id.
func (h *FarmHandler) GetFarm(c *gin.Context) {
	farm, err := h.store.GetFarm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "unable to load farm")
		return
	}
	c.JSON(http.StatusOK, farm)
}

// DeleteFarm removes a farm and everything attached to it.
func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	if err := h.store.DeleteFarm(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err, "unable to delete farm")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePaddock attaches a paddock to a farm.
func (h *FarmHandler) CreatePaddock(c *gin.Context) {
	farm, err := h.store.GetFarm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "unable to load farm")
		return
	}

	var req models.CreatePaddockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid paddock payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	paddock, err := h.store.CreatePaddock(c.Request.Context(), models.Paddock{
		FarmID:  farm.ID,
		Name:    req.Name,
		Acres:   req.Acres,
		Pasture: req.Pasture,
	})
	if err != nil {
		h.logger.Error("failed creating paddock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create paddock"})
		return
	}

	c.JSON(http.StatusCreated, paddock)
}

// ListPaddocks returns a farm's paddocks.
func (h *FarmHandler) ListPaddocks(c *gin.Context) {
	if _, err := h.store.GetFarm(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err, "unable to load farm")
		return
	}

	paddocks, err := h.store.ListPaddocks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed listing paddocks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list paddocks"})
		return
	}
	c.JSON(http.StatusOK, paddocks)
}

// CreateHerd attaches a herd to a farm.
func (h *FarmHandler) CreateHerd(c *gin.Context) {
	farm, err := h.store.GetFarm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondStoreError(c, err, "unable to load farm")
		return
	}

	var req models.CreateHerdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid herd payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	herd, err := h.store.CreateHerd(c.Request.Context(), models.Herd{
		FarmID: farm.ID,
		Name:   req.Name,
		Herd:   req.Herd,
	})
	if err != nil {
		h.logger.Error("failed creating herd", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to create herd"})
		return
	}

	c.JSON(http.StatusCreated, herd)
}

// ListHerds returns a farm's herds.
func (h *FarmHandler) ListHerds(c *gin.Context) {
	if _, err := h.store.GetFarm(c.Request.Context(), c.Param("id")); err != nil {
		h.respondStoreError(c, err, "unable to load farm")
		return
	}

	herds, err := h.store.ListHerds(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed listing herds", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list herds"})
		return
	}
	c.JSON(http.StatusOK, herds)
}

// CreatePlan computes and records a plan for a stored paddock/herd pair.
func (h *FarmHandler) CreatePlan(c *gin.Context) {
	var req models.StoredPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid plan payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.GeneratePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, planner.ErrWrongFarm) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "paddock or herd belongs to a different farm"})
			return
		}
		h.respondStoreError(c, err, "unable to generate plan")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListPlans returns a farm's recent plan history.
func (h *FarmHandler) ListPlans(c *gin.Context) {
	limit := int64(defaultHistoryLimit)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.svc.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.respondStoreError(c, err, "unable to load plan history")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *FarmHandler) respondStoreError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
