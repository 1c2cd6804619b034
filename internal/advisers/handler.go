package advisers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trustrails/adviser-shield/pkg/common"
	"github.com/trustrails/adviser-shield/pkg/pagination"
	"github.com/trustrails/adviser-shield/pkg/validation"
)

// Handler handles HTTP requests for adviser intake
type Handler struct {
	service *Service
}

// NewHandler creates a new adviser handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create registers an adviser and returns the intake analysis
func (h *Handler) Create(c *gin.Context) {
	var req CreateAdviserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Get returns a single adviser by ID
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid adviser id")
		return
	}

	adviser, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "adviser not found")
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to get adviser")
		return
	}

	common.SuccessResponse(c, adviser)
}

// List returns a page of advisers
func (h *Handler) List(c *gin.Context) {
	params := pagination.ParseParams(c)

	advisers, total, err := h.service.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list advisers")
		return
	}

	common.SuccessResponse(c, gin.H{
		"advisers":   advisers,
		"pagination": pagination.BuildMeta(params.Limit, params.Offset, total),
	})
}

// RegisterRoutes registers adviser routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	adv := rg.Group("/advisers")
	{
		adv.POST("", h.Create)
		adv.GET("", h.List)
		adv.GET("/:id", h.Get)
	}
}
