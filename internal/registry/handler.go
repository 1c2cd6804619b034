package registry

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trustrails/adviser-shield/pkg/common"
	"github.com/trustrails/adviser-shield/pkg/validation"
)

// Handler handles HTTP requests for registry verification and search
type Handler struct {
	service *Service
}

// NewHandler creates a new registry handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Verify checks a registration number directly
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	check, err := h.service.Verify(c.Request.Context(), req.RegNo, "")
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "verification failed")
		return
	}

	common.SuccessResponse(c, check)
}

// Search looks up directory records by name, identifier or entity type
func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "query parameter q is required")
		return
	}

	records, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "search failed")
		return
	}
	if records == nil {
		records = []Record{}
	}

	common.SuccessResponse(c, gin.H{
		"query":   query,
		"count":   len(records),
		"results": records,
	})
}

// RegisterRoutes registers registry routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/verify", h.Verify)
	rg.GET("/registry/search", h.Search)
}
