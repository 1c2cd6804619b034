package analysis

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trustrails/adviser-shield/internal/documents"
	"github.com/trustrails/adviser-shield/pkg/common"
	"github.com/trustrails/adviser-shield/pkg/config"
	"github.com/trustrails/adviser-shield/pkg/logger"
	"github.com/trustrails/adviser-shield/pkg/security"
	"github.com/trustrails/adviser-shield/pkg/validation"
)

// Handler handles HTTP requests for text analysis
type Handler struct {
	service   ServiceInterface
	extractor documents.Extractor
	limits    config.AnalysisConfig
}

// NewHandler creates a new analysis handler
func NewHandler(service ServiceInterface, extractor documents.Extractor, limits config.AnalysisConfig) *Handler {
	return &Handler{
		service:   service,
		extractor: extractor,
		limits:    limits,
	}
}

// AnalyzeBio analyzes an adviser profile or bio. Registration is verified
// against the directory, using the claimed identifier when supplied and
// falling back to extraction from the text.
func (h *Handler) AnalyzeBio(c *gin.Context) {
	var req AnalyzeBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), Input{
		Text:               req.Bio,
		ClaimedID:          req.RegNo,
		MaxChars:           h.limits.BioMaxChars,
		RequireContactInfo: true,
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// AnalyzeTip analyzes a stock tip or promotional message. A bare tip
// carries no identity claim, so no registration check is performed.
func (h *Handler) AnalyzeTip(c *gin.Context) {
	var req AnalyzeTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), Input{
		Text:             req.Tip,
		MaxChars:         h.limits.TipMaxChars,
		SkipVerification: true,
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// AnalyzeDocument analyzes an uploaded document or raw text. Multipart
// uploads go through the extractor; JSON bodies supply text directly.
func (h *Handler) AnalyzeDocument(c *gin.Context) {
	text, ok := h.documentText(c)
	if !ok {
		return
	}
	if strings.TrimSpace(text) == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "no text could be extracted from the document")
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), Input{
		Text:     text,
		MaxChars: h.limits.DocMaxChars,
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.SuccessResponse(c, result)
}

// documentText pulls analyzable text out of the request, writing the error
// response itself when it returns false
func (h *Handler) documentText(c *gin.Context) (string, bool) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "file field is required")
			return "", false
		}

		file, err := fileHeader.Open()
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "unable to read uploaded file")
			return "", false
		}
		defer file.Close()

		name := security.SanitizeFilename(fileHeader.Filename)
		text, err := h.extractor.Extract(c.Request.Context(), file, name)
		if err != nil {
			logger.WithContext(c.Request.Context()).Warn("document extraction failed",
				zap.String("filename", name),
				zap.Error(err),
			)
			common.ErrorResponse(c, http.StatusBadRequest, "unable to extract text from document")
			return "", false
		}
		return text, true
	}

	var req AnalyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	return req.Text, true
}

// RegisterRoutes registers analysis routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	analyze := rg.Group("/analyze")
	{
		analyze.POST("/bio", h.AnalyzeBio)
		analyze.POST("/tip", h.AnalyzeTip)
		analyze.POST("/document", h.AnalyzeDocument)
	}
}
