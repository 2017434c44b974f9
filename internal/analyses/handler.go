package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentinel-backend/internal/extract"
	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/shared/server/respond"
)

// maxUploadBytes caps file uploads.
const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze/text", h.analyzeText)
	rg.POST("/analyze/file", h.analyzeFile)
}

// analyzeText godoc
// @Summary  Analyze document text
// @Accept   json
// @Produce  json
// @Param    request body analyses.Request true "document text plus optional metadata"
// @Success  200 {object} analyses.Result
// @Failure  400 {object} respond.ErrorResponse
// @Failure  502 {object} respond.ErrorResponse
// @Router   /analyze/text [post]
func (h *Handler) analyzeText(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid analyze payload", nil)
		return
	}

	result, err := h.Svc.AnalyzeText(c.Request.Context(), req)
	if err != nil {
		h.respondAnalysisError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.OK(c, result)
}

// analyzeFile godoc
// @Summary  Analyze an uploaded text file
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "text-based document"
// @Success  200 {object} analyses.Result
// @Failure  400 {object} respond.ErrorResponse
// @Failure  502 {object} respond.ErrorResponse
// @Router   /analyze/file [post]
func (h *Handler) analyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file upload is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file exceeds the 5 MiB upload limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read uploaded file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read uploaded file", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file exceeds the 5 MiB upload limit", nil)
		return
	}

	result, err := h.Svc.AnalyzeFile(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		h.respondAnalysisError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.OK(c, result)
}

func (h *Handler) respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyDocument):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "document_text is required", nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusBadRequest, ErrorCodeNotConfigured, "API key not configured. Please configure in Settings.", nil)
	case errors.Is(err, llm.ErrAuthentication):
		respond.Error(c, http.StatusBadGateway, ErrorCodeProviderUnreachable, "Provider rejected the configured API key", nil)
	case errors.Is(err, llm.ErrUnreachable):
		respond.Error(c, http.StatusBadGateway, ErrorCodeProviderUnreachable, "AI provider is unreachable", nil)
	case errors.Is(err, ErrSchemaMismatch):
		respond.Error(c, http.StatusBadGateway, ErrorCodeProviderSchema, "AI provider returned an unusable response", nil)
	case errors.Is(err, ErrStorage):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "failed to record incident", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "analysis failed", nil)
	}
}
