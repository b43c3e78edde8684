package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storyloom/narrative-api/internal/domain/narrative"
	apperrors "github.com/storyloom/narrative-api/pkg/errors"
)

// NarrativeHandler wires the HTTP transport to the narrative domain.
type NarrativeHandler struct {
	narrativeSvc narrative.Service
	provider     narrative.Provider
	logger       *slog.Logger
}

// NewNarrativeHandler constructs the root HTTP handler.
func NewNarrativeHandler(svc narrative.Service, cfg narrative.Config, logger *slog.Logger) *NarrativeHandler {
	return &NarrativeHandler{
		narrativeSvc: svc,
		provider:     cfg.Provider,
		logger:       logger.With("component", "http.handler"),
	}
}

type generateResponse struct {
	Success         bool                    `json:"success"`
	Story           string                  `json:"story"`
	Profile         narrative.ProfileRecord `json:"profile"`
	TokenLimit      int                     `json:"tokenLimit"`
	ContentSections int                     `json:"contentSections"`
}

// Generate handles the story generation endpoint.
func (h *NarrativeHandler) Generate(c *gin.Context) {
	var req narrative.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		// Request fields are all optional, so there is no field-level 4xx
		// path: an unparseable body lands in the generic bucket.
		abortWithError(c, h.httpError(http.StatusInternalServerError, "internal_error", errMessage(err), err))
		return
	}

	resp, err := h.narrativeSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, h.classifyFailure(err))
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Success:         true,
		Story:           resp.Story,
		Profile:         resp.Profile,
		TokenLimit:      resp.TokenLimit,
		ContentSections: resp.ContentSections,
	})
}

// classifyFailure maps domain error codes onto the response contract. The
// configuration message stays generic so missing variable names never leak
// to the caller; storage failures surface the underlying message.
func (h *NarrativeHandler) classifyFailure(err error) *HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeConfig:
		return h.httpError(http.StatusServiceUnavailable, apperrors.CodeConfig, "Service configuration error", err)
	case apperrors.CodeProviderQuota:
		return h.httpError(http.StatusTooManyRequests, apperrors.CodeProviderQuota, "Quota exceeded, please try again later", err)
	case apperrors.CodeProvider, apperrors.CodeEmptyGeneration:
		return h.httpError(http.StatusServiceUnavailable, apperrors.CodeProvider, "AI service temporarily unavailable", err)
	case apperrors.CodeStorage, apperrors.CodeProfileNotFound:
		return h.httpError(http.StatusInternalServerError, apperrors.CodeStorage, errMessage(err), err)
	default:
		return h.httpError(http.StatusInternalServerError, "internal_error", errMessage(err), err)
	}
}

func (h *NarrativeHandler) httpError(status int, code, message string, err error) *HTTPError {
	httpErr := NewHTTPError(status, code, message, err)
	httpErr.Provider = string(h.provider)
	return httpErr
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
