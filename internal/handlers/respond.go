package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/models"
)

// respondError writes err as {"message": ...} with the status its
// ServiceError maps to. Unknown errors are 500s and only their class reaches
// the client.
func respondError(c *gin.Context, err error) {
	se := apperrors.GetServiceError(err)
	if se == nil {
		se = apperrors.Internal("Internal server error", err)
	}
	if se.HTTPStatus >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(se.HTTPStatus, gin.H{"message": se.Message})
}

// bindDocument decodes the request body as a JSON object. An empty body is an
// empty document; anything but an object is a 400.
func bindDocument(c *gin.Context) (models.Document, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, apperrors.BadRequest("Failed to read request body", err))
		return nil, false
	}
	doc := models.Document{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, true
	}
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		respondError(c, apperrors.BadRequest("Request body must be a JSON object", err))
		return nil, false
	}
	return doc, true
}
