package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/dtos"
	"github.com/justsurfingit/job-portal-api/internal/middleware"
	"github.com/justsurfingit/job-portal-api/internal/services"
)

type ApplicationHandler struct {
	Workflow     *services.ApplicationWorkflow
	Applications *services.ApplicationService
}

func NewApplicationHandler(w *services.ApplicationWorkflow, apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Workflow: w, Applications: apps}
}

// Submit is POST /job-applications (session required).
func (h *ApplicationHandler) Submit(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	res, err := h.Workflow.Submit(c.Request.Context(), doc, middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListMine is GET /job-application?email= (session required, own email only).
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.Workflow.ListForApplicant(c.Request.Context(), c.Query("email"), middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus is PATCH /job-applications/:id
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("Invalid JSON format", err))
		return
	}
	res, err := h.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
