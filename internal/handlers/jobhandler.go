package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-api/internal/dtos"
	"github.com/justsurfingit/job-portal-api/internal/models"
	"github.com/justsurfingit/job-portal-api/internal/services"
)

// JobExtractor drafts a job document from a raw posting.
type JobExtractor interface {
	ExtractJobDetails(ctx context.Context, rawHTML string) (string, error)
}

type JobHandler struct {
	JobService *services.JobService
	Extractor  JobExtractor
}

// NewJobHandler creates the handler. extractor may be nil, in which case
// ParseJob is not routed.
func NewJobHandler(j *services.JobService, extractor JobExtractor) *JobHandler {
	return &JobHandler{
		JobService: j,
		Extractor:  extractor,
	}
}

// ListJobs is GET /jobs[?email=owner]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Request.Context(), services.JobFilter{
		OwnerEmail: c.Query("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /jobs/:id. A missing job is a 200 with a null body.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if job == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /jobs; the body is stored as-is.
func (h *JobHandler) CreateJob(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.InsertResult{Acknowledged: true, InsertedID: job.ID})
}

// ParseJob is POST /jobs/extract
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	extractedJSON, err := h.Extractor.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "AI Extraction failed: " + err.Error()})
		return
	}

	var draft models.Document
	if err := json.Unmarshal([]byte(extractedJSON), &draft); err != nil || draft == nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "AI Extraction returned invalid JSON"})
		return
	}
	if req.URL != "" {
		draft["source_url"] = req.URL
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    draft,
	})
}
