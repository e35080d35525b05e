package dtos

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

// StatusUpdateRequest is the PATCH /job-applications/:id body. Status is free
// form; no workflow of allowed values is enforced. A missing status clears it.
type StatusUpdateRequest struct {
	Status *string `json:"status"`
}

