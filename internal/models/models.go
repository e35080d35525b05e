package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is a JSON object stored verbatim alongside the queryable columns.
type Document map[string]any

// String returns the value under key when it is a string.
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Keys owned by the store; they are stripped from client documents on insert.
const (
	KeyID               = "_id"
	KeyApplicationCount = "applicationCount"
)

// Job document keys.
const (
	KeyOwnerEmail  = "hr_email"
	KeyTitle       = "title"
	KeyLocation    = "location"
	KeyCompany     = "company"
	KeyCompanyLogo = "company_logo"
)

// Application document keys.
const (
	KeyJobID          = "job_id"
	KeyApplicantEmail = "applicant_email"
	KeyStatus         = "status"
)

// DisplayKeys are the job fields copied onto an application at read time.
var DisplayKeys = []string{KeyTitle, KeyLocation, KeyCompany, KeyCompanyLogo}

type Job struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// OwnerEmail mirrors Document["hr_email"] so listings can filter on it.
	OwnerEmail string `gorm:"column:hr_email;index"`

	// ApplicationCount stays NULL until the first submission is counted.
	ApplicationCount *int64 `gorm:"column:application_count"`

	Document Document `gorm:"serializer:json;type:text"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// NewJob builds a job from a client document. Store-owned keys are dropped.
func NewJob(doc Document) *Job {
	clean := clone(doc)
	delete(clean, KeyID)
	delete(clean, KeyApplicationCount)
	return &Job{
		OwnerEmail: clean.String(KeyOwnerEmail),
		Document:   clean,
	}
}

// Display returns the job's display fields that are present in its document.
func (j *Job) Display() Document {
	out := Document{}
	for _, k := range DisplayKeys {
		if v, ok := j.Document[k]; ok {
			out[k] = v
		}
	}
	return out
}

func (j Job) MarshalJSON() ([]byte, error) {
	out := clone(j.Document)
	out[KeyID] = j.ID
	if j.ApplicationCount != nil {
		out[KeyApplicationCount] = *j.ApplicationCount
	}
	return json.Marshal(out)
}

type Application struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	JobID          string  `gorm:"column:job_id;index"`
	ApplicantEmail string  `gorm:"column:applicant_email;index"`
	Status         *string `gorm:"column:status"`

	Document Document `gorm:"serializer:json;type:text"`

	// Enrichment is filled from the referenced job when listing and is never
	// persisted.
	Enrichment Document `gorm:"-"`
}

func (Application) TableName() string { return "job_applications" }

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// NewApplication builds an application from a client document.
func NewApplication(doc Document) *Application {
	clean := clone(doc)
	delete(clean, KeyID)
	app := &Application{
		JobID:          clean.String(KeyJobID),
		ApplicantEmail: clean.String(KeyApplicantEmail),
		Document:       clean,
	}
	if s, ok := clean[KeyStatus].(string); ok {
		app.Status = &s
	}
	return app
}

// Enrich copies the job's display fields onto the application response.
func (a *Application) Enrich(job *Job) {
	if job == nil {
		return
	}
	a.Enrichment = job.Display()
}

func (a Application) MarshalJSON() ([]byte, error) {
	out := clone(a.Document)
	for k, v := range a.Enrichment {
		out[k] = v
	}
	out[KeyID] = a.ID
	// The status column wins over whatever the submitted document carried.
	if a.Status != nil {
		out[KeyStatus] = *a.Status
	} else {
		delete(out, KeyStatus)
	}
	return json.Marshal(out)
}

func clone(doc Document) Document {
	out := make(Document, len(doc)+2)
	for k, v := range doc {
		out[k] = v
	}
	return out
}
