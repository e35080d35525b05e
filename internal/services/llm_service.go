package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const maxPostingChars = 20000

type LLMService struct {
	Client llms.Model
}

// NewLLMService builds a Gemini-backed extractor. It is only constructed when
// an API key is configured.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const jobPostingPrompt = `
You are an expert Job Data Extraction Agent. An employer pasted the raw HTML/Text of a job posting and wants a draft they can publish.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "company": "Name of the company",
    "company_logo": "Absolute URL of the company logo if present, otherwise null",
    "location": "Job location or 'Remote'",
    "jobType": "Full-time, Part-time, Contract, Internship, or null",
    "description": "A clean summary of the job. Remove HTML tags.",
    "requirements": ["Array", "of", "requirements"],
    "responsibilities": ["Array", "of", "responsibilities"],
    "salaryRange": "The salary string if explicitly mentioned, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails turns a raw posting into a JSON job document.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(jobPostingPrompt, truncate(rawHTML, maxPostingChars)))
	if err != nil {
		return "", err
	}
	return stripCodeFence(resp), nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripCodeFence removes a ```json fence the model sometimes adds despite
// being told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
