package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeLLM(response string) (*LLMService, *testutil.FakeModel) {
	model := &testutil.FakeModel{Response: response}
	return &LLMService{Client: model, Temperature: 0.2}, model
}

func requireFlowError(t *testing.T, err error, sentinel error, message string) {
	t.Helper()
	require.Error(t, err)

	var fe *FlowError
	require.True(t, errors.As(err, &fe), "expected *FlowError, got %T", err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, message, fe.Message)
}

func TestNewLLMService_RequiresKey(t *testing.T) {
	_, err := NewLLMService(context.Background(), "", "gemini-2.5-flash", 0.2)
	assert.Error(t, err)
}

func TestGenerateJobDescription(t *testing.T) {
	svc, model := newFakeLLM("```json\n{\"jobDescription\": \"<h3>About the Role</h3><p>Build APIs.</p>\"}\n```")

	out, err := svc.GenerateJobDescription(context.Background(), dtos.JobDescriptionInput{
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme",
		Skills:      []string{"Go", "Postgres"},
	})
	require.NoError(t, err)

	assert.Equal(t, "<h3>About the Role</h3><p>Build APIs.</p>", out.JobDescription)
	assert.True(t, model.JSONMode())

	prompt := model.LastPrompt()
	assert.Contains(t, prompt, "Job title: Backend Engineer")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Key skills: Go, Postgres")
	assert.NotContains(t, prompt, "Location:")
}

func TestGenerateJobDescription_MissingTitle(t *testing.T) {
	svc, model := newFakeLLM(`{"jobDescription":"x"}`)

	_, err := svc.GenerateJobDescription(context.Background(), dtos.JobDescriptionInput{JobTitle: "   "})

	requireFlowError(t, err, ErrInvalidFlowInput, "Job title is required.")
	assert.Empty(t, model.Prompts(), "model must not be called for invalid input")
}

func TestGenerateJobDescription_BadOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{name: "empty response", response: "   "},
		{name: "empty description", response: `{"jobDescription": ""}`},
		{name: "wrong shape", response: `{"description": "<p>hi</p>"}`},
		{name: "not json", response: "Here is your job description!"},
		{name: "model error", err: errors.New("quota exceeded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, model := newFakeLLM(tt.response)
			model.Err = tt.err

			_, err := svc.GenerateJobDescription(context.Background(), dtos.JobDescriptionInput{JobTitle: "QA Engineer"})
			requireFlowError(t, err, ErrInvalidFlowOutput, "Failed to generate job description.")
		})
	}
}

func TestRunFlow_LogsRejectedSchema(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc, _ := newFakeLLM(`{"description": "<p>hi</p>"}`)
	_, err := svc.GenerateJobDescription(context.Background(), dtos.JobDescriptionInput{JobTitle: "QA Engineer"})
	requireFlowError(t, err, ErrInvalidFlowOutput, "Failed to generate job description.")

	assert.Contains(t, buf.String(), `"schema":"job_description.output"`)
	assert.Contains(t, buf.String(), `"flow":"job_description"`)
}

func TestSuggestSkills(t *testing.T) {
	svc, model := newFakeLLM(`{"skills": ["Go", "gRPC", "go", "Kubernetes", " ", "SQL", "Docker"]}`)

	out, err := svc.SuggestSkills(context.Background(), dtos.SkillSuggestionInput{
		JobTitle:       "Platform Engineer",
		ExistingSkills: []string{"sql"},
		Limit:          3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "gRPC", "Kubernetes"}, out.Skills)
	assert.Contains(t, model.LastPrompt(), "Suggest up to 3")
	assert.Contains(t, model.LastPrompt(), "do not repeat these): sql")
}

func TestSuggestSkills_DefaultLimit(t *testing.T) {
	svc, model := newFakeLLM(`{"skills": ["Figma"]}`)

	_, err := svc.SuggestSkills(context.Background(), dtos.SkillSuggestionInput{JobTitle: "Designer"})
	require.NoError(t, err)
	assert.Contains(t, model.LastPrompt(), "Suggest up to 10")
}

func TestSuggestSkills_Errors(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		svc, _ := newFakeLLM(`{"skills":["Go"]}`)
		_, err := svc.SuggestSkills(context.Background(), dtos.SkillSuggestionInput{})
		requireFlowError(t, err, ErrInvalidFlowInput, "Job title is required.")
	})

	t.Run("empty list", func(t *testing.T) {
		svc, _ := newFakeLLM(`{"skills":[]}`)
		_, err := svc.SuggestSkills(context.Background(), dtos.SkillSuggestionInput{JobTitle: "Chef"})
		requireFlowError(t, err, ErrInvalidFlowOutput, "Failed to suggest skills.")
	})

	t.Run("only existing skills", func(t *testing.T) {
		svc, _ := newFakeLLM(`{"skills":["Cooking"]}`)
		_, err := svc.SuggestSkills(context.Background(), dtos.SkillSuggestionInput{
			JobTitle:       "Chef",
			ExistingSkills: []string{"cooking"},
		})
		requireFlowError(t, err, ErrInvalidFlowOutput, "Failed to suggest skills.")
	})
}

func TestExtractJobPosting(t *testing.T) {
	svc, model := newFakeLLM(`{
		"title": "Site Reliability Engineer",
		"companyName": "Acme",
		"location": null,
		"description": "Keep things running.",
		"skills": ["Linux", "linux", "Terraform"],
		"qualifications": null,
		"employmentType": "Full-time",
		"salaryRange": null
	}`)

	out, err := svc.ExtractJobPosting(context.Background(), dtos.JobExtractionInput{
		RawText: "<div>SRE at Acme</div>" + strings.Repeat("x", maxRawJobText),
	})
	require.NoError(t, err)

	assert.Equal(t, "Site Reliability Engineer", out.Title)
	assert.Empty(t, out.Location)
	assert.Equal(t, []string{"Linux", "Terraform"}, out.Skills)
	assert.Empty(t, out.Qualifications)
	assert.Less(t, len(model.LastPrompt()), maxRawJobText+2000)
}

func TestExtractJobPosting_MissingText(t *testing.T) {
	svc, _ := newFakeLLM(`{"title":"x"}`)

	_, err := svc.ExtractJobPosting(context.Background(), dtos.JobExtractionInput{})
	requireFlowError(t, err, ErrInvalidFlowInput, "Job posting text is required.")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "json code block", input: "```json\n{\"key\": \"value\"}\n```", expected: `{"key": "value"}`},
		{name: "generic code block", input: "```\n{\"key\": \"value\"}\n```", expected: `{"key": "value"}`},
		{name: "plain JSON", input: "  {\"key\": \"value\"}\n", expected: `{"key": "value"}`},
		{name: "empty", input: "  ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
