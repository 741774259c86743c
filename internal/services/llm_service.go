package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const (
	DefaultSkillLimit = 10
	maxRawJobText     = 20000
)

var (
	jobDescriptionFlow = mustFlow("job_description", "Job title is required.", "Failed to generate job description.")
	suggestSkillsFlow  = mustFlow("suggest_skills", "Job title is required.", "Failed to suggest skills.")
	extractJobFlow     = mustFlow("extract_job", "Job posting text is required.", "Failed to extract job posting.")
)

type LLMService struct {
	Client      llms.Model
	Temperature float64
}

// NewLLMService creates the Gemini-backed client used by all flows.
func NewLLMService(ctx context.Context, apiKey, model string, temperature float64) (*LLMService, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &LLMService{
		Client:      llm,
		Temperature: temperature,
	}, nil
}

// GenerateJobDescription drafts an HTML job description for a posting.
func (s *LLMService) GenerateJobDescription(ctx context.Context, in dtos.JobDescriptionInput) (*dtos.JobDescriptionOutput, error) {
	in.JobTitle = strings.TrimSpace(in.JobTitle)

	out, err := runFlow[dtos.JobDescriptionInput, dtos.JobDescriptionOutput](ctx, s, jobDescriptionFlow, in)
	if err != nil {
		return nil, err
	}
	out.JobDescription = strings.TrimSpace(out.JobDescription)
	return out, nil
}

// SuggestSkills returns skill names for a role, excluding ones the caller
// already has, capped at in.Limit (DefaultSkillLimit when unset).
func (s *LLMService) SuggestSkills(ctx context.Context, in dtos.SkillSuggestionInput) (*dtos.SkillSuggestionOutput, error) {
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	if in.Limit == 0 {
		in.Limit = DefaultSkillLimit
	}

	out, err := runFlow[dtos.SkillSuggestionInput, dtos.SkillSuggestionOutput](ctx, s, suggestSkillsFlow, in)
	if err != nil {
		return nil, err
	}

	skills := dedupeFold(out.Skills, in.ExistingSkills)
	if len(skills) == 0 {
		return nil, suggestSkillsFlow.outputError(errors.New("no new skills in model response"))
	}
	if len(skills) > in.Limit {
		skills = skills[:in.Limit]
	}
	out.Skills = skills
	return out, nil
}

// ExtractJobPosting turns pasted job-ad text into posting form fields.
func (s *LLMService) ExtractJobPosting(ctx context.Context, in dtos.JobExtractionInput) (*dtos.JobExtractionOutput, error) {
	if len(in.RawText) > maxRawJobText {
		cut := maxRawJobText
		for cut > 0 && !utf8.RuneStart(in.RawText[cut]) {
			cut--
		}
		in.RawText = in.RawText[:cut]
	}

	out, err := runFlow[dtos.JobExtractionInput, dtos.JobExtractionOutput](ctx, s, extractJobFlow, in)
	if err != nil {
		return nil, err
	}
	out.Skills = dedupeFold(out.Skills, nil)
	out.Qualifications = dedupeFold(out.Qualifications, nil)
	return out, nil
}

// dedupeFold trims values and drops blanks, case-insensitive duplicates
// and anything in exclude. Order is preserved.
func dedupeFold(values, exclude []string) []string {
	seen := make(map[string]struct{}, len(values)+len(exclude))
	for _, e := range exclude {
		seen[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
