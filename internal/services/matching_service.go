package services

import (
	"context"
	"errors"
	"strings"

	"github.com/justsurfingit/job-portal/internal/dtos"
)

var matchJobsFlow = mustFlow("match_jobs",
	"Resume text and at least one job description are required.",
	"Failed to match jobs.",
)

// MatchJobs asks the model to rank the given job descriptions against a
// resume, best fit first.
//
// Models sometimes echo a description with small edits. A ranked entry that
// equals an input ignoring case and whitespace is replaced by that input, so callers can
// look results up by the text they sent. Entries that match no input are
// dropped.
func (s *LLMService) MatchJobs(ctx context.Context, in dtos.JobMatchInput) (*dtos.JobMatchOutput, error) {
	out, err := runFlow[dtos.JobMatchInput, dtos.JobMatchOutput](ctx, s, matchJobsFlow, in)
	if err != nil {
		return nil, err
	}

	originals := make(map[string]string, len(in.JobDescriptions))
	for _, jd := range in.JobDescriptions {
		originals[normalizeForMatch(jd)] = jd
	}

	ranked := make([]string, 0, len(out.RankedJobDescriptions))
	seen := make(map[string]struct{}, len(out.RankedJobDescriptions))
	for _, jd := range out.RankedJobDescriptions {
		key := normalizeForMatch(jd)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		original, ok := originals[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		ranked = append(ranked, original)
	}
	if len(ranked) == 0 {
		return nil, matchJobsFlow.outputError(errors.New("no known job descriptions in model response"))
	}
	out.RankedJobDescriptions = ranked
	return out, nil
}

func normalizeForMatch(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
