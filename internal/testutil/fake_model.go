package testutil

import (
	"context"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// FakeModel is an llms.Model that returns a canned response and records
// what it was asked.
type FakeModel struct {
	Response string
	Err      error

	mu       sync.Mutex
	prompts  []string
	jsonMode bool
}

func (f *FakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{}
	for _, o := range options {
		o(&opts)
	}

	f.mu.Lock()
	f.jsonMode = opts.JSONMode
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.Response}},
	}, nil
}

func (f *FakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

// Prompts returns every prompt received so far.
func (f *FakeModel) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func (f *FakeModel) LastPrompt() string {
	prompts := f.Prompts()
	if len(prompts) == 0 {
		return ""
	}
	return prompts[len(prompts)-1]
}

func (f *FakeModel) JSONMode() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jsonMode
}
