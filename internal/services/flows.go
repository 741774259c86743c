package services

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/justsurfingit/job-portal/internal/logger"
	"github.com/justsurfingit/job-portal/internal/schemas"
	"github.com/tmc/langchaingo/llms"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	ErrInvalidFlowInput  = errors.New("invalid flow input")
	ErrInvalidFlowOutput = errors.New("invalid flow output")
)

// FlowError carries the fixed, user-facing Message of a failed flow. The
// wrapped error holds the detail and is either ErrInvalidFlowInput or
// ErrInvalidFlowOutput.
type FlowError struct {
	Flow    string
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s flow: %s: %v", e.Flow, e.Message, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// flow is one prompt template plus the schemas guarding its input and
// output. The model is called once; there is no retry.
type flow struct {
	name          string
	prompt        *template.Template
	input         *schemas.Schema
	output        *schemas.Schema
	inputMessage  string
	outputMessage string
}

var promptFuncs = template.FuncMap{
	"join": strings.Join,
}

func mustFlow(name, inputMessage, outputMessage string) *flow {
	tmpl := template.Must(template.New(name+".tmpl").Funcs(promptFuncs).ParseFS(promptFS, "prompts/"+name+".tmpl"))
	return &flow{
		name:          name,
		prompt:        tmpl,
		input:         schemas.MustCompile(name+".input", mustReadSchema(name+".input.json")),
		output:        schemas.MustCompile(name+".output", mustReadSchema(name+".output.json")),
		inputMessage:  inputMessage,
		outputMessage: outputMessage,
	}
}

func mustReadSchema(file string) string {
	b, err := schemaFS.ReadFile("schemas/" + file)
	if err != nil {
		panic(fmt.Sprintf("missing flow schema %s: %v", file, err))
	}
	return string(b)
}

func (f *flow) inputError(cause error) *FlowError {
	return &FlowError{Flow: f.name, Message: f.inputMessage, Err: fmt.Errorf("%w: %v", ErrInvalidFlowInput, cause)}
}

func (f *flow) outputError(cause error) *FlowError {
	return &FlowError{Flow: f.name, Message: f.outputMessage, Err: fmt.Errorf("%w: %v", ErrInvalidFlowOutput, cause)}
}

// runFlow validates in, renders the prompt, makes a single JSON-mode model
// call and decodes the validated response into Out.
func runFlow[In any, Out any](ctx context.Context, s *LLMService, f *flow, in In) (*Out, error) {
	if err := f.input.ValidateValue(in); err != nil {
		return nil, f.inputError(err)
	}

	var prompt bytes.Buffer
	if err := f.prompt.Execute(&prompt, in); err != nil {
		return nil, fmt.Errorf("render %s prompt: %w", f.name, err)
	}

	log := logger.FromContext(ctx).With(slog.String("flow", f.name))
	log.Debug("calling model", slog.Int("prompt_chars", prompt.Len()))

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt.String(),
		llms.WithTemperature(s.Temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, f.outputError(fmt.Errorf("generate: %w", err))
	}

	text := CleanJSONBlock(resp)
	if text == "" {
		return nil, f.outputError(errors.New("empty model response"))
	}
	if err := f.output.ValidateBytes([]byte(text)); err != nil {
		log.Warn("model response failed schema validation",
			slog.String("schema", f.output.Name()),
			slog.String("error", err.Error()),
		)
		return nil, f.outputError(err)
	}

	var out Out
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, f.outputError(err)
	}
	return &out, nil
}

// CleanJSONBlock removes markdown code fences models add around JSON even
// when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
