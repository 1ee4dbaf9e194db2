package generation

import (
	"context"
	"encoding/json"
)

type ResponseFormat string

const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json"
)

// Result carries one generation response. For FormatJSON requests Content is
// the cleaned, syntactically valid JSON document; RawContent is always the
// untouched model output.
type Result struct {
	Content    json.RawMessage
	RawContent string
}

// Generator is the remote content-generation collaborator. Implementations
// perform a single request with no retries; recovery is the caller's job.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, format ResponseFormat) (Result, error)
}
