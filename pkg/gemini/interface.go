package gemini

import "context"

// Generator is the interface consumers depend on so tests can stub the API.
type Generator interface {
	// GenerateContent sends a content generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string
}

var _ Generator = (*Client)(nil)
