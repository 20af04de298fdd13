package port

import "context"

// GenerateInput carries the data for a single vision-model invocation.
type GenerateInput struct {
	Prompt      string
	ImageBytes  []byte
	ContentType string
}

// VisionModel abstracts a multimodal LLM capable of answering a text prompt
// about an image. Implementations must be safe for concurrent use; a single
// instance is shared across requests for the process lifetime.
type VisionModel interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
