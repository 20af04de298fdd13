package extract

import "fmt"

// NoJSONFoundError indicates the model response contains no locatable JSON
// object. Raw carries the full response text for diagnostics.
type NoJSONFoundError struct {
	Raw string
}

func (e *NoJSONFoundError) Error() string {
	return "no JSON object found in model response"
}

// MalformedJSONError indicates a JSON-object-shaped substring was located
// but failed to parse. Raw carries the full original response text, not the
// candidate substring.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("model response JSON is malformed: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}
