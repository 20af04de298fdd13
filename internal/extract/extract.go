// Package extract locates and parses the JSON object embedded in a raw
// vision-model response.
package extract

import (
	"encoding/json"
	"strings"

	"billscan/internal/domain"
)

// Extract slices the substring between the first '{' and the last '}' of raw
// and parses it into a BillFields record. The outer-brace slice is a
// deliberately permissive recovery strategy: the model is instructed to emit
// JSON only, but replies are routinely wrapped in prose or markdown fences.
//
// Failures are typed: *NoJSONFoundError when no object-shaped substring
// exists, *MalformedJSONError when the candidate does not parse. Both carry
// the full raw text.
func Extract(raw string) (domain.BillFields, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return domain.BillFields{}, &NoJSONFoundError{Raw: raw}
	}

	candidate := raw[start : end+1]

	var fields domain.BillFields
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return domain.BillFields{}, &MalformedJSONError{Raw: raw, Err: err}
	}

	return fields, nil
}
