// Package legitimacy derives a bounded confidence score for an extracted
// bill record from field presence and physical image properties.
package legitimacy

import (
	"fmt"

	"billscan/internal/domain"
)

// DefaultMinDimension is the resolution floor below which a deduction applies.
const DefaultMinDimension = 500

// fieldRule checks one extracted field for presence.
type fieldRule struct {
	name    string
	extract func(domain.BillFields) *string
}

// requiredFieldRules lists the key fields in evaluation order. The order is
// an observable contract: reasons appear in this order in the assessment.
func requiredFieldRules() []fieldRule {
	return []fieldRule{
		{name: "Bill No", extract: func(f domain.BillFields) *string { return f.BillNo }},
		{name: "Date", extract: func(f domain.BillFields) *string { return f.Date }},
		{name: "Total Amount", extract: func(f domain.BillFields) *string { return f.TotalAmount }},
	}
}

// Scorer computes legitimacy assessments. It is stateless and safe for
// concurrent use.
type Scorer struct {
	minDimension int
}

// NewScorer creates a Scorer. A non-positive minDimension falls back to
// DefaultMinDimension.
func NewScorer(minDimension int) *Scorer {
	if minDimension <= 0 {
		minDimension = DefaultMinDimension
	}
	return &Scorer{minDimension: minDimension}
}

// Score evaluates the deduction rules in fixed order and returns the clamped
// assessment. Pure function: identical inputs always yield identical output.
func (s *Scorer) Score(fields domain.BillFields, metrics domain.ImageMetrics) domain.Assessment {
	score := 100
	reasons := make([]string, 0, 5)

	for _, rule := range requiredFieldRules() {
		val := rule.extract(fields)
		if val == nil || *val == "" {
			score -= 20
			reasons = append(reasons, "Missing field: "+rule.name)
		}
	}

	if fields.IsHandwritten != nil && *fields.IsHandwritten {
		score -= 30
		reasons = append(reasons, "Handwritten content detected")
	}

	// Single combined check: one deduction regardless of whether one or both
	// dimensions fall short.
	if metrics.Width < s.minDimension || metrics.Height < s.minDimension {
		score -= 10
		reasons = append(reasons, fmt.Sprintf("Image resolution is too low (below %dx%d)", s.minDimension, s.minDimension))
	}

	return domain.Assessment{
		Score:   clamp(score, 0, 100),
		Reasons: reasons,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
