package domain

// BillFields is the typed record parsed from the model's JSON output.
// Fields the model could not read are nil, never omitted, so scoring can
// uniformly check presence. Keys the model invents beyond this schema are
// dropped by the typed unmarshal.
type BillFields struct {
	BillNo        *string `json:"Bill No"`
	Date          *string `json:"Date"`
	TotalAmount   *string `json:"Total Amount"`
	IsHandwritten *bool   `json:"IsHandwritten"`

	// Self-reported assessment, populated only when the model is prompted
	// to score its own extraction (model-trusted scoring mode).
	LegitimacyScore   *int     `json:"legitimacy_score,omitempty"`
	LegitimacyReasons []string `json:"legitimacy_reasons,omitempty"`
}

// ImageMetrics holds the physical pixel dimensions of a decoded image.
// Derived once per request and never mutated.
type ImageMetrics struct {
	Width  int
	Height int
}

// Assessment is the result of legitimacy scoring. Reasons preserve rule
// evaluation order: missing-field checks first, then handwriting, then
// resolution.
type Assessment struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// BillRecord is the success response body for a processed bill: the
// extracted fields merged with the legitimacy assessment.
type BillRecord struct {
	BillNo            *string  `json:"Bill No"`
	Date              *string  `json:"Date"`
	TotalAmount       *string  `json:"Total Amount"`
	IsHandwritten     *bool    `json:"IsHandwritten"`
	LegitimacyScore   int      `json:"legitimacy_score"`
	LegitimacyReasons []string `json:"legitimacy_reasons"`
}

// ExtractionFailure is the failure response body. RawResponse carries the
// model's full text only when a response existed but could not be turned
// into a BillFields record; it is empty for model-call failures.
type ExtractionFailure struct {
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
}

// ExtractionResult is the outcome of the bill extraction pipeline. Exactly
// one of Record or Failure is set.
type ExtractionResult struct {
	Record  *BillRecord
	Failure *ExtractionFailure
}

// Failed reports whether the result is the failure variant.
func (r ExtractionResult) Failed() bool {
	return r.Failure != nil
}
