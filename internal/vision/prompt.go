package vision

// BuildBillExtractionPrompt returns the extraction prompt for bill images.
// When selfScore is true the model is additionally asked to grade its own
// extraction; the embedded score is then trusted verbatim downstream.
func BuildBillExtractionPrompt(selfScore bool) string {
	prompt := `You are analyzing a bill image.
Extract the following fields in JSON:
- Bill No
- Date
- Total Amount
- IsHandwritten: true if the bill is handwritten, otherwise false.

If a field is missing, set it to null.
If handwriting is detected in any main field (Bill No, Date, Total Amount), IsHandwritten = true.`

	if selfScore {
		prompt += `

Additionally include:
- legitimacy_score: an integer from 0 to 100 indicating how complete and trustworthy the extraction is.
- legitimacy_reasons: an array of short strings explaining every deduction. Use an empty array when nothing was deducted.`
	}

	prompt += `

Return JSON only, with no markdown formatting, no code fences, and no explanation.

Example output:
{"Bill No": "12345", "Date": "2024-05-01", "Total Amount": "Rs. 1245.00", "IsHandwritten": false}`

	return prompt
}
