package service

import (
	"context"
	"errors"
	"log"

	"billscan/internal/config"
	"billscan/internal/domain"
	"billscan/internal/extract"
	"billscan/internal/legitimacy"
	"billscan/internal/port"
	"billscan/internal/vision"
)

// ProcessInput carries a decoded, validated image into the pipeline.
type ProcessInput struct {
	ImageBytes  []byte
	ContentType string
	Metrics     domain.ImageMetrics
}

// BillService runs the bill extraction pipeline: model invocation, response
// extraction, and legitimacy scoring.
type BillService interface {
	// Process never returns an error; every failure mode is folded into the
	// failure variant of the result.
	Process(ctx context.Context, input ProcessInput) domain.ExtractionResult
}

type billService struct {
	model       port.VisionModel
	scorer      *legitimacy.Scorer
	scoringMode config.ScoringMode
}

// NewBillService creates a BillService. The vision model handle is shared
// across requests and must be reentrant.
func NewBillService(model port.VisionModel, scorer *legitimacy.Scorer, mode config.ScoringMode) BillService {
	if mode == "" {
		mode = config.ScoringModeLocal
	}
	return &billService{
		model:       model,
		scorer:      scorer,
		scoringMode: mode,
	}
}

func (s *billService) Process(ctx context.Context, input ProcessInput) domain.ExtractionResult {
	prompt := vision.BuildBillExtractionPrompt(s.scoringMode == config.ScoringModeModel)

	raw, err := s.model.Generate(ctx, port.GenerateInput{
		Prompt:      prompt,
		ImageBytes:  input.ImageBytes,
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("billService.Process: model call failed: %v", err)
		return domain.ExtractionResult{Failure: &domain.ExtractionFailure{
			Error: "API call failed: " + err.Error(),
		}}
	}

	fields, err := extract.Extract(raw)
	if err != nil {
		return failureFromExtract(err)
	}

	record := domain.BillRecord{
		BillNo:        fields.BillNo,
		Date:          fields.Date,
		TotalAmount:   fields.TotalAmount,
		IsHandwritten: fields.IsHandwritten,
	}

	if s.scoringMode == config.ScoringModeModel {
		// Trust the model's self-reported assessment verbatim.
		if fields.LegitimacyScore != nil {
			record.LegitimacyScore = *fields.LegitimacyScore
		}
		record.LegitimacyReasons = fields.LegitimacyReasons
		if record.LegitimacyReasons == nil {
			record.LegitimacyReasons = []string{}
		}
		return domain.ExtractionResult{Record: &record}
	}

	assessment := s.scorer.Score(fields, input.Metrics)
	record.LegitimacyScore = assessment.Score
	record.LegitimacyReasons = assessment.Reasons
	return domain.ExtractionResult{Record: &record}
}

// failureFromExtract maps typed extractor errors onto the failure variant,
// preserving the raw model text for diagnostics.
func failureFromExtract(err error) domain.ExtractionResult {
	var noJSON *extract.NoJSONFoundError
	if errors.As(err, &noJSON) {
		return domain.ExtractionResult{Failure: &domain.ExtractionFailure{
			Error:       "No JSON found",
			RawResponse: noJSON.Raw,
		}}
	}

	var malformed *extract.MalformedJSONError
	if errors.As(err, &malformed) {
		return domain.ExtractionResult{Failure: &domain.ExtractionFailure{
			Error:       "Failed to parse JSON",
			RawResponse: malformed.Raw,
		}}
	}

	return domain.ExtractionResult{Failure: &domain.ExtractionFailure{
		Error: err.Error(),
	}}
}
