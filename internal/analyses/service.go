package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sentinel-backend/internal/extract"
	"sentinel-backend/internal/incidents"
	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/settings"
	"sentinel-backend/internal/shared/metrics"
	"sentinel-backend/internal/shared/telemetry"
	"sentinel-backend/internal/shared/util"
)

// Request is the analyze-text payload. Metadata fields are optional and
// default to "unknown".
type Request struct {
	DocumentText string `json:"document_text"`
	FileName     string `json:"filename"`
	FileType     string `json:"filetype"`
	FileSize     string `json:"filesize"`
}

// Service contains business logic for document analyses. It performs exactly
// one provider round trip per request; there is no retry or backoff policy.
type Service struct {
	Settings  *settings.Service
	Incidents *incidents.Service
	NewLLM    llm.Factory
}

// AnalyzeText runs one synchronous analysis over raw document text.
func (s *Service) AnalyzeText(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.DocumentText) == "" {
		return Result{}, ErrEmptyDocument
	}

	cfg, err := s.Settings.ProviderConfig(ctx)
	if err != nil {
		return Result{}, err
	}

	analysisID := uuid.NewString()
	docHash := util.HashDocument(req.DocumentText)
	timestamp := time.Now().UTC()

	metrics.IncAnalysisStarted()
	started := metrics.NowMillis()

	client, err := s.NewLLM(cfg)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, err
	}

	raw, err := client.AnalyzeDocument(ctx, llm.AnalyzeInput{
		DocumentText: req.DocumentText,
		FileName:     orUnknown(req.FileName),
		FileType:     orUnknown(req.FileType),
		FileSize:     orUnknown(req.FileSize),
		Timestamp:    timestamp.Format(time.RFC3339),
	})
	if err != nil {
		s.failAnalysis(analysisID, err)
		return Result{}, err
	}

	assessment, err := ParseAssessment(raw)
	if err != nil {
		s.failAnalysis(analysisID, err)
		return Result{}, err
	}

	result := Result{
		ID:                      analysisID,
		Timestamp:               timestamp,
		FileName:                orUnknown(req.FileName),
		FileType:                orUnknown(req.FileType),
		FileSize:                orUnknown(req.FileSize),
		OverallSensitivityScore: assessment.OverallSensitivityScore,
		SensitivityLevel:        LevelForScore(assessment.OverallSensitivityScore),
		Confidence:              assessment.Confidence,
		DimensionScores:         assessment.DimensionScores,
		DepartmentRelevance:     assessment.DepartmentRelevance,
		Findings:                assessment.Findings,
		RegulatoryConcerns:      assessment.RegulatoryConcerns,
		RecommendedActions:      assessment.RecommendedActions,
		Reasoning:               assessment.Reasoning,
		Status:                  StatusCompleted,
	}

	if err := s.Incidents.Record(ctx, result.Incident(docHash)); err != nil {
		s.failAnalysis(analysisID, err)
		return Result{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - started)
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id":       analysisID,
		"sensitivity_level": result.SensitivityLevel,
		"overall_score":     result.OverallSensitivityScore,
		"doc_hash":          docHash,
	})
	return result, nil
}

// AnalyzeFile decodes an uploaded file and runs the text analysis on it.
func (s *Service) AnalyzeFile(ctx context.Context, fileName string, data []byte) (Result, error) {
	text, fileType, err := extract.DecodeText(data, fileName)
	if err != nil {
		return Result{}, err
	}
	return s.AnalyzeText(ctx, Request{
		DocumentText: text,
		FileName:     orUnknown(fileName),
		FileType:     fileType,
		FileSize:     fmt.Sprintf("%d bytes", len(data)),
	})
}

func (s *Service) failAnalysis(analysisID string, err error) {
	metrics.IncAnalysisFailed()
	telemetry.Error("analysis.failed", map[string]any{
		"analysis_id": analysisID,
		"error":       err.Error(),
	})
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "unknown"
	}
	return value
}
