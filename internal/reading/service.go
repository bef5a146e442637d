package reading

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/llm"
)

// audioMIMEType is the recording format produced by the capture layer.
const audioMIMEType = "audio/webm"

// Service evaluates recorded read-alouds. Like story generation, it never
// surfaces upstream failures: a failed analysis yields a zero result with
// apologetic feedback so the reading flow completes.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates a reading analysis service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

type analysisOutput struct {
	CorrectWordCount int    `json:"correctWordCount"`
	AccuracyScore    int    `json:"accuracyScore"`
	Feedback         string `json:"feedback"`
}

// Analyze sends the recording and a story excerpt to the model and returns
// the computed analysis. durationSeconds below 1 is clamped for the wpm
// division. Always returns a usable Analysis.
func (s *Service) Analyze(ctx context.Context, audio []byte, storyText string, durationSeconds int) Analysis {
	ctx = llm.WithPurpose(ctx, "reading-analysis")

	out, err := s.analyze(ctx, audio, storyText)
	if err != nil {
		s.log.Warn("reading analysis failed, returning placeholder result", zap.Error(err))
		return Analysis{
			WPM:             0,
			AccuracyScore:   0,
			Feedback:        fallbackFeedback,
			WordCount:       WordCount(storyText),
			DurationSeconds: durationSeconds,
		}
	}

	return Analysis{
		WPM:             WPM(out.CorrectWordCount, durationSeconds),
		AccuracyScore:   out.AccuracyScore,
		Feedback:        out.Feedback,
		WordCount:       WordCount(storyText),
		DurationSeconds: durationSeconds,
	}
}

func (s *Service) analyze(ctx context.Context, audio []byte, storyText string) (*analysisOutput, error) {
	if s.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisUserMessage(storyText, s.cfg.ExcerptRunes)},
		},
		Audio: &llm.AudioPayload{
			Data:     audio,
			MIMEType: audioMIMEType,
		},
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading analysis: %w", err)
	}

	raw, err := llm.RecoverJSON(string(resp.Content))
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateJSON(AnalysisSchema, raw); err != nil {
		return nil, err
	}

	var out analysisOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	return &out, nil
}
