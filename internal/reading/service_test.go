package reading

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tolgahan/oka/internal/llm"
)

const storyText = "Bir gün Ayşe ormanda yürüyüşe çıktı ve birçok yeni arkadaş edindi"

func validAnalysisJSON() json.RawMessage {
	return json.RawMessage(`{
		"correctWordCount": 150,
		"accuracyScore": 92,
		"feedback": "Harika okudun! Bazı kelimelerde biraz daha yavaş olabilirsin."
	}`)
}

func TestAnalyze_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	a := svc.Analyze(t.Context(), []byte("webm-bytes"), storyText, 60)

	if a.WPM != 150 {
		t.Errorf("expected wpm 150 (150 words in 60s), got %d", a.WPM)
	}
	if a.AccuracyScore != 92 {
		t.Errorf("expected accuracy 92, got %d", a.AccuracyScore)
	}
	if a.Feedback == "" {
		t.Error("expected feedback text")
	}
	if a.WordCount != WordCount(storyText) {
		t.Errorf("word count must describe the reference text, got %d", a.WordCount)
	}
	if a.DurationSeconds != 60 {
		t.Errorf("expected duration carried through, got %d", a.DurationSeconds)
	}
}

func TestAnalyze_SendsAudioAndExcerpt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, Config{MaxTokens: 512, ExcerptRunes: 10}, nil)

	svc.Analyze(t.Context(), []byte{1, 2, 3}, storyText, 60)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Audio == nil {
		t.Fatal("expected audio payload on the request")
	}
	if req.Audio.MIMEType != "audio/webm" {
		t.Errorf("expected audio/webm, got %q", req.Audio.MIMEType)
	}
	// A 10-rune excerpt cap must keep the full story text out of the prompt.
	if len(req.Messages) != 1 {
		t.Fatalf("expected one user message, got %d", len(req.Messages))
	}
	if strings.Contains(req.Messages[0].Content, storyText) {
		t.Error("prompt must carry a truncated excerpt, not the whole story")
	}
}

func TestAnalyze_ZeroDurationClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"correctWordCount": 30,
		"accuracyScore": 80,
		"feedback": "Güzel!"
	}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	a := svc.Analyze(t.Context(), []byte("x"), storyText, 0)
	if a.WPM != 1800 {
		t.Errorf("expected wpm 30*60=1800 with clamped divisor, got %d", a.WPM)
	}
	if a.DurationSeconds != 0 {
		t.Errorf("reported duration must stay 0, got %d", a.DurationSeconds)
	}
}

func TestAnalyze_ProviderDownPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig(), nil)

	a := svc.Analyze(t.Context(), []byte("x"), storyText, 45)

	if a.WPM != 0 || a.AccuracyScore != 0 {
		t.Errorf("placeholder result must zero the scores, got wpm=%d acc=%d", a.WPM, a.AccuracyScore)
	}
	if a.Feedback == "" {
		t.Error("placeholder result must carry apologetic feedback")
	}
	if a.WordCount != WordCount(storyText) {
		t.Error("placeholder result still describes the reference text")
	}
	if a.DurationSeconds != 45 {
		t.Errorf("expected duration carried through, got %d", a.DurationSeconds)
	}
}

func TestAnalyze_MalformedResponsePlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I could not hear the recording clearly.`),
	})
	svc := NewService(mock, DefaultConfig(), nil)

	a := svc.Analyze(t.Context(), []byte("x"), storyText, 30)
	if a.WPM != 0 || a.AccuracyScore != 0 {
		t.Error("malformed analysis must produce the placeholder result")
	}
}

func TestAnalyze_OutOfRangeScoreRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"correctWordCount": 50,
		"accuracyScore": 250,
		"feedback": "??"
	}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	a := svc.Analyze(t.Context(), []byte("x"), storyText, 30)
	if a.AccuracyScore != 0 {
		t.Errorf("schema violation must fall back to the placeholder, got accuracy %d", a.AccuracyScore)
	}
}
