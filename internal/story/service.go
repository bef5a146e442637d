package story

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/catalog"
	"github.com/tolgahan/oka/internal/ident"
	"github.com/tolgahan/oka/internal/llm"
)

// Service generates stories. Upstream failures never surface: a child who
// asked for a story always gets one, falling back to a locally templated
// tale when the model misbehaves or is unreachable.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a story generation service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log, now: time.Now}
}

type storyOutput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Theme   string `json:"theme"`
}

// Generate produces a story for childName featuring the given characters.
// characters must hold 1 to 3 entries; that is the only error path —
// every upstream failure is absorbed into the fallback story.
func (s *Service) Generate(ctx context.Context, childName string, characters []catalog.Character) (*Story, error) {
	if len(characters) == 0 || len(characters) > catalog.MaxSelected {
		return nil, fmt.Errorf("story requires 1 to %d characters, got %d", catalog.MaxSelected, len(characters))
	}

	ctx = llm.WithPurpose(ctx, "story")

	out, err := s.generate(ctx, childName, characters)
	if err != nil {
		s.log.Warn("story generation failed, using fallback",
			zap.String("child", childName),
			zap.Error(err),
		)
		return s.fallback(childName, characters), nil
	}

	return &Story{
		ID:         ident.New(),
		Title:      out.Title,
		Content:    out.Content,
		Theme:      out.Theme,
		Characters: characters,
		CreatedAt:  s.now(),
	}, nil
}

func (s *Service) generate(ctx context.Context, childName string, characters []catalog.Character) (*storyOutput, error) {
	if s.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	req := llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStoryUserMessage(childName, characters)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("story generation: %w", err)
	}

	// The model answers in free text; recover the embedded JSON and check
	// it against the schema before trusting any field.
	raw, err := llm.RecoverJSON(string(resp.Content))
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateJSON(StorySchema, raw); err != nil {
		return nil, err
	}

	var out storyOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse story response: %w", err)
	}

	return &out, nil
}

// fallback builds the deterministic local story used when generation fails.
func (s *Service) fallback(childName string, characters []catalog.Character) *Story {
	first := characters[0].Name
	second := "bir arkadaş"
	if len(characters) > 1 {
		second = characters[1].Name
	}

	return &Story{
		ID:    ident.New(),
		Title: fmt.Sprintf("%s ve %s'nin Macerası", childName, first),
		Content: fmt.Sprintf(
			"Bir gün %s, ormanda yürüyüşe çıktı. Yanında en sevdiği arkadaşı %s vardı. "+
				"Birden karşılarına %s çıktı. Hep birlikte oyun oynamaya başladılar. "+
				"Çok eğlenceli bir gün geçirdiler.",
			childName, first, second),
		Theme:      "Arkadaşlık",
		Characters: characters,
		CreatedAt:  s.now(),
	}
}
