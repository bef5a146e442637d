package reward

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/llm"
	"github.com/tolgahan/oka/internal/story"
)

// Config holds reward image generation settings.
type Config struct {
	// ImageBaseURL overrides the image service endpoint (tests).
	ImageBaseURL string
	// URLOptions are passed through to the image URL. Zero by default.
	URLOptions URLOptions
	// MaxTokens bounds the scene description call.
	MaxTokens int
}

// DefaultConfig returns reward generation defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 64}
}

// Service produces reward image URLs in two stages: a short scene
// description from the model, then a deterministic coloring-page prompt
// composed into the image service URL. The returned URL is never empty;
// whether it actually renders is checked separately via Client.Check,
// because that failure is discovered downstream and needs a visible retry.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates a reward image service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// GenerateImageURL returns the reward image URL for a finished story.
// Scene generation failure falls back to a placeholder image URL carrying
// the story title.
func (s *Service) GenerateImageURL(ctx context.Context, st *story.Story) string {
	ctx = llm.WithPurpose(ctx, "reward-scene")

	scene, err := s.describeScene(ctx, st)
	if err != nil {
		s.log.Warn("scene description failed, using placeholder image",
			zap.String("story", st.Title),
			zap.Error(err),
		)
		return PlaceholderURL(st.Title)
	}

	return BuildImageURL(s.cfg.ImageBaseURL, scene, s.cfg.URLOptions)
}

func (s *Service) describeScene(ctx context.Context, st *story.Story) (string, error) {
	if s.provider == nil {
		return "", &llm.ErrProviderUnavailable{}
	}

	req := llm.Request{
		System: sceneSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSceneUserMessage(st)},
		},
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("scene description: %w", err)
	}

	scene := strings.TrimSpace(string(resp.Content))
	scene = strings.Trim(scene, `"`)
	if scene == "" {
		return "", fmt.Errorf("scene description: empty response")
	}

	return scene, nil
}
