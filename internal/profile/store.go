package profile

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/catalog"
	"github.com/tolgahan/oka/internal/ident"
	"github.com/tolgahan/oka/internal/story"
)

// Store holds the active profile, every saved profile, and the transient
// session selections. It is mutated from a single goroutine (the CLI's
// interaction flow) and writes the persisted record synchronously after
// every mutation that touches it.
type Store struct {
	repo    StateRepo
	log     *zap.Logger
	state   State
	session Session
}

// NewStore creates a Store hydrated from the repo.
func NewStore(repo StateRepo, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	state, ok, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile state: %w", err)
	}
	if !ok || state.SavedUsers == nil {
		state.SavedUsers = make(map[string]UserProfile)
	}

	return &Store{repo: repo, log: log, state: state}, nil
}

// User returns the active profile, or nil when nobody is logged in.
func (s *Store) User() *UserProfile {
	return s.state.User
}

// SavedUser looks up a stored profile by trimmed name.
func (s *Store) SavedUser(name string) (UserProfile, bool) {
	p, ok := s.state.SavedUsers[strings.TrimSpace(name)]
	return p, ok
}

// HasSavedUser reports whether a profile is stored under the trimmed name.
// The caller uses this to decide whether to offer the "continue where you
// left off" choice before logging in.
func (s *Store) HasSavedUser(name string) bool {
	_, ok := s.state.SavedUsers[strings.TrimSpace(name)]
	return ok
}

// Login activates a profile for name. With loadExisting set and a stored
// profile present, that profile becomes active untouched. Otherwise a
// fresh zero-stat profile is created, activated, and stored — overwriting
// any previous profile under the same name (the explicit start-fresh path).
func (s *Store) Login(name string, loadExisting bool) (*UserProfile, error) {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return nil, fmt.Errorf("profile name is required")
	}

	if loadExisting {
		if existing, ok := s.state.SavedUsers[normalized]; ok {
			s.state.User = &existing
			if err := s.persist(); err != nil {
				return nil, err
			}
			s.log.Info("profile resumed", zap.String("name", normalized))
			return s.state.User, nil
		}
	}

	fresh := UserProfile{
		ID:      ident.New(),
		Name:    normalized,
		Rewards: []Reward{},
		History: []ReadingSession{},
	}
	s.state.User = &fresh
	s.state.SavedUsers[normalized] = fresh
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.log.Info("profile created", zap.String("name", normalized))
	return s.state.User, nil
}

// Logout clears the active profile. The stored profile is kept.
func (s *Store) Logout() error {
	s.state.User = nil
	s.session = Session{}
	return s.persist()
}

// SelectCharacters replaces the transient character selection.
func (s *Store) SelectCharacters(chars []catalog.Character) {
	s.session.SelectedCharacters = chars
}

// SelectedCharacters returns the current character selection.
func (s *Store) SelectedCharacters() []catalog.Character {
	return s.session.SelectedCharacters
}

// SetCurrentStory replaces the transient current story.
func (s *Store) SetCurrentStory(st *story.Story) {
	s.session.CurrentStory = st
}

// CurrentStory returns the story currently being read, if any.
func (s *Store) CurrentStory() *story.Story {
	return s.session.CurrentStory
}

// AddReadingSession prepends the session to the active profile's history,
// recomputes the derived statistics, and persists. No-op without an
// active profile.
func (s *Store) AddReadingSession(session ReadingSession) error {
	if s.state.User == nil {
		return nil
	}

	user := *s.state.User
	user.History = append([]ReadingSession{session}, user.History...)

	agg := Recalculate(user.History)
	user.TotalReadings = agg.TotalReadings
	user.AverageWPM = agg.AverageWPM

	s.state.User = &user
	s.state.SavedUsers[user.Name] = user
	return s.persist()
}

// AddReward appends an unlocked reward to the active profile and persists.
// No-op without an active profile.
func (s *Store) AddReward(reward Reward) error {
	if s.state.User == nil {
		return nil
	}

	user := *s.state.User
	user.Rewards = append(user.Rewards, reward)

	s.state.User = &user
	s.state.SavedUsers[user.Name] = user
	return s.persist()
}

func (s *Store) persist() error {
	if err := s.repo.Save(s.state); err != nil {
		return fmt.Errorf("save profile state: %w", err)
	}
	return nil
}
