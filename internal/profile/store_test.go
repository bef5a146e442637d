package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/tolgahan/oka/internal/catalog"
	"github.com/tolgahan/oka/internal/story"
)

// memRepo is an in-memory StateRepo recording every save.
type memRepo struct {
	state State
	ok    bool
	saves int
}

func (m *memRepo) Load() (State, bool, error) { return m.state, m.ok, nil }

func (m *memRepo) Save(state State) error {
	m.state = state
	m.ok = true
	m.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	s, err := NewStore(repo, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s, repo
}

func session(wpm int) ReadingSession {
	return ReadingSession{
		ID:              fmt.Sprintf("s-%d", wpm),
		StoryID:         "story-1",
		DurationSeconds: 60,
		WordCount:       200,
		WPM:             wpm,
		AccuracyScore:   90,
		CreatedAt:       time.Now(),
	}
}

func TestLogin_CreatesFreshProfile(t *testing.T) {
	s, repo := newTestStore(t)

	u, err := s.Login("Ayşe", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Name != "Ayşe" {
		t.Errorf("expected name Ayşe, got %q", u.Name)
	}
	if u.TotalReadings != 0 || u.AverageWPM != 0 || len(u.History) != 0 {
		t.Errorf("fresh profile must be zero-stat, got %+v", u)
	}
	if u.ID == "" {
		t.Error("fresh profile needs an id")
	}
	if repo.saves == 0 {
		t.Error("login must persist")
	}
	if _, ok := s.SavedUser("Ayşe"); !ok {
		t.Error("fresh profile must be stored under its name")
	}
}

func TestLogin_TrimsName(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Login("  Ayşe  ", false); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.HasSavedUser("Ayşe") {
		t.Error("profile must be keyed by the trimmed name")
	}
	if !s.HasSavedUser("  Ayşe ") {
		t.Error("lookup must trim too")
	}
}

func TestLogin_EmptyNameRejected(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Login("   ", false); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestLogin_LoadExistingResumesHistory(t *testing.T) {
	s, _ := newTestStore(t)

	s.Login("Ayşe", false)
	if err := s.AddReadingSession(session(100)); err != nil {
		t.Fatalf("AddReadingSession: %v", err)
	}
	s.Logout()

	u, err := s.Login("Ayşe", true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.TotalReadings != 1 {
		t.Errorf("resumed profile must keep its history, got %d readings", u.TotalReadings)
	}
}

func TestLogin_LoadExistingMissingCreatesFresh(t *testing.T) {
	s, _ := newTestStore(t)

	// loadExisting with no stored profile behaves exactly like a fresh login.
	u, err := s.Login("Ayşe", true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.TotalReadings != 0 || len(u.History) != 0 {
		t.Errorf("expected fresh zero-stat profile, got %+v", u)
	}
	if !s.HasSavedUser("Ayşe") {
		t.Error("fresh profile must be stored")
	}
}

func TestLogin_StartFreshOverwrites(t *testing.T) {
	s, _ := newTestStore(t)

	s.Login("Ayşe", false)
	for i := range 5 {
		if err := s.AddReadingSession(session(100 + i)); err != nil {
			t.Fatalf("AddReadingSession: %v", err)
		}
	}

	u, err := s.Login("Ayşe", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.TotalReadings != 0 || len(u.History) != 0 {
		t.Errorf("start-fresh login must discard prior history, got %+v", u)
	}
	stored, _ := s.SavedUser("Ayşe")
	if len(stored.History) != 0 {
		t.Error("overwrite must reach the stored profile, not just the active one")
	}
}

func TestLogout_KeepsStoredProfile(t *testing.T) {
	s, _ := newTestStore(t)

	s.Login("Ayşe", false)
	s.SetCurrentStory(&story.Story{ID: "st1"})
	s.SelectCharacters(catalog.All()[:2])

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.User() != nil {
		t.Error("logout must clear the active profile")
	}
	if s.CurrentStory() != nil || len(s.SelectedCharacters()) != 0 {
		t.Error("logout must clear the transient session state")
	}
	if !s.HasSavedUser("Ayşe") {
		t.Error("logout must not delete the stored profile")
	}
}

func TestAddReadingSession_PrependsAndAggregates(t *testing.T) {
	s, _ := newTestStore(t)
	s.Login("Ayşe", false)

	for _, wpm := range []int{100, 150, 50} {
		if err := s.AddReadingSession(session(wpm)); err != nil {
			t.Fatalf("AddReadingSession: %v", err)
		}
	}

	u := s.User()
	if u.TotalReadings != 3 {
		t.Errorf("expected 3 readings, got %d", u.TotalReadings)
	}
	if len(u.History) != u.TotalReadings {
		t.Errorf("history length %d must equal totalReadings %d", len(u.History), u.TotalReadings)
	}
	if u.History[0].WPM != 50 {
		t.Errorf("history must be newest-first, got head wpm %d", u.History[0].WPM)
	}
	if u.AverageWPM != 100 {
		t.Errorf("expected average 100, got %d", u.AverageWPM)
	}
}

func TestAddReadingSession_SyncsSavedUsers(t *testing.T) {
	s, repo := newTestStore(t)
	s.Login("Ayşe", false)

	before := repo.saves
	if err := s.AddReadingSession(session(120)); err != nil {
		t.Fatalf("AddReadingSession: %v", err)
	}
	if repo.saves != before+1 {
		t.Errorf("each mutation must persist once, got %d extra saves", repo.saves-before)
	}

	stored, _ := s.SavedUser("Ayşe")
	if stored.TotalReadings != 1 || stored.AverageWPM != 120 {
		t.Errorf("stored profile out of sync: %+v", stored)
	}
}

func TestAddReadingSession_NoActiveUser(t *testing.T) {
	s, repo := newTestStore(t)

	before := repo.saves
	if err := s.AddReadingSession(session(100)); err != nil {
		t.Fatalf("AddReadingSession without user must be a no-op, got %v", err)
	}
	if repo.saves != before {
		t.Error("no-op must not persist")
	}
}

func TestAddReward(t *testing.T) {
	s, _ := newTestStore(t)
	s.Login("Ayşe", false)

	r := Reward{ID: "r1", ImageURL: "https://example.test/img", StoryTitle: "Orman", UnlockedAt: time.Now()}
	if err := s.AddReward(r); err != nil {
		t.Fatalf("AddReward: %v", err)
	}
	u := s.User()
	if len(u.Rewards) != 1 || u.Rewards[0].ID != "r1" {
		t.Errorf("expected reward recorded, got %+v", u.Rewards)
	}
	stored, _ := s.SavedUser("Ayşe")
	if len(stored.Rewards) != 1 {
		t.Error("reward must reach the stored profile")
	}
}

func TestNewStore_HydratesFromRepo(t *testing.T) {
	repo := &memRepo{
		state: State{
			SavedUsers: map[string]UserProfile{
				"Ayşe": {ID: "p1", Name: "Ayşe", TotalReadings: 2, AverageWPM: 110,
					History: []ReadingSession{session(120), session(100)}},
			},
		},
		ok: true,
	}

	s, err := NewStore(repo, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	u, err := s.Login("Ayşe", true)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.TotalReadings != 2 {
		t.Errorf("expected hydrated profile, got %+v", u)
	}
}
