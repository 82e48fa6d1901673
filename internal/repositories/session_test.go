package repositories

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)
	defer repo.Stop()

	session := repo.Create("Python developer, 3 years", "Tell me about Django.")

	if session.ID == "" {
		t.Fatal("created session has no id")
	}
	if session.ResumeText != "Python developer, 3 years" {
		t.Errorf("resume text = %q", session.ResumeText)
	}
	if len(session.Questions) != 1 || session.Questions[0] != "Tell me about Django." {
		t.Errorf("questions = %v", session.Questions)
	}

	found, err := repo.FindByID(session.ID)
	if err != nil {
		t.Fatalf("FindByID() returned error: %v", err)
	}
	if found != session {
		t.Error("FindByID() returned a different session")
	}

	if repo.Count() != 1 {
		t.Errorf("Count() = %d, want 1", repo.Count())
	}
}

func TestSessionRepository_NotFound(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)
	defer repo.Stop()

	if _, err := repo.FindByID("missing"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)
	defer repo.Stop()

	session := repo.Create("resume", "question")
	repo.Delete(session.ID)

	if _, err := repo.FindByID(session.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound after delete", err)
	}
	if repo.Count() != 0 {
		t.Errorf("Count() = %d, want 0", repo.Count())
	}
}

func TestSessionRepository_ExpiredOnLookup(t *testing.T) {
	// Long sweep interval: expiry must be enforced by the lookup itself.
	repo := NewSessionRepository(20*time.Millisecond, time.Hour)
	defer repo.Stop()

	session := repo.Create("resume", "question")

	if _, err := repo.FindByID(session.ID); err != nil {
		t.Fatalf("fresh session not found: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := repo.FindByID(session.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound for expired session", err)
	}
	if repo.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after expired lookup", repo.Count())
	}
}

func TestSessionRepository_TouchResetsTTL(t *testing.T) {
	repo := NewSessionRepository(80*time.Millisecond, time.Hour)
	defer repo.Stop()

	session := repo.Create("resume", "question")

	time.Sleep(50 * time.Millisecond)
	repo.Touch(session.ID)
	time.Sleep(50 * time.Millisecond)

	// 100ms since creation, but only 50ms since the touch.
	if _, err := repo.FindByID(session.ID); err != nil {
		t.Fatalf("touched session expired: %v", err)
	}

	time.Sleep(120 * time.Millisecond)

	if _, err := repo.FindByID(session.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound once the touch ages out", err)
	}
}

func TestSessionRepository_TouchMissingSession(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)
	defer repo.Stop()

	// Touching an unknown id is a no-op.
	repo.Touch("missing")

	if repo.Count() != 0 {
		t.Errorf("Count() = %d, want 0", repo.Count())
	}
}

func TestSessionRepository_JanitorSweep(t *testing.T) {
	repo := NewSessionRepository(10*time.Millisecond, 10*time.Millisecond)
	defer repo.Stop()

	repo.Create("resume one", "question")
	repo.Create("resume two", "question")

	deadline := time.Now().Add(2 * time.Second)
	for repo.Count() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if got := repo.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0 after janitor sweep", got)
	}
}

func TestSessionRepository_ConcurrentAccess(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Hour)
	defer repo.Stop()

	var wg sync.WaitGroup
	ids := make([]string, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session := repo.Create(fmt.Sprintf("resume %d", i), "question")
			ids[i] = session.ID
			if _, err := repo.FindByID(session.ID); err != nil {
				t.Errorf("FindByID(%s) returned error: %v", session.ID, err)
			}
		}(i)
	}
	wg.Wait()

	if repo.Count() != 50 {
		t.Errorf("Count() = %d, want 50", repo.Count())
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
}
