package repositories

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

type SessionRepository interface {
	Create(resumeText, firstQuestion string) *models.Session
	FindByID(id string) (*models.Session, error)
	Touch(id string)
	Delete(id string)
	Count() int
	Stop()
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSessionRepository returns an in-memory session store. Entries idle for
// longer than ttl are evicted by a background janitor that sweeps every
// sweepInterval.
func NewSessionRepository(ttl, sweepInterval time.Duration) SessionRepository {
	r := &sessionRepository{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.janitor(sweepInterval)

	return r
}

// Create implements SessionRepository.
func (r *sessionRepository) Create(resumeText, firstQuestion string) *models.Session {
	now := time.Now()
	session := &models.Session{
		ID:         uuid.New().String(),
		ResumeText: resumeText,
		Questions:  []string{firstQuestion},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

// FindByID implements SessionRepository. Expired entries the janitor has not
// swept yet are treated as gone. UpdatedAt is guarded by r.mu, so the expiry
// check happens while the lock is held.
func (r *sessionRepository) FindByID(id string) (*models.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	expired := ok && time.Since(session.UpdatedAt) > r.ttl
	r.mu.RUnlock()

	if !ok {
		return nil, models.ErrSessionNotFound
	}

	if expired {
		r.Delete(id)
		return nil, models.ErrSessionNotFound
	}

	return session, nil
}

// Touch implements SessionRepository. It resets the session's TTL clock.
func (r *sessionRepository) Touch(id string) {
	r.mu.Lock()
	if session, ok := r.sessions[id]; ok {
		session.UpdatedAt = time.Now()
	}
	r.mu.Unlock()
}

// Delete implements SessionRepository.
func (r *sessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Count implements SessionRepository.
func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Stop implements SessionRepository.
func (r *sessionRepository) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	r.wg.Wait()
}

func (r *sessionRepository) janitor(sweepInterval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *sessionRepository) sweep() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	evicted := 0
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.mu.Unlock()

	if evicted > 0 {
		log.Printf("🧹 Evicted %d expired interview session(s)\n", evicted)
	}
}
