package models

import (
	"sync"
	"time"
)

// Session holds the full transcript of one candidate's interview.
// The embedded mutex serializes mutating operations on a single session;
// holders must keep it for the whole submit-answer transition.
// UpdatedAt is owned by the session repository and only read or written
// under the repository's lock (see SessionRepository.Touch).
type Session struct {
	sync.Mutex

	ID          string
	ResumeText  string
	Questions   []string
	Answers     []string
	Evaluations []Evaluation
	Completed   bool
	Report      *FinalReport
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnsweredCount returns the number of completed rounds.
func (s *Session) AnsweredCount() int {
	return len(s.Answers)
}
