package store

import (
	"time"

	"github.com/arguehive/debatehub-backend/pkg/enums"
)

// User is a registered account. The password hash never crosses the API
// boundary.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         enums.Role `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Topic is a standalone discussion subject.
type Topic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Argument is one positioned statement inside a debate.
type Argument struct {
	ID        string     `json:"id"`
	DebateID  string     `json:"debateId"`
	Side      enums.Side `json:"side"`
	Content   string     `json:"content"`
	CreatedBy string     `json:"createdBy"`
	Votes     int        `json:"votes"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Debate aggregates arguments on a topic plus an optional AI summary.
type Debate struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	CreatedBy string     `json:"createdBy"`
	Arguments []Argument `json:"arguments"`
	Summary   string     `json:"summary"`
	CreatedAt time.Time  `json:"createdAt"`
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

func cloneTopic(t *Topic) *Topic {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

func cloneDebate(d *Debate) *Debate {
	if d == nil {
		return nil
	}
	copied := *d
	copied.Arguments = make([]Argument, len(d.Arguments))
	copy(copied.Arguments, d.Arguments)
	return &copied
}
