package debates

import (
	"github.com/arguehive/debatehub-backend/internal/store"
	"github.com/arguehive/debatehub-backend/pkg/enums"
)

// CreateDebateRequest starts a new debate on a topic.
type CreateDebateRequest struct {
	Topic string `json:"topic" validate:"required,min=3"`
}

// ParticipateRequest adds a user argument to a debate. Side expresses which
// position the statement supports; the stored argument carries the USER side.
type ParticipateRequest struct {
	Side    enums.Side `json:"side" validate:"required"`
	Content string     `json:"content" validate:"required,min=5"`
}

// ListResponse is one page of debates plus paging metadata.
type ListResponse struct {
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Debates []*store.Debate `json:"debates"`
}

// VoteResponse reports the post-increment vote count.
type VoteResponse struct {
	ArgumentID string `json:"argumentId"`
	Votes      int    `json:"votes"`
	Message    string `json:"message"`
}

// SummaryResponse carries the freshly generated debate summary.
type SummaryResponse struct {
	DebateID string `json:"debateId"`
	Summary  string `json:"summary"`
}
