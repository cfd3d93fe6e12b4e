package analytics

import (
	"context"

	"github.com/arguehive/debatehub-backend/internal/store"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
)

// MostActiveUser is the hydrated view of the top argument author.
type MostActiveUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Overview is the admin analytics rollup.
type Overview struct {
	TotalUsers      int                    `json:"total_users"`
	TotalDebates    int                    `json:"total_debates"`
	MostVotedDebate *store.DebateVoteCount `json:"most_voted_debate"`
	MostActiveUser  *MostActiveUser        `json:"most_active_user"`
}

// Service defines the behavior needed by the admin analytics controller.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type statsStore interface {
	Stats() store.Stats
	GetUserByID(id string) (*store.User, bool)
}

type service struct {
	stats statsStore
}

// NewService constructs an analytics service backed by the given store.
func NewService(stats statsStore) (Service, error) {
	if stats == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "stats store required")
	}
	return &service{stats: stats}, nil
}

// Overview computes the platform rollup and hydrates the most active user.
// A stale most-active id (user since removed) degrades to a nil user rather
// than failing the rollup.
func (s *service) Overview(_ context.Context) (*Overview, error) {
	stats := s.stats.Stats()
	overview := &Overview{
		TotalUsers:      stats.TotalUsers,
		TotalDebates:    stats.TotalDebates,
		MostVotedDebate: stats.MostVotedDebate,
	}
	if stats.MostActiveUserID != nil {
		if user, ok := s.stats.GetUserByID(*stats.MostActiveUserID); ok {
			overview.MostActiveUser = &MostActiveUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			}
		}
	}
	return overview, nil
}
