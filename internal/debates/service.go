package debates

import (
	"context"
	"errors"
	"strings"

	"github.com/arguehive/debatehub-backend/internal/store"
	"github.com/arguehive/debatehub-backend/pkg/enums"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
	"github.com/arguehive/debatehub-backend/pkg/genai"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

// Service defines the behavior needed by the debate controllers.
type Service interface {
	List(ctx context.Context, page, limit int) (*ListResponse, error)
	ListAll(ctx context.Context) []*store.Debate
	Get(ctx context.Context, debateID string) (*store.Debate, error)
	Create(ctx context.Context, userID string, req CreateDebateRequest) (*store.Debate, error)
	Participate(ctx context.Context, userID, debateID string, req ParticipateRequest) (*store.Argument, error)
	Vote(ctx context.Context, userID, debateID, argumentID string) (*VoteResponse, error)
	Summarize(ctx context.Context, debateID string) (*SummaryResponse, error)
	Delete(ctx context.Context, debateID string) error
}

type debateStore interface {
	CreateDebate(topic, createdBy string, seeded []store.Argument) *store.Debate
	GetDebateByID(id string) (*store.Debate, bool)
	GetAllDebates() []*store.Debate
	ListDebatesPaginated(page, limit int) ([]*store.Debate, int)
	DeleteDebate(id string) bool
	AddArgument(debateID string, side enums.Side, content, createdBy string) (*store.Argument, error)
	AddVote(debateID, argumentID, userID string) (int, error)
	UpdateSummary(debateID, summary string) bool
}

type service struct {
	debates   debateStore
	generator genai.Generator
	logg      *logger.Logger
}

// ServiceParams bundles the dependencies required to build a debate service.
type ServiceParams struct {
	Debates   debateStore
	Generator genai.Generator
	Logger    *logger.Logger
}

// NewService constructs a debate service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Debates == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "debate store required")
	}
	if params.Generator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "argument generator required")
	}
	return &service{
		debates:   params.Debates,
		generator: params.Generator,
		logg:      params.Logger,
	}, nil
}

func (s *service) List(_ context.Context, page, limit int) (*ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = store.DefaultPageSize
	}
	if limit > store.MaxPageSize {
		limit = store.MaxPageSize
	}
	debates, total := s.debates.ListDebatesPaginated(page, limit)
	return &ListResponse{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Debates: debates,
	}, nil
}

func (s *service) ListAll(_ context.Context) []*store.Debate {
	return s.debates.GetAllDebates()
}

func (s *service) Get(_ context.Context, debateID string) (*store.Debate, error) {
	debate, ok := s.debates.GetDebateByID(debateID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
	}
	return debate, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateDebateRequest) (*store.Debate, error) {
	topic := strings.TrimSpace(req.Topic)
	if len(topic) < 3 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "topic must be at least 3 characters")
	}

	generated := s.generator.GenerateDebate(ctx, topic)
	seeded := make([]store.Argument, 0, len(generated.For)+len(generated.Against))
	for _, content := range generated.For {
		seeded = append(seeded, store.Argument{Side: enums.SideFor, Content: content})
	}
	for _, content := range generated.Against {
		seeded = append(seeded, store.Argument{Side: enums.SideAgainst, Content: content})
	}

	debate := s.debates.CreateDebate(topic, userID, seeded)
	if s.logg != nil {
		s.logg.Info(s.logg.WithDebateID(ctx, debate.ID), "debate created")
	}
	return debate, nil
}

func (s *service) Participate(ctx context.Context, userID, debateID string, req ParticipateRequest) (*store.Argument, error) {
	if req.Side != enums.SideFor && req.Side != enums.SideAgainst {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "side must be FOR or AGAINST")
	}
	content := strings.TrimSpace(req.Content)
	if len(content) < 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content must be at least 5 characters")
	}

	arg, err := s.debates.AddArgument(debateID, enums.SideUser, content, userID)
	if err != nil {
		if errors.Is(err, store.ErrDebateNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add argument")
	}
	return arg, nil
}

func (s *service) Vote(ctx context.Context, userID, debateID, argumentID string) (*VoteResponse, error) {
	votes, err := s.debates.AddVote(debateID, argumentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDebateNotFound):
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
		case errors.Is(err, store.ErrArgumentNotFound):
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "argument not found")
		case errors.Is(err, store.ErrAlreadyVoted):
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "you have already voted for this argument")
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add vote")
		}
	}
	return &VoteResponse{
		ArgumentID: argumentID,
		Votes:      votes,
		Message:    "vote recorded",
	}, nil
}

func (s *service) Summarize(ctx context.Context, debateID string) (*SummaryResponse, error) {
	debate, ok := s.debates.GetDebateByID(debateID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
	}
	if len(debate.Arguments) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "debate has no arguments to summarize")
	}

	contents := make([]string, 0, len(debate.Arguments))
	for _, arg := range debate.Arguments {
		contents = append(contents, arg.Content)
	}
	summary := s.generator.Summarize(ctx, contents)

	if !s.debates.UpdateSummary(debateID, summary) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
	}
	return &SummaryResponse{
		DebateID: debateID,
		Summary:  summary,
	}, nil
}

func (s *service) Delete(_ context.Context, debateID string) error {
	if !s.debates.DeleteDebate(debateID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "debate not found")
	}
	return nil
}
