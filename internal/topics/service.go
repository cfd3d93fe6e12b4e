package topics

import (
	"context"
	"strings"

	"github.com/arguehive/debatehub-backend/internal/store"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
)

// CreateTopicRequest is the payload for adding a topic.
type CreateTopicRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
}

// Service defines the behavior needed by the topic controllers.
type Service interface {
	Create(ctx context.Context, userID string, req CreateTopicRequest) (*store.Topic, error)
	Get(ctx context.Context, topicID string) (*store.Topic, error)
	List(ctx context.Context) []*store.Topic
	Delete(ctx context.Context, topicID string) error
}

type topicStore interface {
	CreateTopic(title, description, createdBy string) *store.Topic
	GetTopicByID(id string) (*store.Topic, bool)
	GetAllTopics() []*store.Topic
	DeleteTopic(id string) bool
}

type service struct {
	topics topicStore
}

// NewService constructs a topic service backed by the given store.
func NewService(topics topicStore) (Service, error) {
	if topics == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "topic store required")
	}
	return &service{topics: topics}, nil
}

func (s *service) Create(_ context.Context, userID string, req CreateTopicRequest) (*store.Topic, error) {
	title := strings.TrimSpace(req.Title)
	if len(title) < 3 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title must be at least 3 characters")
	}
	return s.topics.CreateTopic(title, strings.TrimSpace(req.Description), userID), nil
}

func (s *service) Get(_ context.Context, topicID string) (*store.Topic, error) {
	topic, ok := s.topics.GetTopicByID(topicID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "topic not found")
	}
	return topic, nil
}

func (s *service) List(_ context.Context) []*store.Topic {
	return s.topics.GetAllTopics()
}

func (s *service) Delete(_ context.Context, topicID string) error {
	if !s.topics.DeleteTopic(topicID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "topic not found")
	}
	return nil
}
