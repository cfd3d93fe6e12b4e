package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arguehive/debatehub-backend/pkg/enums"
)

// Sentinel errors mapped to transport codes by the calling services.
var (
	ErrDebateNotFound   = errors.New("debate not found")
	ErrArgumentNotFound = errors.New("argument not found")
	ErrAlreadyVoted     = errors.New("user already voted for this argument")
)

const (
	// MaxPageSize caps the per-page debate listing size.
	MaxPageSize = 100
	// DefaultPageSize applies when the caller passes a non-positive limit.
	DefaultPageSize = 10
)

// Store is the in-memory source of truth for users, topics, debates,
// arguments and the vote ledger. A single mutex guards all state; reads
// return copies so callers can marshal without holding the lock.
type Store struct {
	mu sync.RWMutex

	users     map[string]*User
	userOrder []string

	topics     map[string]*Topic
	topicOrder []string

	debates     map[string]*Debate
	debateOrder []string

	// argumentID -> set of userIDs that voted for it.
	votes map[string]map[string]struct{}
}

// New builds an empty store.
func New() *Store {
	return &Store{
		users:   map[string]*User{},
		topics:  map[string]*Topic{},
		debates: map[string]*Debate{},
		votes:   map[string]map[string]struct{}{},
	}
}

// CreateUser inserts a user. Name defaults to the local part of the email
// when blank. Email uniqueness is the caller's contract.
func (s *Store) CreateUser(email, passwordHash, name string, role enums.Role) *User {
	if strings.TrimSpace(name) == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return cloneUser(user)
}

// GetUserByEmail returns the first user created with the given email.
func (s *Store) GetUserByEmail(email string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if user := s.users[id]; user != nil && user.Email == email {
			return cloneUser(user), true
		}
	}
	return nil, false
}

// GetUserByID returns the user with the given id.
func (s *Store) GetUserByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(user), true
}

// GetAllUsers returns all users in creation order.
func (s *Store) GetAllUsers() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, cloneUser(s.users[id]))
	}
	return out
}

// CreateTopic inserts a topic.
func (s *Store) CreateTopic(title, description, createdBy string) *Topic {
	topic := &Topic{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic.ID] = topic
	s.topicOrder = append(s.topicOrder, topic.ID)
	return cloneTopic(topic)
}

// GetTopicByID returns the topic with the given id.
func (s *Store) GetTopicByID(id string) (*Topic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	topic, ok := s.topics[id]
	if !ok {
		return nil, false
	}
	return cloneTopic(topic), true
}

// GetAllTopics returns all topics in creation order.
func (s *Store) GetAllTopics() []*Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Topic, 0, len(s.topicOrder))
	for _, id := range s.topicOrder {
		out = append(out, cloneTopic(s.topics[id]))
	}
	return out
}

// DeleteTopic removes a topic and reports whether a removal occurred.
func (s *Store) DeleteTopic(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.topics[id]; !ok {
		return false
	}
	delete(s.topics, id)
	s.topicOrder = removeID(s.topicOrder, id)
	return true
}

// CreateDebate inserts a debate with its seeded arguments.
func (s *Store) CreateDebate(topic, createdBy string, seeded []Argument) *Debate {
	debate := &Debate{
		ID:        uuid.NewString(),
		Topic:     topic,
		CreatedBy: createdBy,
		Arguments: make([]Argument, 0, len(seeded)),
		CreatedAt: time.Now().UTC(),
	}
	for _, arg := range seeded {
		arg.ID = uuid.NewString()
		arg.DebateID = debate.ID
		arg.Votes = 0
		if arg.CreatedAt.IsZero() {
			arg.CreatedAt = debate.CreatedAt
		}
		debate.Arguments = append(debate.Arguments, arg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.debates[debate.ID] = debate
	s.debateOrder = append(s.debateOrder, debate.ID)
	return cloneDebate(debate)
}

// GetDebateByID returns the debate with the given id.
func (s *Store) GetDebateByID(id string) (*Debate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	debate, ok := s.debates[id]
	if !ok {
		return nil, false
	}
	return cloneDebate(debate), true
}

// GetAllDebates returns all debates in creation order.
func (s *Store) GetAllDebates() []*Debate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Debate, 0, len(s.debateOrder))
	for _, id := range s.debateOrder {
		out = append(out, cloneDebate(s.debates[id]))
	}
	return out
}

// ListDebatesPaginated returns one page of the creation-ordered debate
// sequence plus the total count. Page starts at 1; out-of-range pages yield
// an empty slice. Limit is clamped to [1, MaxPageSize].
func (s *Store) ListDebatesPaginated(page, limit int) ([]*Debate, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.debateOrder)
	start := (page - 1) * limit
	if start >= total {
		return []*Debate{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]*Debate, 0, end-start)
	for _, id := range s.debateOrder[start:end] {
		out = append(out, cloneDebate(s.debates[id]))
	}
	return out, total
}

// DeleteDebate removes a debate along with the vote ledger entries of its
// arguments. Reports whether a removal occurred.
func (s *Store) DeleteDebate(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	debate, ok := s.debates[id]
	if !ok {
		return false
	}
	for _, arg := range debate.Arguments {
		delete(s.votes, arg.ID)
	}
	delete(s.debates, id)
	s.debateOrder = removeID(s.debateOrder, id)
	return true
}

// AddArgument appends an argument to a debate with zero votes.
func (s *Store) AddArgument(debateID string, side enums.Side, content, createdBy string) (*Argument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	debate, ok := s.debates[debateID]
	if !ok {
		return nil, ErrDebateNotFound
	}
	arg := Argument{
		ID:        uuid.NewString(),
		DebateID:  debateID,
		Side:      side,
		Content:   content,
		CreatedBy: createdBy,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}
	debate.Arguments = append(debate.Arguments, arg)
	return &arg, nil
}

// GetArgumentByID looks an argument up inside one debate.
func (s *Store) GetArgumentByID(debateID, argumentID string) (*Argument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debate, ok := s.debates[debateID]
	if !ok {
		return nil, ErrDebateNotFound
	}
	for i := range debate.Arguments {
		if debate.Arguments[i].ID == argumentID {
			copied := debate.Arguments[i]
			return &copied, nil
		}
	}
	return nil, ErrArgumentNotFound
}

// UpdateSummary overwrites the debate's summary. Reports whether the debate
// existed.
func (s *Store) UpdateSummary(debateID, summary string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	debate, ok := s.debates[debateID]
	if !ok {
		return false
	}
	debate.Summary = summary
	return true
}

// AddVote records one vote for (argumentID, userID) and increments the
// argument's counter in the same critical section. Duplicate attempts return
// ErrAlreadyVoted; exactly one concurrent attempt per pair wins. Returns the
// post-increment count.
func (s *Store) AddVote(debateID, argumentID, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	debate, ok := s.debates[debateID]
	if !ok {
		return 0, ErrDebateNotFound
	}
	var arg *Argument
	for i := range debate.Arguments {
		if debate.Arguments[i].ID == argumentID {
			arg = &debate.Arguments[i]
			break
		}
	}
	if arg == nil {
		return 0, ErrArgumentNotFound
	}

	voters, ok := s.votes[argumentID]
	if !ok {
		voters = map[string]struct{}{}
		s.votes[argumentID] = voters
	}
	if _, dup := voters[userID]; dup {
		return 0, ErrAlreadyVoted
	}
	voters[userID] = struct{}{}
	arg.Votes++
	return arg.Votes, nil
}

// HasVoted reports whether the user already voted for the argument.
func (s *Store) HasVoted(argumentID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voters, ok := s.votes[argumentID]
	if !ok {
		return false
	}
	_, voted := voters[userID]
	return voted
}

func removeID(order []string, id string) []string {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
