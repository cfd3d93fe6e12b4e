package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/pkg/enums"
)

func TestCreateUserDefaultsNameToEmailLocalPart(t *testing.T) {
	s := New()

	user := s.CreateUser("ada@example.com", "hash", "", enums.RoleUser)
	assert.Equal(t, "ada", user.Name)
	assert.Equal(t, enums.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	named := s.CreateUser("grace@example.com", "hash", "Grace", enums.RoleAdmin)
	assert.Equal(t, "Grace", named.Name)

	weird := s.CreateUser("@example.com", "hash", "", enums.RoleUser)
	assert.Equal(t, "@example.com", weird.Name)
}

func TestGetUserByEmailReturnsFirstCreated(t *testing.T) {
	s := New()
	first := s.CreateUser("dup@example.com", "h1", "first", enums.RoleUser)
	s.CreateUser("dup@example.com", "h2", "second", enums.RoleUser)

	found, ok := s.GetUserByEmail("dup@example.com")
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID)

	_, ok = s.GetUserByEmail("missing@example.com")
	assert.False(t, ok)
}

func TestTopicLifecycle(t *testing.T) {
	s := New()
	topic := s.CreateTopic("Remote work", "Should everyone work remote?", "creator-id")

	fetched, ok := s.GetTopicByID(topic.ID)
	require.True(t, ok)
	assert.Equal(t, "Remote work", fetched.Title)

	all := s.GetAllTopics()
	require.Len(t, all, 1)

	assert.True(t, s.DeleteTopic(topic.ID))
	assert.False(t, s.DeleteTopic(topic.ID))
	assert.Empty(t, s.GetAllTopics())
}

func TestCreateDebateAssignsIdentityToSeededArguments(t *testing.T) {
	s := New()
	debate := s.CreateDebate("AI in schools", "user-1", []Argument{
		{Side: enums.SideFor, Content: "Personalized learning", CreatedBy: "user-1", Votes: 99},
		{Side: enums.SideAgainst, Content: "Screen time concerns"},
	})

	require.Len(t, debate.Arguments, 2)
	for _, arg := range debate.Arguments {
		assert.NotEmpty(t, arg.ID)
		assert.Equal(t, debate.ID, arg.DebateID)
		assert.Zero(t, arg.Votes)
		assert.False(t, arg.CreatedAt.IsZero())
	}
	assert.NotEqual(t, debate.Arguments[0].ID, debate.Arguments[1].ID)
}

func TestGetDebateReturnsDefensiveCopy(t *testing.T) {
	s := New()
	debate := s.CreateDebate("Space mining", "user-1", []Argument{{Side: enums.SideFor, Content: "Resources"}})

	copy1, ok := s.GetDebateByID(debate.ID)
	require.True(t, ok)
	copy1.Topic = "mutated"
	copy1.Arguments[0].Content = "mutated"

	copy2, ok := s.GetDebateByID(debate.ID)
	require.True(t, ok)
	assert.Equal(t, "Space mining", copy2.Topic)
	assert.Equal(t, "Resources", copy2.Arguments[0].Content)
}

func TestListDebatesPaginated(t *testing.T) {
	s := New()
	var ids []string
	for i := 0; i < 25; i++ {
		d := s.CreateDebate(fmt.Sprintf("topic-%02d", i), "user-1", nil)
		ids = append(ids, d.ID)
	}

	page, total := s.ListDebatesPaginated(1, 10)
	assert.Equal(t, 25, total)
	require.Len(t, page, 10)
	assert.Equal(t, ids[0], page[0].ID)

	page, _ = s.ListDebatesPaginated(3, 10)
	require.Len(t, page, 5)
	assert.Equal(t, ids[20], page[0].ID)

	page, total = s.ListDebatesPaginated(4, 10)
	assert.Equal(t, 25, total)
	assert.Empty(t, page)

	// invalid inputs clamp instead of erroring
	page, _ = s.ListDebatesPaginated(0, 0)
	require.Len(t, page, DefaultPageSize)
	assert.Equal(t, ids[0], page[0].ID)

	page, _ = s.ListDebatesPaginated(1, MaxPageSize+50)
	assert.Len(t, page, 25)
}

func TestAddArgument(t *testing.T) {
	s := New()
	debate := s.CreateDebate("Nuclear power", "user-1", nil)

	arg, err := s.AddArgument(debate.ID, enums.SideUser, "Baseload matters", "user-2")
	require.NoError(t, err)
	assert.Equal(t, debate.ID, arg.DebateID)
	assert.Equal(t, enums.SideUser, arg.Side)
	assert.Zero(t, arg.Votes)

	fetched, _ := s.GetDebateByID(debate.ID)
	require.Len(t, fetched.Arguments, 1)

	_, err = s.AddArgument("missing", enums.SideFor, "content", "user-2")
	assert.ErrorIs(t, err, ErrDebateNotFound)
}

func TestGetArgumentByIDScopedToDebate(t *testing.T) {
	s := New()
	d1 := s.CreateDebate("first", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	d2 := s.CreateDebate("second", "u", nil)

	argID := mustFirstArgument(t, s, d1.ID).ID

	arg, err := s.GetArgumentByID(d1.ID, argID)
	require.NoError(t, err)
	assert.Equal(t, argID, arg.ID)

	_, err = s.GetArgumentByID(d2.ID, argID)
	assert.ErrorIs(t, err, ErrArgumentNotFound)

	_, err = s.GetArgumentByID("missing", argID)
	assert.ErrorIs(t, err, ErrDebateNotFound)
}

func TestUpdateSummary(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "u", nil)

	assert.True(t, s.UpdateSummary(debate.ID, "first summary"))
	assert.True(t, s.UpdateSummary(debate.ID, "second summary"))
	fetched, _ := s.GetDebateByID(debate.ID)
	assert.Equal(t, "second summary", fetched.Summary)

	assert.False(t, s.UpdateSummary("missing", "x"))
}

func TestAddVoteSemantics(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	argID := mustFirstArgument(t, s, debate.ID).ID

	votes, err := s.AddVote(debate.ID, argID, "voter-1")
	require.NoError(t, err)
	assert.Equal(t, 1, votes)

	_, err = s.AddVote(debate.ID, argID, "voter-1")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	votes, err = s.AddVote(debate.ID, argID, "voter-2")
	require.NoError(t, err)
	assert.Equal(t, 2, votes)

	_, err = s.AddVote("missing", argID, "voter-3")
	assert.ErrorIs(t, err, ErrDebateNotFound)
	_, err = s.AddVote(debate.ID, "missing", "voter-3")
	assert.ErrorIs(t, err, ErrArgumentNotFound)

	assert.True(t, s.HasVoted(argID, "voter-1"))
	assert.False(t, s.HasVoted(argID, "voter-9"))
	assert.False(t, s.HasVoted("missing", "voter-1"))
}

func TestAddVoteConcurrentDuplicatesHaveOneWinner(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	argID := mustFirstArgument(t, s, debate.ID).ID

	const attempts = 64
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddVote(debate.ID, argID, "same-user")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins, dups := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case err == ErrAlreadyVoted:
			dups++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, dups)

	arg, err := s.GetArgumentByID(debate.ID, argID)
	require.NoError(t, err)
	assert.Equal(t, 1, arg.Votes)
}

func TestAddVoteConcurrentDistinctUsers(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	argID := mustFirstArgument(t, s, debate.ID).ID

	const voters = 50
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := s.AddVote(debate.ID, argID, fmt.Sprintf("voter-%d", n)); err != nil {
				t.Errorf("vote %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	arg, err := s.GetArgumentByID(debate.ID, argID)
	require.NoError(t, err)
	assert.Equal(t, voters, arg.Votes)
}

func TestDeleteDebateClearsVoteLedger(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	argID := mustFirstArgument(t, s, debate.ID).ID

	_, err := s.AddVote(debate.ID, argID, "voter-1")
	require.NoError(t, err)

	assert.True(t, s.DeleteDebate(debate.ID))
	assert.False(t, s.DeleteDebate(debate.ID))
	assert.False(t, s.HasVoted(argID, "voter-1"))
	_, ok := s.GetDebateByID(debate.ID)
	assert.False(t, ok)
}

func mustFirstArgument(t *testing.T, s *Store, debateID string) Argument {
	t.Helper()
	debate, ok := s.GetDebateByID(debateID)
	require.True(t, ok)
	require.NotEmpty(t, debate.Arguments)
	return debate.Arguments[0]
}
