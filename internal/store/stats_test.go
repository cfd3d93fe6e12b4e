package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/pkg/enums"
)

func TestStatsEmptyStore(t *testing.T) {
	s := New()
	stats := s.Stats()
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalDebates)
	assert.Nil(t, stats.MostVotedDebate)
	assert.Nil(t, stats.MostActiveUserID)
}

func TestStatsMostVotedRequiresNonZeroSum(t *testing.T) {
	s := New()
	s.CreateUser("a@example.com", "h", "", enums.RoleUser)
	s.CreateDebate("no votes here", "u", []Argument{{Side: enums.SideFor, Content: "a"}})

	stats := s.Stats()
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalDebates)
	assert.Nil(t, stats.MostVotedDebate)
}

func TestStatsMostVotedDebate(t *testing.T) {
	s := New()
	quiet := s.CreateDebate("quiet", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	loud := s.CreateDebate("loud", "u", []Argument{
		{Side: enums.SideFor, Content: "a"},
		{Side: enums.SideAgainst, Content: "b"},
	})

	quietArg := mustFirstArgument(t, s, quiet.ID)
	_, err := s.AddVote(quiet.ID, quietArg.ID, "v1")
	require.NoError(t, err)

	loudDebate, _ := s.GetDebateByID(loud.ID)
	for _, arg := range loudDebate.Arguments {
		_, err := s.AddVote(loud.ID, arg.ID, "v1")
		require.NoError(t, err)
	}

	stats := s.Stats()
	require.NotNil(t, stats.MostVotedDebate)
	assert.Equal(t, loud.ID, stats.MostVotedDebate.DebateID)
	assert.Equal(t, "loud", stats.MostVotedDebate.Topic)
	assert.Equal(t, 2, stats.MostVotedDebate.TotalVotes)
}

func TestStatsMostVotedTieGoesToFirstCreated(t *testing.T) {
	s := New()
	first := s.CreateDebate("first", "u", []Argument{{Side: enums.SideFor, Content: "a"}})
	second := s.CreateDebate("second", "u", []Argument{{Side: enums.SideFor, Content: "b"}})

	_, err := s.AddVote(first.ID, mustFirstArgument(t, s, first.ID).ID, "v1")
	require.NoError(t, err)
	_, err = s.AddVote(second.ID, mustFirstArgument(t, s, second.ID).ID, "v1")
	require.NoError(t, err)

	stats := s.Stats()
	require.NotNil(t, stats.MostVotedDebate)
	assert.Equal(t, first.ID, stats.MostVotedDebate.DebateID)
}

func TestStatsMostActiveUser(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "creator", nil)
	for i := 0; i < 3; i++ {
		_, err := s.AddArgument(debate.ID, enums.SideUser, "point", "busy-user")
		require.NoError(t, err)
	}
	_, err := s.AddArgument(debate.ID, enums.SideUser, "point", "other-user")
	require.NoError(t, err)

	stats := s.Stats()
	require.NotNil(t, stats.MostActiveUserID)
	assert.Equal(t, "busy-user", *stats.MostActiveUserID)
}

func TestStatsMostActiveUserTieBreak(t *testing.T) {
	s := New()
	debate := s.CreateDebate("topic", "creator", nil)

	// alice reaches the shared maximum before bob does
	_, err := s.AddArgument(debate.ID, enums.SideUser, "a1", "alice")
	require.NoError(t, err)
	_, err = s.AddArgument(debate.ID, enums.SideUser, "b1", "bob")
	require.NoError(t, err)
	_, err = s.AddArgument(debate.ID, enums.SideUser, "a2", "alice")
	require.NoError(t, err)
	_, err = s.AddArgument(debate.ID, enums.SideUser, "b2", "bob")
	require.NoError(t, err)

	stats := s.Stats()
	require.NotNil(t, stats.MostActiveUserID)
	assert.Equal(t, "alice", *stats.MostActiveUserID)
}

func TestStatsIgnoresArgumentsWithoutCreator(t *testing.T) {
	s := New()
	s.CreateDebate("topic", "creator", []Argument{
		{Side: enums.SideFor, Content: "seeded"},
		{Side: enums.SideAgainst, Content: "seeded"},
	})

	stats := s.Stats()
	assert.Nil(t, stats.MostActiveUserID)
}
