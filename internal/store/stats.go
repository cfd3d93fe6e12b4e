package store

// DebateVoteCount identifies the debate whose arguments carry the most votes.
type DebateVoteCount struct {
	DebateID   string `json:"debateId"`
	Topic      string `json:"topic"`
	TotalVotes int    `json:"totalVotes"`
}

// Stats is an on-demand rollup over the current snapshot.
type Stats struct {
	TotalUsers       int              `json:"total_users"`
	TotalDebates     int              `json:"total_debates"`
	MostVotedDebate  *DebateVoteCount `json:"most_voted_debate"`
	MostActiveUserID *string          `json:"most_active_user_id"`
}

// Stats computes platform totals, the debate with the strictly highest vote
// sum (nil when every sum is zero, first-created wins ties) and the user with
// the most argument creations (first to reach the maximum over creation-order
// iteration wins ties, nil when no argument has a creator).
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalUsers:   len(s.userOrder),
		TotalDebates: len(s.debateOrder),
	}

	maxVotes := 0
	activity := map[string]int{}
	var mostActive string
	maxActivity := 0

	for _, id := range s.debateOrder {
		debate := s.debates[id]
		sum := 0
		for i := range debate.Arguments {
			arg := &debate.Arguments[i]
			sum += arg.Votes
			if arg.CreatedBy == "" {
				continue
			}
			activity[arg.CreatedBy]++
			if activity[arg.CreatedBy] > maxActivity {
				maxActivity = activity[arg.CreatedBy]
				mostActive = arg.CreatedBy
			}
		}
		if sum > maxVotes {
			maxVotes = sum
			stats.MostVotedDebate = &DebateVoteCount{
				DebateID:   debate.ID,
				Topic:      debate.Topic,
				TotalVotes: sum,
			}
		}
	}

	if mostActive != "" {
		stats.MostActiveUserID = &mostActive
	}
	return stats
}
