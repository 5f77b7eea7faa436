// Package recommend computes friend-of-friend recommendations over accepted
// follow edges.
package recommend

import (
	"context"
	"sort"

	"github.com/calebthorne/sociograph/pkg/social"
)

// ScoringConfig holds the recommendation scoring policy. Keeping the weights
// in configuration lets scoring be tuned and tested independently of the
// traversal.
type ScoringConfig struct {
	// MutualWeight multiplies the number of the user's direct followees who
	// also connect to the candidate.
	MutualWeight int
	// ActivityWeight multiplies the candidate's content-creation count,
	// capped at ActivityCap.
	ActivityWeight int
	// PopularityWeight multiplies the candidate's accepted follower count,
	// capped at PopularityCap.
	PopularityWeight int
	// ActivityCap and PopularityCap keep very active or very popular users
	// from dominating recommendations on volume alone.
	ActivityCap   int
	PopularityCap int
}

// DefaultScoringConfig returns the standard scoring policy: mutual
// connections x10, activity (capped at 10) x2, popularity (capped at 50) x1.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MutualWeight:     10,
		ActivityWeight:   2,
		PopularityWeight: 1,
		ActivityCap:      10,
		PopularityCap:    50,
	}
}

// Candidate is a scored second-degree contact.
type Candidate struct {
	UserID      int64 `json:"user_id"`
	MutualCount int   `json:"mutual_count"`
	Score       int   `json:"score"`
}

// Recommender computes candidates fresh per request; nothing is cached.
type Recommender struct {
	store social.Store
	cfg   ScoringConfig
}

// New creates a Recommender. Zero-valued weights fall back to the defaults.
func New(store social.Store, cfg ScoringConfig) *Recommender {
	if cfg == (ScoringConfig{}) {
		cfg = DefaultScoringConfig()
	}
	return &Recommender{store: store, cfg: cfg}
}

// Recommend returns second-degree contacts of the user, scored and sorted by
// score descending with ties broken by user id ascending. The user and their
// direct followees are always excluded. A user with no accepted followees
// gets an empty result: there is no basis for recommendation.
func (r *Recommender) Recommend(ctx context.Context, userID int64) ([]Candidate, error) {
	direct, err := r.store.AcceptedFollowees(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(direct) == 0 {
		return nil, nil
	}

	directSet := make(map[int64]bool, len(direct))
	for _, id := range direct {
		directSet[id] = true
	}

	// mutual counts: how many of the user's direct followees reach each
	// candidate. Each friend's followee list holds distinct ids, so summing
	// per-friend hits counts distinct mutuals.
	mutual := make(map[int64]int)
	for _, friendID := range direct {
		extended, err := r.store.AcceptedFollowees(ctx, friendID)
		if err != nil {
			return nil, err
		}
		for _, candidateID := range extended {
			if candidateID == userID || directSet[candidateID] {
				continue
			}
			mutual[candidateID]++
		}
	}
	if len(mutual) == 0 {
		return nil, nil
	}

	candidates := make([]Candidate, 0, len(mutual))
	for candidateID, count := range mutual {
		activity, err := r.store.ContentCount(ctx, candidateID)
		if err != nil {
			return nil, err
		}
		popularity, err := r.store.FollowerCount(ctx, candidateID)
		if err != nil {
			return nil, err
		}

		score := count*r.cfg.MutualWeight +
			min(activity, r.cfg.ActivityCap)*r.cfg.ActivityWeight +
			min(popularity, r.cfg.PopularityCap)*r.cfg.PopularityWeight

		candidates = append(candidates, Candidate{
			UserID:      candidateID,
			MutualCount: count,
			Score:       score,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].UserID < candidates[j].UserID
	})

	return candidates, nil
}
