package compatibility

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

// Scorer computes pairwise and group compatibility from the static matrix.
// It is stateless and safe for concurrent use.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScorePair returns the 0-100 compatibility score for two profiles. The
// second return value is false when either profile is nil or the pair is
// not defined in the matrix; undefined pairs are excluded from aggregation
// rather than treated as zero.
func (s *Scorer) ScorePair(a, b *interfaces.PersonalityProfile) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	score, ok := pairMatrix[pairKey(strings.ToLower(a.Type), strings.ToLower(b.Type))]
	return score, ok
}

// ScoreGroup aggregates pairwise scores across the group: the arithmetic
// mean of all unique unordered pairs with both endpoints known, rounded
// half-up. It returns nil when fewer than two known profiles exist, so
// callers omit the section instead of reporting a misleading number.
// The result is deterministic and invariant under input reordering.
func (s *Scorer) ScoreGroup(profiles []*interfaces.PersonalityProfile) *interfaces.TeamCompatibility {
	known := make([]*interfaces.PersonalityProfile, 0, len(profiles))
	for _, p := range profiles {
		if p != nil && ProfileFor(p.Type) != nil {
			known = append(known, p)
		}
	}
	if len(known) < 2 {
		return nil
	}

	// Sort by type code so template output is order-independent.
	sort.Slice(known, func(i, j int) bool {
		return strings.ToLower(known[i].Type) < strings.ToLower(known[j].Type)
	})

	sum := 0
	pairs := 0
	for i := 0; i < len(known); i++ {
		for j := i + 1; j < len(known); j++ {
			if score, ok := s.ScorePair(known[i], known[j]); ok {
				sum += score
				pairs++
			}
		}
	}
	if pairs == 0 {
		return nil
	}

	// Round half-up.
	score := (sum*2 + pairs) / (pairs * 2)

	result := &interfaces.TeamCompatibility{
		Score:           score,
		Strengths:       []string{},
		Challenges:      []string{},
		Recommendations: []string{},
	}
	applyGroupRules(result, known)
	return result
}

// applyGroupRules derives strengths, challenges and recommendations from
// the trait combinations present in the group. Rules fire deterministically
// on the sorted profile list.
func applyGroupRules(result *interfaces.TeamCompatibility, known []*interfaces.PersonalityProfile) {
	counts := make(map[string]int)
	for _, p := range known {
		counts[strings.ToLower(p.Type)]++
	}

	if counts["peacemaker"] > 0 && len(known) > counts["peacemaker"] {
		result.Strengths = append(result.Strengths,
			"A Peacemaker in the group can mediate between stronger personalities.")
	}
	if counts["helper"] > 0 {
		result.Strengths = append(result.Strengths,
			"Helper types keep the group connected and attentive to each other's needs.")
	}
	if counts["achiever"] > 0 && counts["enthusiast"] > 0 {
		result.Strengths = append(result.Strengths,
			"Achiever drive combined with Enthusiast idea generation sustains momentum.")
	}
	if counts["investigator"] > 0 && counts["loyalist"] > 0 {
		result.Strengths = append(result.Strengths,
			"Investigator analysis plus Loyalist risk-spotting makes plans unusually robust.")
	}
	if result.Score >= 75 {
		result.Strengths = append(result.Strengths,
			"Working styles in this group are naturally well aligned.")
	}

	if counts["challenger"] >= 2 {
		result.Challenges = append(result.Challenges,
			"Multiple Challenger types may clash over directness and control.")
		result.Recommendations = append(result.Recommendations,
			"Agree decision ownership up front so Challengers are not competing for the same call.")
	}
	if counts["reformer"] > 0 && counts["enthusiast"] > 0 {
		result.Challenges = append(result.Challenges,
			"Reformer structure and Enthusiast spontaneity can pull planning in opposite directions.")
	}
	if counts["investigator"] > 0 && counts["helper"] > 0 {
		result.Challenges = append(result.Challenges,
			"Investigators may find Helper check-ins intrusive; Helpers may read reserve as distance.")
	}
	if len(counts) == 1 {
		only := known[0]
		result.Challenges = append(result.Challenges,
			fmt.Sprintf("The whole group shares one profile (%s); a collective blind spot is likely.", only.Name))
		result.Recommendations = append(result.Recommendations,
			"Bring in an outside reviewer with a different working style for major decisions.")
	}

	if result.Score < 60 {
		result.Recommendations = append(result.Recommendations,
			"Start with an explicit working-agreement session covering communication preferences.")
	}
	if counts["peacemaker"] == 0 && counts["challenger"] > 0 {
		result.Recommendations = append(result.Recommendations,
			"Nominate a facilitator for contentious discussions; no natural mediator is present.")
	}
}
