package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

func TestProfileTableLoads(t *testing.T) {
	codes := TypeCodes()
	assert.Len(t, codes, 9)

	for _, code := range codes {
		profile := ProfileFor(code)
		require.NotNil(t, profile, "profile for %q", code)
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Strengths)
		assert.NotEmpty(t, profile.CommunicationStyle)
		assert.NotEmpty(t, profile.CoreFear)
		assert.NotEmpty(t, profile.CoreDesire)
	}
}

func TestProfileForUnknown(t *testing.T) {
	assert.Nil(t, ProfileFor(""))
	assert.Nil(t, ProfileFor("astronaut"))
	assert.NotNil(t, ProfileFor("  Reformer "))
}

func TestScorePair(t *testing.T) {
	scorer := NewScorer()

	score, ok := scorer.ScorePair(ProfileFor("helper"), ProfileFor("peacemaker"))
	require.True(t, ok)
	assert.Equal(t, 80, score)

	score, ok = scorer.ScorePair(ProfileFor("challenger"), ProfileFor("challenger"))
	require.True(t, ok)
	assert.Equal(t, 55, score)
}

func TestScorePairSymmetry(t *testing.T) {
	scorer := NewScorer()

	codes := TypeCodes()
	for _, a := range codes {
		for _, b := range codes {
			forward, okForward := scorer.ScorePair(ProfileFor(a), ProfileFor(b))
			reverse, okReverse := scorer.ScorePair(ProfileFor(b), ProfileFor(a))
			require.True(t, okForward, "pair %s/%s must be defined", a, b)
			require.True(t, okReverse)
			assert.Equal(t, forward, reverse, "pair %s/%s", a, b)
		}
	}
}

func TestScorePairNilProfile(t *testing.T) {
	scorer := NewScorer()

	_, ok := scorer.ScorePair(nil, ProfileFor("helper"))
	assert.False(t, ok)
	_, ok = scorer.ScorePair(ProfileFor("helper"), nil)
	assert.False(t, ok)
}

func TestScoreGroupMeanRoundedHalfUp(t *testing.T) {
	scorer := NewScorer()

	// reformer/helper 75, reformer/peacemaker 78, helper/peacemaker 80:
	// mean 233/3 = 77.67, rounds to 78.
	result := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("reformer"),
		ProfileFor("helper"),
		ProfileFor("peacemaker"),
	})
	require.NotNil(t, result)
	assert.Equal(t, 78, result.Score)
}

func TestScoreGroupOrderIndependent(t *testing.T) {
	scorer := NewScorer()

	forward := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("challenger"),
		ProfileFor("reformer"),
		ProfileFor("enthusiast"),
	})
	reverse := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("enthusiast"),
		ProfileFor("reformer"),
		ProfileFor("challenger"),
	})

	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, forward, reverse)
}

func TestScoreGroupTooFewKnownProfiles(t *testing.T) {
	scorer := NewScorer()

	assert.Nil(t, scorer.ScoreGroup(nil))
	assert.Nil(t, scorer.ScoreGroup([]*interfaces.PersonalityProfile{ProfileFor("helper")}))

	// Unknown types do not count toward the minimum.
	assert.Nil(t, scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("helper"),
		{Type: "astronaut"},
		nil,
	}))
}

func TestScoreGroupIgnoresUnknownProfiles(t *testing.T) {
	scorer := NewScorer()

	withUnknown := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("helper"),
		ProfileFor("peacemaker"),
		{Type: "astronaut"},
	})
	withoutUnknown := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("helper"),
		ProfileFor("peacemaker"),
	})

	require.NotNil(t, withUnknown)
	assert.Equal(t, withoutUnknown, withUnknown)
}

func TestScoreGroupChallengerRules(t *testing.T) {
	scorer := NewScorer()

	result := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("challenger"),
		ProfileFor("challenger"),
	})
	require.NotNil(t, result)

	assert.Equal(t, 55, result.Score)
	assert.NotEmpty(t, result.Challenges)
	// No peacemaker present, so a facilitator recommendation fires.
	found := false
	for _, rec := range result.Recommendations {
		if rec == "Nominate a facilitator for contentious discussions; no natural mediator is present." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreGroupSingleTypeBlindSpot(t *testing.T) {
	scorer := NewScorer()

	result := scorer.ScoreGroup([]*interfaces.PersonalityProfile{
		ProfileFor("helper"),
		ProfileFor("helper"),
		ProfileFor("helper"),
	})
	require.NotNil(t, result)

	assert.Contains(t, result.Challenges,
		"The whole group shares one profile (The Helper); a collective blind spot is likely.")
}
