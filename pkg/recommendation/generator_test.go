package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

func TestGenerateEmptyInput(t *testing.T) {
	generator := New()

	recommendations := generator.Generate(nil, nil, nil, nil)
	require.NotNil(t, recommendations)
	assert.Empty(t, recommendations)

	recommendations = generator.Generate(&interfaces.Intent{
		PrimaryCategory: interfaces.IntentGeneral,
	}, nil, nil, nil)
	require.NotNil(t, recommendations)
	assert.Empty(t, recommendations)
}

func TestGenerateTeamCompositionScores(t *testing.T) {
	generator := New()
	queryIntent := &interfaces.Intent{PrimaryCategory: interfaces.IntentTeamComposition}

	high := generator.Generate(queryIntent, nil, nil, &interfaces.TeamCompatibility{Score: 82})
	require.Len(t, high, 1)
	assert.Contains(t, high[0], "82/100")
	assert.Contains(t, high[0], "gel quickly")

	low := generator.Generate(queryIntent, nil, nil, &interfaces.TeamCompatibility{Score: 55})
	require.Len(t, low, 1)
	assert.Contains(t, low[0], "55/100")
	assert.Contains(t, low[0], "team-norming")

	// Mid-band scores produce no score commentary.
	mid := generator.Generate(queryIntent, nil, nil, &interfaces.TeamCompatibility{Score: 68})
	assert.Empty(t, mid)
}

func TestGenerateTeamCompositionUncoveredSkills(t *testing.T) {
	generator := New()
	queryIntent := &interfaces.Intent{
		PrimaryCategory: interfaces.IntentTeamComposition,
		Entities:        interfaces.IntentEntities{Skills: []string{"Go", "Kubernetes"}},
	}
	people := []*interfaces.Person{
		{Name: "Michael Chen", Skills: []string{"go"}},
	}

	recommendations := generator.Generate(queryIntent, people, nil, nil)
	require.Len(t, recommendations, 1)
	assert.Contains(t, recommendations[0], "Kubernetes")
	assert.NotContains(t, recommendations[0], "Go;")
}

func TestGenerateConflictResolution(t *testing.T) {
	generator := New()
	queryIntent := &interfaces.Intent{PrimaryCategory: interfaces.IntentConflictResolution}
	people := []*interfaces.Person{
		{Name: "Sarah Johnson", PersonalityType: "challenger"},
		{Name: "David Kim", PersonalityType: "peacemaker"},
	}
	team := &interfaces.TeamCompatibility{
		Score:      62,
		Challenges: []string{"Directness mismatch."},
	}

	recommendations := generator.Generate(queryIntent, people, nil, team)

	require.Len(t, recommendations, 3)
	assert.Contains(t, recommendations[0], "David Kim")
	assert.Contains(t, recommendations[0], "facilitate")
	assert.Contains(t, recommendations[1], "compatibility challenges")
	assert.Contains(t, recommendations[2], "one-on-ones")
}

func TestGenerateDelegation(t *testing.T) {
	generator := New()
	queryIntent := &interfaces.Intent{PrimaryCategory: interfaces.IntentDelegation}

	chen := &interfaces.Person{ID: "p1", Name: "Michael Chen"}
	johnson := &interfaces.Person{ID: "p2", Name: "Sarah Johnson"}
	kim := &interfaces.Person{ID: "p3", Name: "David Kim"}

	relationships := []interfaces.PersonRelationships{
		{Person: chen, DirectReports: []*interfaces.Person{johnson, kim}},
		{Person: johnson, Manager: chen},
	}

	recommendations := generator.Generate(queryIntent, nil, relationships, nil)

	require.Len(t, recommendations, 2)
	assert.Equal(t,
		"Michael Chen has 2 direct report(s) who could take this on: Sarah Johnson, David Kim.",
		recommendations[0])
	assert.Equal(t,
		"Sarah Johnson has no direct reports; route the request through their manager Michael Chen.",
		recommendations[1])
}

func TestGenerateAppendsTeamRecommendations(t *testing.T) {
	generator := New()
	queryIntent := &interfaces.Intent{PrimaryCategory: interfaces.IntentDepartmentOverview}
	people := []*interfaces.Person{{Name: "Michael Chen"}}
	team := &interfaces.TeamCompatibility{
		Score:           70,
		Recommendations: []string{"Agree decision ownership up front."},
	}

	recommendations := generator.Generate(queryIntent, people, nil, team)

	require.Len(t, recommendations, 2)
	assert.Contains(t, recommendations[0], "1 listed")
	assert.Equal(t, "Agree decision ownership up front.", recommendations[1])
}
