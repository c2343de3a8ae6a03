package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

var testGazetteer = []string{
	"Michael Chen",
	"Sarah Johnson",
	"David Kim",
	"Elena Rodriguez",
}

func TestClassifyCategories(t *testing.T) {
	classifier := New()

	tests := []struct {
		name     string
		query    string
		expected interfaces.IntentCategory
	}{
		{"employee lookup", "Tell me about Michael Chen", interfaces.IntentEmployeeLookup},
		{"department members", "Who works in engineering?", interfaces.IntentEmployeeLookup},
		{"team composition", "Who should be on a new AI team?", interfaces.IntentTeamComposition},
		{"conflict", "There is tension between Sarah Johnson and David Kim", interfaces.IntentConflictResolution},
		{"delegation", "I need to delegate the quarterly report", interfaces.IntentDelegation},
		{"document search", "Where can I find the vacation policy?", interfaces.IntentDocumentSearch},
		{"department overview", "Give me an overview of the marketing department", interfaces.IntentDepartmentOverview},
		{"general", "hello there", interfaces.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := classifier.Classify(tt.query, testGazetteer)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.PrimaryCategory)
		})
	}
}

func TestClassifyExtractsExactPersonName(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Tell me about Michael Chen", testGazetteer)
	require.NoError(t, err)

	assert.Equal(t, interfaces.IntentEmployeeLookup, result.PrimaryCategory)
	assert.Equal(t, []string{"Michael Chen"}, result.Entities.People)
}

func TestClassifyExtractsPartialPersonName(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Who is Rodriguez working with?", testGazetteer)
	require.NoError(t, err)

	assert.Contains(t, result.Entities.People, "Elena Rodriguez")
}

func TestClassifyExtractsDepartmentAlias(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Who works in engineering?", testGazetteer)
	require.NoError(t, err)

	assert.Equal(t, []string{"Engineering"}, result.Entities.Departments)
}

func TestClassifyExtractsMultipleSkills(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Build a team for a python and kubernetes project", testGazetteer)
	require.NoError(t, err)

	assert.Equal(t, interfaces.IntentTeamComposition, result.PrimaryCategory)
	assert.ElementsMatch(t, []string{"Python", "Kubernetes"}, result.Entities.Skills)
}

func TestClassifyDocumentTypeHints(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Where is the onboarding handbook and the travel policy?", testGazetteer)
	require.NoError(t, err)

	assert.Equal(t, interfaces.IntentDocumentSearch, result.PrimaryCategory)
	assert.ElementsMatch(t, []string{"handbook", "policy"}, result.Entities.DocumentTypes)
}

func TestClassifyPersonBeatsDepartmentForSamePhrase(t *testing.T) {
	classifier := New()

	// "Sales" is both a department alias and part of this person's name.
	gazetteer := []string{"Amara Sales"}
	result, err := classifier.Classify("Tell me about Amara Sales", gazetteer)
	require.NoError(t, err)

	assert.Equal(t, []string{"Amara Sales"}, result.Entities.People)
	assert.Empty(t, result.Entities.Departments)
}

func TestClassifyNeverFailsOnGarbage(t *testing.T) {
	classifier := New()

	inputs := []string{
		"",
		"    ",
		"?!?!...;;;",
		strings.Repeat("x", 5000),
	}

	for _, input := range inputs {
		result, err := classifier.Classify(input, testGazetteer)
		require.NoError(t, err)
		assert.Equal(t, interfaces.IntentGeneral, result.PrimaryCategory)
		assert.Empty(t, result.Entities.People)
		assert.Empty(t, result.Entities.Departments)
		assert.Empty(t, result.Entities.Skills)
		assert.Empty(t, result.Entities.DocumentTypes)
	}
}

func TestClassifyRejectsInvalidUTF8(t *testing.T) {
	classifier := New()

	_, err := classifier.Classify(string([]byte{0xff, 0xfe}), testGazetteer)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrInvalidInput)
}

func TestClassifyEmptyGazetteer(t *testing.T) {
	classifier := New()

	result, err := classifier.Classify("Tell me about Michael Chen", nil)
	require.NoError(t, err)

	assert.Equal(t, interfaces.IntentEmployeeLookup, result.PrimaryCategory)
	assert.Empty(t, result.Entities.People)
}

func TestClassifyAmbiguousShortMentionsSkipped(t *testing.T) {
	classifier := New()

	// "it" the pronoun must not become the IT department, and "go" the
	// verb must not become the Go skill.
	result, err := classifier.Classify("Can someone take it over and go through the backlog?", testGazetteer)
	require.NoError(t, err)

	assert.Empty(t, result.Entities.Departments)
	assert.Empty(t, result.Entities.Skills)
}
