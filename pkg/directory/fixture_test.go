package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
people:
  - id: p1
    name: Michael Chen
    role: Senior Engineer
    department: Engineering
    skills: [Go, Kubernetes]
    personality_type: reformer
  - id: p2
    name: Sarah Johnson
    role: Engineering Manager
    department: Engineering
departments:
  - id: dep1
    name: Engineering
relationships:
  - manager_id: p2
    person_id: p1
documents:
  - id: d1
    title: Vacation Policy
    category: policy
`

func TestFromYAML(t *testing.T) {
	store, err := FromYAML([]byte(fixtureYAML))
	require.NoError(t, err)
	ctx := context.Background()

	people, err := store.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Michael Chen", people[0].Name)
	assert.Equal(t, []string{"Go", "Kubernetes"}, people[0].Skills)
	assert.Equal(t, "reformer", people[0].PersonalityType)

	departments, err := store.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 1)

	edges, err := store.ListRelationships(ctx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "p2", edges[0].ManagerID)

	documents, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "policy", documents[0].Category)
}

func TestFromYAMLRejectsNamelessPerson(t *testing.T) {
	_, err := FromYAML([]byte("people:\n  - id: p1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a name")
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("{not yaml"))
	require.Error(t, err)
}
