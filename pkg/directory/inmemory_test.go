package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

func TestInMemoryGeneratesIDs(t *testing.T) {
	store := NewInMemory()

	person := store.AddPerson(&interfaces.Person{Name: "Michael Chen"})
	assert.NotEmpty(t, person.ID)

	document := store.AddDocument(&interfaces.Document{Title: "Vacation Policy"})
	assert.NotEmpty(t, document.ID)
}

func TestInMemoryListPeopleSorted(t *testing.T) {
	store := NewInMemory()
	store.AddPerson(&interfaces.Person{ID: "p2", Name: "Sarah Johnson"})
	store.AddPerson(&interfaces.Person{ID: "p1", Name: "Michael Chen"})
	store.AddPerson(&interfaces.Person{ID: "p3", Name: "David Kim"})

	people, err := store.ListPeople(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"David Kim", "Michael Chen", "Sarah Johnson"}, names)
}

func TestInMemoryGetPerson(t *testing.T) {
	store := NewInMemory()
	store.AddPerson(&interfaces.Person{ID: "p1", Name: "Michael Chen"})

	person, err := store.GetPerson(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, person)
	assert.Equal(t, "Michael Chen", person.Name)

	missing, err := store.GetPerson(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInMemoryRelationships(t *testing.T) {
	store := NewInMemory()
	store.AddRelationship("p1", "p2")
	store.AddRelationship("p1", "p3")

	edges, err := store.ListRelationships(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []interfaces.ReportingRelationship{
		{ManagerID: "p1", PersonID: "p2"},
		{ManagerID: "p1", PersonID: "p3"},
	}, edges)
}
