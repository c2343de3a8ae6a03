// Package directory provides DirectoryStore implementations: an in-memory
// store for tests and examples, and read caches (in-process and Redis) that
// wrap any backend store.
package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

// InMemory implements a simple in-memory directory store
type InMemory struct {
	mu            sync.RWMutex
	people        map[string]*interfaces.Person
	departments   map[string]*interfaces.Department
	relationships []interfaces.ReportingRelationship
	documents     map[string]*interfaces.Document
}

// NewInMemory creates an empty in-memory directory store
func NewInMemory() *InMemory {
	return &InMemory{
		people:      make(map[string]*interfaces.Person),
		departments: make(map[string]*interfaces.Department),
		documents:   make(map[string]*interfaces.Document),
	}
}

// AddPerson adds a person to the store, generating an ID when none is set.
// The returned record must be treated as immutable once added.
func (s *InMemory) AddPerson(person *interfaces.Person) *interfaces.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	s.people[person.ID] = person
	return person
}

// AddDepartment adds a department to the store.
func (s *InMemory) AddDepartment(department *interfaces.Department) *interfaces.Department {
	s.mu.Lock()
	defer s.mu.Unlock()

	if department.ID == "" {
		department.ID = uuid.New().String()
	}
	s.departments[department.ID] = department
	return department
}

// AddRelationship records a manager edge.
func (s *InMemory) AddRelationship(managerID, personID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.relationships = append(s.relationships, interfaces.ReportingRelationship{
		ManagerID: managerID,
		PersonID:  personID,
	})
}

// AddDocument adds a document to the store.
func (s *InMemory) AddDocument(document *interfaces.Document) *interfaces.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if document.ID == "" {
		document.ID = uuid.New().String()
	}
	s.documents[document.ID] = document
	return document
}

// ListPeople returns every person, sorted by name for deterministic output.
func (s *InMemory) ListPeople(ctx context.Context) ([]*interfaces.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	people := make([]*interfaces.Person, 0, len(s.people))
	for _, p := range s.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool {
		if people[i].Name != people[j].Name {
			return people[i].Name < people[j].Name
		}
		return people[i].ID < people[j].ID
	})
	return people, nil
}

// GetPerson returns the person with the given ID, or nil when absent.
func (s *InMemory) GetPerson(ctx context.Context, id string) (*interfaces.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.people[id], nil
}

// ListDepartments returns every department, sorted by name.
func (s *InMemory) ListDepartments(ctx context.Context) ([]*interfaces.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments := make([]*interfaces.Department, 0, len(s.departments))
	for _, d := range s.departments {
		departments = append(departments, d)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}

// ListRelationships returns every manager edge.
func (s *InMemory) ListRelationships(ctx context.Context) ([]interfaces.ReportingRelationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]interfaces.ReportingRelationship, len(s.relationships))
	copy(edges, s.relationships)
	return edges, nil
}

// ListDocuments returns every document, sorted by title.
func (s *InMemory) ListDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]*interfaces.Document, 0, len(s.documents))
	for _, d := range s.documents {
		documents = append(documents, d)
	}
	sort.Slice(documents, func(i, j int) bool {
		if documents[i].Title != documents[j].Title {
			return documents[i].Title < documents[j].Title
		}
		return documents[i].ID < documents[j].ID
	})
	return documents, nil
}
