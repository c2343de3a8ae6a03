// Package supabase implements the read-only DirectoryStore over Supabase
// PostgREST tables.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/multitenancy"
)

// Store implements the DirectoryStore interface for Supabase
type Store struct {
	supabase *supabase.Client
}

// New creates a new Supabase directory store
func New(url string, apiKey string) (*Store, error) {
	client, err := supabase.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &Store{supabase: client}, nil
}

// orgID reads the organization scope from the context, defaulting when
// multitenancy is not in play.
func orgID(ctx context.Context) string {
	id, err := multitenancy.GetOrgID(ctx)
	if err != nil || id == "" {
		return "default"
	}
	return id
}

// selectAll queries one table scoped to the organization and unmarshals the
// PostgREST response into dest.
func (s *Store) selectAll(ctx context.Context, table string, dest interface{}) error {
	resp, _, err := s.supabase.From(table).
		Select("*", "", false).
		Eq("org_id", orgID(ctx)).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to query %s: %v: %w", table, err, interfaces.ErrStoreUnavailable)
	}

	if err := json.Unmarshal(resp, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", table, err)
	}

	return nil
}

// ListPeople returns every person in the organization
func (s *Store) ListPeople(ctx context.Context) ([]*interfaces.Person, error) {
	var people []*interfaces.Person
	if err := s.selectAll(ctx, "people", &people); err != nil {
		return nil, err
	}
	return people, nil
}

// GetPerson returns the person with the given ID, or nil when absent
func (s *Store) GetPerson(ctx context.Context, id string) (*interfaces.Person, error) {
	resp, _, err := s.supabase.From("people").
		Select("*", "", false).
		Eq("id", id).
		Eq("org_id", orgID(ctx)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query person: %v: %w", err, interfaces.ErrStoreUnavailable)
	}

	var people []*interfaces.Person
	if err := json.Unmarshal(resp, &people); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person response: %w", err)
	}
	if len(people) == 0 {
		return nil, nil
	}

	return people[0], nil
}

// ListDepartments returns every department in the organization
func (s *Store) ListDepartments(ctx context.Context) ([]*interfaces.Department, error) {
	var departments []*interfaces.Department
	if err := s.selectAll(ctx, "departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// ListRelationships returns every manager edge in the organization
func (s *Store) ListRelationships(ctx context.Context) ([]interfaces.ReportingRelationship, error) {
	var edges []interfaces.ReportingRelationship
	if err := s.selectAll(ctx, "reporting_relationships", &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

// ListDocuments returns every document in the organization
func (s *Store) ListDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	var documents []*interfaces.Document
	if err := s.selectAll(ctx, "documents", &documents); err != nil {
		return nil, err
	}
	return documents, nil
}
