// Package postgres implements the read-only DirectoryStore over PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/multitenancy"
)

// Store implements the DirectoryStore interface for PostgreSQL
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL directory store
func New(connectionString string) (*Store, error) {
	// Connect to PostgreSQL database
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB creates a new PostgreSQL directory store with an existing
// database connection
func NewWithDB(db *sql.DB) (*Store, error) {
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
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

// unavailable wraps an infrastructure failure in the store-unavailable
// condition so callers can distinguish it from empty results.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, interfaces.ErrStoreUnavailable)
}

// ListPeople returns every person in the organization
func (s *Store) ListPeople(ctx context.Context) (people []*interfaces.Person, err error) {
	query := `SELECT id, name, role, department, skills, location,
		COALESCE(personality_type, ''), COALESCE(bio, ''), responsibilities,
		COALESCE(manager_id, '')
		FROM people WHERE org_id = $1 ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query, orgID(ctx))
	if err != nil {
		return nil, unavailable("failed to query people", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = unavailable("failed to close rows", cerr)
		}
	}()

	for rows.Next() {
		p := &interfaces.Person{}
		var skills, responsibilities pq.StringArray
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.Department, &skills,
			&p.Location, &p.PersonalityType, &p.Bio, &responsibilities,
			&p.ManagerID); err != nil {
			return nil, unavailable("failed to scan person row", err)
		}
		p.Skills = skills
		p.Responsibilities = responsibilities
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("error iterating people rows", err)
	}

	return people, nil
}

// GetPerson returns the person with the given ID, or nil when absent
func (s *Store) GetPerson(ctx context.Context, id string) (*interfaces.Person, error) {
	query := `SELECT id, name, role, department, skills, location,
		COALESCE(personality_type, ''), COALESCE(bio, ''), responsibilities,
		COALESCE(manager_id, '')
		FROM people WHERE id = $1 AND org_id = $2`

	p := &interfaces.Person{}
	var skills, responsibilities pq.StringArray
	err := s.db.QueryRowContext(ctx, query, id, orgID(ctx)).Scan(
		&p.ID, &p.Name, &p.Role, &p.Department, &skills, &p.Location,
		&p.PersonalityType, &p.Bio, &responsibilities, &p.ManagerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("failed to query person", err)
	}
	p.Skills = skills
	p.Responsibilities = responsibilities

	return p, nil
}

// ListDepartments returns every department in the organization
func (s *Store) ListDepartments(ctx context.Context) (departments []*interfaces.Department, err error) {
	query := `SELECT id, name FROM departments WHERE org_id = $1 ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query, orgID(ctx))
	if err != nil {
		return nil, unavailable("failed to query departments", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = unavailable("failed to close rows", cerr)
		}
	}()

	for rows.Next() {
		d := &interfaces.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, unavailable("failed to scan department row", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("error iterating department rows", err)
	}

	return departments, nil
}

// ListRelationships returns every manager edge in the organization
func (s *Store) ListRelationships(ctx context.Context) (edges []interfaces.ReportingRelationship, err error) {
	query := `SELECT manager_id, person_id FROM reporting_relationships
		WHERE org_id = $1 ORDER BY manager_id, person_id`

	rows, err := s.db.QueryContext(ctx, query, orgID(ctx))
	if err != nil {
		return nil, unavailable("failed to query relationships", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = unavailable("failed to close rows", cerr)
		}
	}()

	for rows.Next() {
		var edge interfaces.ReportingRelationship
		if err := rows.Scan(&edge.ManagerID, &edge.PersonID); err != nil {
			return nil, unavailable("failed to scan relationship row", err)
		}
		edges = append(edges, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("error iterating relationship rows", err)
	}

	return edges, nil
}

// ListDocuments returns every document in the organization
func (s *Store) ListDocuments(ctx context.Context) (documents []*interfaces.Document, err error) {
	query := `SELECT id, title, COALESCE(description, ''), COALESCE(category, '')
		FROM documents WHERE org_id = $1 ORDER BY title, id`

	rows, err := s.db.QueryContext(ctx, query, orgID(ctx))
	if err != nil {
		return nil, unavailable("failed to query documents", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = unavailable("failed to close rows", cerr)
		}
	}()

	for rows.Next() {
		d := &interfaces.Document{}
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Category); err != nil {
			return nil, unavailable("failed to scan document row", err)
		}
		documents = append(documents, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("error iterating document rows", err)
	}

	return documents, nil
}
