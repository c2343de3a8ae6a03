package directory

import (
	"context"
	"sync"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
)

// Cached wraps a directory store with a process-wide lazy read cache.
// Entries are populated on first miss and are immutable once written; the
// only mutation is a wholesale clear via InvalidateAll. Safe for concurrent
// readers.
type Cached struct {
	source interfaces.DirectoryStore
	logger logging.Logger

	mu            sync.RWMutex
	people        []*interfaces.Person
	personByID    map[string]*interfaces.Person
	departments   []*interfaces.Department
	relationships []interfaces.ReportingRelationship
	documents     []*interfaces.Document
}

// CachedOption represents an option for configuring the cached store
type CachedOption func(*Cached)

// WithCachedLogger sets the logger used by the cached store.
func WithCachedLogger(logger logging.Logger) CachedOption {
	return func(c *Cached) {
		c.logger = logger
	}
}

// NewCached wraps a store with the in-process read cache.
func NewCached(source interfaces.DirectoryStore, options ...CachedOption) *Cached {
	c := &Cached{
		source: source,
		logger: logging.New(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// InvalidateAll clears the whole cache. It is a maintenance operation for
// callers that just performed bulk directory edits.
func (c *Cached) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.people = nil
	c.personByID = nil
	c.departments = nil
	c.relationships = nil
	c.documents = nil

	c.logger.Info(ctx, "Directory read cache invalidated", nil)
	return nil
}

// ListPeople returns the cached people listing, loading it on first miss.
func (c *Cached) ListPeople(ctx context.Context) ([]*interfaces.Person, error) {
	c.mu.RLock()
	people := c.people
	c.mu.RUnlock()
	if people != nil {
		return people, nil
	}

	loaded, err := c.source.ListPeople(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*interfaces.Person, len(loaded))
	for _, p := range loaded {
		byID[p.ID] = p
	}

	c.mu.Lock()
	// Another reader may have populated the entry concurrently; first
	// write wins, entries are never replaced in place.
	if c.people == nil {
		c.people = loaded
		c.personByID = byID
	}
	people = c.people
	c.mu.Unlock()

	return people, nil
}

// GetPerson serves single-person lookups from the cached people listing.
func (c *Cached) GetPerson(ctx context.Context, id string) (*interfaces.Person, error) {
	if _, err := c.ListPeople(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.personByID[id], nil
}

// ListDepartments returns the cached department listing.
func (c *Cached) ListDepartments(ctx context.Context) ([]*interfaces.Department, error) {
	c.mu.RLock()
	departments := c.departments
	c.mu.RUnlock()
	if departments != nil {
		return departments, nil
	}

	loaded, err := c.source.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.departments == nil {
		c.departments = loaded
	}
	departments = c.departments
	c.mu.Unlock()

	return departments, nil
}

// ListRelationships returns the cached relationship listing.
func (c *Cached) ListRelationships(ctx context.Context) ([]interfaces.ReportingRelationship, error) {
	c.mu.RLock()
	relationships := c.relationships
	c.mu.RUnlock()
	if relationships != nil {
		return relationships, nil
	}

	loaded, err := c.source.ListRelationships(ctx)
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = []interfaces.ReportingRelationship{}
	}

	c.mu.Lock()
	if c.relationships == nil {
		c.relationships = loaded
	}
	relationships = c.relationships
	c.mu.Unlock()

	return relationships, nil
}

// ListDocuments returns the cached document listing.
func (c *Cached) ListDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	c.mu.RLock()
	documents := c.documents
	c.mu.RUnlock()
	if documents != nil {
		return documents, nil
	}

	loaded, err := c.source.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.documents == nil {
		c.documents = loaded
	}
	documents = c.documents
	c.mu.Unlock()

	return documents, nil
}
