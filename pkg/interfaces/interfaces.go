package interfaces

import (
	"context"
	"errors"
)

// Error taxonomy. NotFound is intentionally absent: resolution misses are
// normal empty results (nil records, empty slices), never errors.
var (
	// ErrStoreUnavailable indicates the directory snapshot could not be
	// obtained at all. It is fatal for the current call and propagates to
	// the caller.
	ErrStoreUnavailable = errors.New("directory store unavailable")

	// ErrInvalidInput indicates a malformed query that is rejected before
	// classification begins.
	ErrInvalidInput = errors.New("invalid query input")
)

// DirectoryStore is the read-only accessor over organizational data. All
// methods may fail with an error wrapping ErrStoreUnavailable when the
// backing store cannot be reached.
type DirectoryStore interface {
	// ListPeople returns every person in the directory.
	ListPeople(ctx context.Context) ([]*Person, error)

	// GetPerson returns the person with the given ID, or nil when no such
	// person exists.
	GetPerson(ctx context.Context, id string) (*Person, error)

	// ListDepartments returns every department.
	ListDepartments(ctx context.Context) ([]*Department, error)

	// ListRelationships returns every manager edge.
	ListRelationships(ctx context.Context) ([]ReportingRelationship, error)

	// ListDocuments returns every document reference.
	ListDocuments(ctx context.Context) ([]*Document, error)
}

// CacheInvalidator is implemented by stores that keep a process-wide read
// cache. InvalidateAll clears the cache wholesale; it is a maintenance
// operation for external callers after bulk data edits and is never invoked
// by the assembler itself.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

// Classifier maps a raw query to an intent. knownNames is the person-name
// gazetteer drawn from the current directory snapshot.
type Classifier interface {
	Classify(query string, knownNames []string) (*Intent, error)
}

// Scorer computes personality compatibility metrics.
type Scorer interface {
	// ScorePair returns the 0-100 compatibility score for two profiles and
	// false when the pair is undefined in the matrix.
	ScorePair(a, b *PersonalityProfile) (int, bool)

	// ScoreGroup aggregates pairwise scores for the group. It returns nil
	// when fewer than two profiles are known.
	ScoreGroup(profiles []*PersonalityProfile) *TeamCompatibility
}

// ContextBuilder assembles the bounded context for one query.
type ContextBuilder interface {
	BuildContext(ctx context.Context, query string) (*Context, error)
}
