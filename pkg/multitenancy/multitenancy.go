// Package multitenancy carries the organization scope through contexts so
// that store backends and caches keep tenants isolated.
package multitenancy

import (
	"context"
	"fmt"
)

type contextKey string

// orgIDKey is the context key under which the organization ID is stored.
const orgIDKey contextKey = "org_id"

// WithOrgID returns a context carrying the given organization ID.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}

// GetOrgID returns the organization ID from the context, or an error when
// none is set.
func GetOrgID(ctx context.Context) (string, error) {
	orgID, ok := ctx.Value(orgIDKey).(string)
	if !ok || orgID == "" {
		return "", fmt.Errorf("organization ID not found in context")
	}
	return orgID, nil
}
