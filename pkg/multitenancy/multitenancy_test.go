package multitenancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOrgID(t *testing.T) {
	ctx := WithOrgID(context.Background(), "acme")

	orgID, err := GetOrgID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acme", orgID)
}

func TestGetOrgIDMissing(t *testing.T) {
	_, err := GetOrgID(context.Background())
	assert.Error(t, err)
}
