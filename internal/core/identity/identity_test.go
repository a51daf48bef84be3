package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextDefaultsToAnonymous(t *testing.T) {
	assert.Equal(t, Anonymous, FromContext(context.Background()))
}

func TestWithUserIDRoundtrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	assert.Equal(t, int64(42), FromContext(ctx))
}

func TestRequireRejectsAnonymous(t *testing.T) {
	_, err := Require(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRequireReturnsIdentity(t *testing.T) {
	id, err := Require(WithUserID(context.Background(), 7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}
