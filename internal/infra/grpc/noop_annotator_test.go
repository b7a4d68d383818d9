package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritext/internal/annotate"
)

func TestNoopAnnotator(t *testing.T) {
	n := NewNoopAnnotator()

	_, err := n.Annotate(context.Background(), "texto")
	assert.ErrorIs(t, err, annotate.ErrUnavailable)

	_, err = n.ExtractEntities(context.Background(), "texto")
	assert.ErrorIs(t, err, annotate.ErrUnavailable)

	health, err := n.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, health.Healthy)

	assert.NoError(t, n.Close())
	assert.Equal(t, annotate.ModeFull, n.Mode())
}
