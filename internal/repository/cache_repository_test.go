package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

func TestCacheRepositoryWithoutClientIsNoop(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]string
	err := repo.Get(ctx, "site:config", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))

	require.NoError(t, repo.Set(ctx, "site:config", map[string]string{"a": "b"}, time.Minute))
	require.NoError(t, repo.Delete(ctx, "site:config"))
	require.NoError(t, repo.DeleteByPattern(ctx, "site:*"))
	require.NoError(t, repo.Close())
}
