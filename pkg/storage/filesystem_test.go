package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoragePutCopyGet(t *testing.T) {
	ctx := context.Background()
	signer := NewSignedURLSigner("secret", time.Hour)
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:5000/api/files/", signer)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "vendors/v1/insurance/cert.pdf", []byte("%PDF"), "application/pdf"))
	require.NoError(t, store.Copy(ctx, "vendors/v1/insurance/cert.pdf", "Charter_OPERATORS/acme_air/cert.pdf"))

	rc, err := store.Get(ctx, "Charter_OPERATORS/acme_air/cert.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body))

	link, err := store.PresignGet(ctx, "Charter_OPERATORS/acme_air/cert.pdf", time.Minute)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "http://localhost:5000/api/files/"))

	token := strings.TrimPrefix(link, "http://localhost:5000/api/files/")
	key, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "Charter_OPERATORS/acme_air/cert.pdf", key)
}

func TestLocalStorageMissingAndEscapingKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost", nil)
	require.NoError(t, err)

	_, err = store.Get(ctx, "nope.pdf")
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	require.NoError(t, store.Put(ctx, "../../outside.txt", []byte("x"), ""))
	rc, err := store.Get(ctx, "outside.txt")
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	require.NoError(t, store.Delete(ctx, "outside.txt"))
	require.NoError(t, store.Delete(ctx, "outside.txt"))
}
