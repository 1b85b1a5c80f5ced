package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/pkg/storage"
)

func TestFilesHandlerDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	signer := storage.NewSignedURLSigner("files-secret", time.Hour)
	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/api/files", signer)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "vendors/acme/insurance.pdf", []byte("%PDF"), "application/pdf"))

	r := gin.New()
	r.GET("/api/files/:token", NewFilesHandler(signer, store).Download)

	token, _, err := signer.Generate("vendors/acme/insurance.pdf", time.Minute)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/files/"+token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	missing, _, err := signer.Generate("vendors/acme/gone.pdf", time.Minute)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/files/"+missing, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/files/"+token+"x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
