package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	appErrors "github.com/csmaviation/website-api/pkg/errors"
	"github.com/csmaviation/website-api/pkg/response"
	"github.com/csmaviation/website-api/pkg/storage"
)

type fileTokenParser interface {
	Parse(token string) (string, error)
}

type objectReader interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// FilesHandler streams objects from local storage behind signed download links.
type FilesHandler struct {
	signer fileTokenParser
	store  objectReader
}

// NewFilesHandler constructs the handler.
func NewFilesHandler(signer fileTokenParser, store objectReader) *FilesHandler {
	return &FilesHandler{signer: signer, store: store}
}

// Download godoc
// @Summary Download a stored object through a signed link
// @Tags Files
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /files/{token} [get]
func (h *FilesHandler) Download(c *gin.Context) {
	key, err := h.signer.Parse(c.Param("token"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidOrExpiredToken.Code, appErrors.ErrInvalidOrExpiredToken.Status, appErrors.ErrInvalidOrExpiredToken.Message))
		return
	}
	body, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read file"))
		return
	}
	defer body.Close() //nolint:errcheck

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", "inline; filename=\""+path.Base(key)+"\"")
	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
