package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/csmaviation/website-api/internal/middleware"
	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return nil
	}
	return claims
}

func actorFromContext(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		if claims.Username != "" {
			return claims.Username
		}
		return claims.UserID
	}
	return "anonymous"
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback))); err == nil {
		return v
	}
	return fallback
}

type multipartFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// readMultipartFile buffers one multipart field, refusing anything over maxBytes.
func readMultipartFile(c *gin.Context, field string, maxBytes int64) (*multipartFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No file uploaded")
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "File size exceeds "+humanBytes(maxBytes)+" limit.")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file")
	}
	defer src.Close() //nolint:errcheck

	reader := io.Reader(src)
	if maxBytes > 0 {
		reader = io.LimitReader(src, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to buffer file")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "File size exceeds "+humanBytes(maxBytes)+" limit.")
	}
	return &multipartFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func humanBytes(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return strconv.FormatInt(n/mb, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
