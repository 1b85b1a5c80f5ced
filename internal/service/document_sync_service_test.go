package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/pkg/export"
)

type objectStoreStub struct {
	mu      sync.Mutex
	copies  map[string]string
	puts    map[string][]byte
	copyErr map[string]error
}

func newObjectStoreStub() *objectStoreStub {
	return &objectStoreStub{copies: map[string]string{}, puts: map[string][]byte{}, copyErr: map[string]error{}}
}

func (s *objectStoreStub) Put(ctx context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts[key] = data
	return nil
}

func (s *objectStoreStub) Copy(ctx context.Context, srcKey, dstKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.copyErr[srcKey]; err != nil {
		return err
	}
	s.copies[dstKey] = srcKey
	return nil
}

type syncLogStub struct {
	entries []*models.DocumentSyncLog
}

func (s *syncLogStub) CreateSyncLog(ctx context.Context, entry *models.DocumentSyncLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.entries = append(s.entries, entry)
	return nil
}

type pdfStub struct {
	last export.Summary
}

func (p *pdfStub) RenderSummary(doc export.Summary) ([]byte, error) {
	p.last = doc
	return []byte("%PDF-stub"), nil
}

func vendorWithDocuments(docs string) *models.Submission {
	return &models.Submission{
		ID:          "v-1",
		Kind:        models.SubmissionKindVendor,
		Status:      models.SubmissionStatusApproved,
		DisplayName: "Skyline Air, Inc.",
		Payload:     []byte(`{"companyName":"Skyline Air, Inc.","email":"ops@skyline.test","documents":` + docs + `}`),
	}
}

func TestDocumentSyncFolderName(t *testing.T) {
	svc := NewDocumentSyncService(newObjectStoreStub(), nil, nil, "/Charter_OPERATORS/", nil)
	assert.Equal(t, "Charter_OPERATORS/skyline_air_inc", svc.FolderFor("Skyline Air, Inc."))
	assert.Equal(t, "Charter_OPERATORS/unnamed_vendor", svc.FolderFor("  ***  "))
}

func TestDocumentSyncCopiesDocumentsAndSummary(t *testing.T) {
	store := newObjectStoreStub()
	logs := &syncLogStub{}
	pdf := &pdfStub{}
	svc := NewDocumentSyncService(store, logs, pdf, "Charter_OPERATORS", nil)

	sub := vendorWithDocuments(`{"w9":"vendors/skyline/w9/1_ab.pdf","insuranceCertificate":"vendors/skyline/ins/2_cd.png"}`)
	result, err := svc.SyncVendor(context.Background(), sub)
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "Charter_OPERATORS/skyline_air_inc", result.Folder)
	require.Len(t, result.Succeeded, 2)
	assert.Equal(t, "insuranceCertificate", result.Succeeded[0].DocType)
	assert.Equal(t, "Synced 2 documents, 0 failed", result.Message)

	assert.Equal(t, "vendors/skyline/ins/2_cd.png", store.copies["Charter_OPERATORS/skyline_air_inc/insuranceCertificate.png"])
	assert.Equal(t, "vendors/skyline/w9/1_ab.pdf", store.copies["Charter_OPERATORS/skyline_air_inc/w9.pdf"])
	assert.Contains(t, store.puts, "Charter_OPERATORS/skyline_air_inc/"+SummaryFilename)
	assert.True(t, strings.HasPrefix(pdf.last.Title, "Vendor Registration: Skyline Air"))

	require.Len(t, logs.entries, 1)
	assert.True(t, logs.entries[0].Success)
	assert.Equal(t, 2, logs.entries[0].Succeeded)
}

func TestDocumentSyncPartialFailure(t *testing.T) {
	store := newObjectStoreStub()
	store.copyErr["vendors/skyline/w9.pdf"] = errors.New("AccessDenied")
	logs := &syncLogStub{}
	svc := NewDocumentSyncService(store, logs, &pdfStub{}, "Charter_OPERATORS", nil)

	result, err := svc.SyncVendor(context.Background(), vendorWithDocuments(`{"w9":"vendors/skyline/w9.pdf","aircraftList":"vendors/skyline/list.pdf"}`))
	require.Error(t, err)
	assert.False(t, result.OK())
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "AccessDenied", result.Failed[0].Error)
	assert.Equal(t, "Synced 1 documents, 1 failed", result.Message)
	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Success)
}

func TestDocumentSyncWithoutDocuments(t *testing.T) {
	store := newObjectStoreStub()
	svc := NewDocumentSyncService(store, nil, &pdfStub{}, "", nil)

	result, err := svc.SyncVendor(context.Background(), vendorWithDocuments(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "No documents found for this vendor", result.Message)
	assert.Empty(t, store.copies)
	assert.Len(t, store.puts, 1)
}

func TestDocumentSyncRejectsNonVendor(t *testing.T) {
	svc := NewDocumentSyncService(newObjectStoreStub(), nil, &pdfStub{}, "", nil)
	result, err := svc.SyncVendor(context.Background(), testimonialRecord("t-1"))
	require.Error(t, err)
	assert.NotEmpty(t, result.Err)
}

func TestDocumentSyncLogsAfterDeadline(t *testing.T) {
	logs := &syncLogStub{}
	svc := NewDocumentSyncService(newObjectStoreStub(), logs, &pdfStub{}, "Charter_OPERATORS", nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	result, err := svc.SyncVendor(ctx, vendorWithDocuments(`{"w9":"vendors/skyline/w9.pdf"}`))
	require.Error(t, err)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0].Error, "deadline exceeded")
	require.Len(t, logs.entries, 1)
	assert.False(t, logs.entries[0].Success)
	assert.Equal(t, 1, logs.entries[0].Failed)
}
