package service

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csmaviation/website-api/internal/models"
	"github.com/csmaviation/website-api/pkg/export"
)

// SummaryFilename is written into every synced vendor folder.
const SummaryFilename = "registration_summary.pdf"

const syncDestination = "object-store"

const syncLogTimeout = 5 * time.Second

var folderUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

type syncObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Copy(ctx context.Context, srcKey, dstKey string) error
}

type syncLogWriter interface {
	CreateSyncLog(ctx context.Context, entry *models.DocumentSyncLog) error
}

type summaryRenderer interface {
	RenderSummary(doc export.Summary) ([]byte, error)
}

// DocumentSyncService copies an approved vendor's uploads into the operator
// folder tree and drops a PDF summary alongside them.
type DocumentSyncService struct {
	store  syncObjectStore
	logs   syncLogWriter
	pdf    summaryRenderer
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewDocumentSyncService builds the sync collaborator used on vendor approval.
func NewDocumentSyncService(store syncObjectStore, logs syncLogWriter, pdf summaryRenderer, prefix string, logger *zap.Logger) *DocumentSyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = "Charter_OPERATORS"
	}
	return &DocumentSyncService{store: store, logs: logs, pdf: pdf, prefix: prefix, logger: logger, now: time.Now}
}

// FolderFor returns the destination folder for a company name.
func (s *DocumentSyncService) FolderFor(companyName string) string {
	return s.prefix + "/" + slug(companyName, "unnamed_vendor")
}

// SyncVendor copies every document referenced by the vendor payload. A partial
// failure yields a result with Failed entries and a non-nil error.
func (s *DocumentSyncService) SyncVendor(ctx context.Context, submission *models.Submission) (*models.SyncResult, error) {
	vendor, err := submission.VendorDetails()
	if err != nil {
		result := &models.SyncResult{Err: err.Error(), Message: "vendor payload could not be read"}
		s.writeLog(ctx, submission.ID, result)
		return result, err
	}

	company := vendor.CompanyName
	if company == "" {
		company = submission.DisplayName
	}
	result := &models.SyncResult{Folder: s.FolderFor(company)}

	docTypes := make([]string, 0, len(vendor.Documents))
	for docType, key := range vendor.Documents {
		if strings.TrimSpace(key) != "" {
			docTypes = append(docTypes, docType)
		}
	}
	sort.Strings(docTypes)

	for _, docType := range docTypes {
		if err := ctx.Err(); err != nil {
			result.Failed = append(result.Failed, models.SyncedDocument{DocType: docType, SourceKey: vendor.Documents[docType], Error: err.Error()})
			continue
		}
		source := vendor.Documents[docType]
		target := result.Folder + "/" + docType + path.Ext(source)
		doc := models.SyncedDocument{DocType: docType, SourceKey: source, TargetKey: target}
		if err := s.store.Copy(ctx, source, target); err != nil {
			doc.Error = err.Error()
			result.Failed = append(result.Failed, doc)
			s.logger.Warn("document copy failed",
				zap.String("submission_id", submission.ID),
				zap.String("doc_type", docType),
				zap.Error(err),
			)
			continue
		}
		result.Succeeded = append(result.Succeeded, doc)
	}

	if err := s.writeSummary(ctx, submission, vendor, result.Folder); err != nil {
		s.logger.Warn("failed to write registration summary", zap.String("submission_id", submission.ID), zap.Error(err))
		result.Failed = append(result.Failed, models.SyncedDocument{DocType: "summary", TargetKey: result.Folder + "/" + SummaryFilename, Error: err.Error()})
	}

	if len(docTypes) == 0 {
		result.Message = "No documents found for this vendor"
	} else {
		result.Message = fmt.Sprintf("Synced %d documents, %d failed", len(result.Succeeded), len(result.Failed))
	}

	var syncErr error
	if len(result.Failed) > 0 {
		result.Err = fmt.Sprintf("%d of %d items failed to sync", len(result.Failed), len(docTypes)+1)
		syncErr = fmt.Errorf("document sync incomplete: %s", result.Err)
	}
	s.writeLog(ctx, submission.ID, result)
	return result, syncErr
}

func (s *DocumentSyncService) writeSummary(ctx context.Context, submission *models.Submission, vendor *models.VendorDetails, folder string) error {
	docs := make([]export.Field, 0, len(vendor.Documents))
	for docType, key := range vendor.Documents {
		docs = append(docs, export.Field{Label: documentLabel(docType), Value: key})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Label < docs[j].Label })

	fleet := ""
	if vendor.FleetSize > 0 {
		fleet = strconv.Itoa(vendor.FleetSize)
	}
	approvedAt := s.now().UTC()
	if submission.DecidedAt != nil {
		approvedAt = submission.DecidedAt.UTC()
	}

	pdf, err := s.pdf.RenderSummary(export.Summary{
		Title:       "Vendor Registration: " + vendor.CompanyName,
		Subtitle:    "Approved " + approvedAt.Format("January 2, 2006"),
		GeneratedAt: s.now().UTC(),
		Sections: []export.Section{
			{Heading: "Company", Fields: []export.Field{
				{Label: "Company Name", Value: vendor.CompanyName},
				{Label: "Contact", Value: vendor.ContactName},
				{Label: "Email", Value: vendor.Email},
				{Label: "Phone", Value: vendor.Phone},
				{Label: "Website", Value: vendor.Website},
				{Label: "Address", Value: vendor.Address},
			}},
			{Heading: "Operations", Fields: []export.Field{
				{Label: "Certificate Number", Value: vendor.CertificateNumber},
				{Label: "Aircraft Types", Value: strings.Join(vendor.AircraftTypes, ", ")},
				{Label: "Fleet Size", Value: fleet},
				{Label: "Insurance Expiry", Value: vendor.InsuranceExpiry},
				{Label: "Notes", Value: vendor.Notes},
			}},
			{Heading: "Documents", Fields: docs},
		},
	})
	if err != nil {
		return err
	}
	return s.store.Put(ctx, folder+"/"+SummaryFilename, pdf, "application/pdf")
}

func (s *DocumentSyncService) writeLog(ctx context.Context, submissionID string, result *models.SyncResult) {
	if s.logs == nil {
		return
	}
	entry := &models.DocumentSyncLog{
		SubmissionID: submissionID,
		Destination:  syncDestination,
		Success:      result.OK(),
		Succeeded:    len(result.Succeeded),
		Failed:       len(result.Failed),
		Message:      result.Message,
	}
	if result.Folder != "" {
		folder := result.Folder
		entry.Folder = &folder
	}
	if result.Err != "" && entry.Message == "" {
		entry.Message = result.Err
	}
	// The sync deadline may already have passed; the log row is still written.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncLogTimeout)
	defer cancel()
	if err := s.logs.CreateSyncLog(logCtx, entry); err != nil {
		s.logger.Warn("failed to record sync log", zap.String("submission_id", submissionID), zap.Error(err))
	}
}
