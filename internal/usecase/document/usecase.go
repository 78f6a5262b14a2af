package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/pkg/docparse"
	"github.com/nqkhanh/commune-backend/internal/pkg/formatter"
	"github.com/nqkhanh/commune-backend/internal/pkg/validator"
	"github.com/nqkhanh/commune-backend/internal/repository"
)

// displayDateLayout is the dd/mm/yyyy rendering stored alongside each
// document at creation time.
const displayDateLayout = "02/01/2006"

// Usecase implements document business logic
type Usecase struct {
	documentRepo     repository.DocumentRepository
	validator        *validator.Validator
	formatterFactory *formatter.Factory
	logger           *zap.Logger
	now              func() time.Time
}

func NewUsecase(
	documentRepo repository.DocumentRepository,
	validator *validator.Validator,
	formatterFactory *formatter.Factory,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		documentRepo:     documentRepo,
		validator:        validator,
		formatterFactory: formatterFactory,
		logger:           logger,
		now:              time.Now,
	}
}

// Create stores a new document. fileType defaults to text, a negative
// imageCount is clamped to zero, and text documents never carry HTML
// content. imageCount is otherwise taken from the client as-is: there is
// no server-side recount against htmlContent.
func (uc *Usecase) Create(ctx context.Context, req *entity.CreateDocumentRequest) (*entity.Document, error) {
	if err := uc.validator.ValidateCreateDocument(req); err != nil {
		return nil, err
	}

	fileType := entity.FileType(req.FileType)
	if req.FileType == "" {
		fileType = entity.FileTypeText
	}
	if err := fileType.Validate(); err != nil {
		return nil, err
	}

	htmlContent := req.HTMLContent
	if fileType == entity.FileTypeText {
		htmlContent = nil
	}

	imageCount := req.ImageCount
	if imageCount < 0 {
		imageCount = 0
	}

	doc := entity.Document{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		FileType:    fileType,
		HTMLContent: htmlContent,
		ImageCount:  imageCount,
		Date:        uc.now().Format(displayDateLayout),
	}

	created, err := uc.documentRepo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	ctxzap.Info(ctx, "document created",
		zap.String("document_id", created.ID),
		zap.String("file_type", string(created.FileType)),
	)

	return created, nil
}

// CreateFromWord stores a document from an uploaded .docx file: content,
// HTML rendering and embedded-image count are extracted server-side.
func (uc *Usecase) CreateFromWord(ctx context.Context, req *entity.UploadDocumentRequest) (*entity.Document, error) {
	if err := uc.validator.ValidateWordUpload(req.File); err != nil {
		return nil, err
	}

	f, err := req.File.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	extraction, err := docparse.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFile, err)
	}

	if strings.TrimSpace(extraction.Text) == "" {
		return nil, fmt.Errorf("%w: document has no readable text", entity.ErrInvalidFile)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		base := filepath.Base(req.File.Filename)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	html := extraction.HTML
	doc := entity.Document{
		ID:          uuid.New().String(),
		Title:       title,
		Content:     extraction.Text,
		FileType:    entity.FileTypeWord,
		HTMLContent: &html,
		ImageCount:  extraction.ImageCount,
		Date:        uc.now().Format(displayDateLayout),
	}

	created, err := uc.documentRepo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	ctxzap.Info(ctx, "word document created",
		zap.String("document_id", created.ID),
		zap.Int("image_count", created.ImageCount),
	)

	return created, nil
}

// List returns all documents, newest first.
func (uc *Usecase) List(ctx context.Context) ([]*entity.Document, error) {
	docs, err := uc.documentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// Delete removes a document. Deleting an unknown identifier succeeds.
func (uc *Usecase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.documentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	if !deleted {
		ctxzap.Debug(ctx, "delete for unknown document id", zap.String("document_id", id))
	}

	return nil
}

// ExportResult is a rendered document ready for download.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export renders a stored document in the requested download format.
func (uc *Usecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*ExportResult, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}

	doc, err := uc.documentRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	f, err := uc.formatterFactory.Create(format)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(doc)
	if err != nil {
		return nil, fmt.Errorf("format document: %w", err)
	}

	return &ExportResult{
		Data:        data,
		ContentType: f.ContentType(),
		Filename:    doc.ID + f.FileExtension(),
	}, nil
}
