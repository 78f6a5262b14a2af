package document

import (
	"context"

	"github.com/nqkhanh/commune-backend/internal/entity"
	documentuc "github.com/nqkhanh/commune-backend/internal/usecase/document"
)

type DocumentUsecase interface {
	Create(ctx context.Context, req *entity.CreateDocumentRequest) (*entity.Document, error)
	CreateFromWord(ctx context.Context, req *entity.UploadDocumentRequest) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id string, format entity.ExportFormat) (*documentuc.ExportResult, error)
}
