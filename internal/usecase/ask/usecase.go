package ask

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/repository"
)

// maxContextDocuments caps how many documents feed one generation call.
const maxContextDocuments = 6

const (
	noDataPlaceholder = "Hiện chưa có dữ liệu nào trong hệ thống."
	noAnswerMessage   = "Xin lỗi, tôi chưa tìm thấy thông tin phù hợp để trả lời câu hỏi này."
)

// Usecase turns a user question into a bounded context set, a prompt for
// the external generator and a shaped answer with references.
type Usecase struct {
	documentRepo repository.DocumentRepository
	generator    Generator
	logger       *zap.Logger
}

// NewUsecase creates the ask use case. generator may be nil when no
// generation service is configured; Ask then fails with
// entity.ErrGeneratorNotConfigured before touching the store.
func NewUsecase(
	documentRepo repository.DocumentRepository,
	generator Generator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		documentRepo: documentRepo,
		generator:    generator,
		logger:       logger,
	}
}

// Ask answers a question from the stored documents. The question must be
// non-empty after trimming; the caller validates that before calling.
func (uc *Usecase) Ask(ctx context.Context, question string) (*entity.AskResult, error) {
	if uc.generator == nil {
		return nil, entity.ErrGeneratorNotConfigured
	}

	docs, err := uc.selectContext(ctx, question)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(question, docs)

	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return shapeResponse(raw, docs), nil
}

// selectContext picks up to maxContextDocuments reference documents:
// first a literal case-insensitive substring match over title and content,
// then, when nothing matches, the most recently created documents.
func (uc *Usecase) selectContext(ctx context.Context, question string) ([]*entity.Document, error) {
	docs, err := uc.documentRepo.SearchLiteral(ctx, question, maxContextDocuments)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	if len(docs) > 0 {
		ctxzap.Debug(ctx, "selected context by literal match", zap.Int("count", len(docs)))
		return docs, nil
	}

	docs, err = uc.documentRepo.ListRecent(ctx, maxContextDocuments)
	if err != nil {
		return nil, fmt.Errorf("list recent documents: %w", err)
	}

	ctxzap.Debug(ctx, "selected context by recency fallback", zap.Int("count", len(docs)))
	return docs, nil
}

// BuildPrompt renders the documents and the question into the single
// prompt string sent to the generator. Output is deterministic for
// identical inputs.
func BuildPrompt(question string, docs []*entity.Document) string {
	context := noDataPlaceholder
	if len(docs) > 0 {
		blocks := make([]string, 0, len(docs))
		for i, doc := range docs {
			block := fmt.Sprintf("Mục %d: %s\nNgày đăng: %s\nNội dung: %s",
				i+1, doc.Title, doc.Date, doc.Content)
			if doc.FileType == entity.FileTypeWord && doc.ImageCount > 0 {
				block += fmt.Sprintf("\n(Tài liệu Word này có %d hình ảnh đính kèm)", doc.ImageCount)
			}
			blocks = append(blocks, block)
		}
		context = strings.Join(blocks, "\n\n")
	}

	return fmt.Sprintf(`Bạn là trợ lý ảo của cổng thông tin điện tử xã. Quy tắc bắt buộc:
- Chỉ trả lời bằng tiếng Việt.
- Chỉ sử dụng thông tin trong phần DỮ LIỆU bên dưới.
- Nếu dữ liệu không đủ để trả lời, hãy nói rõ là chưa có thông tin, tuyệt đối không tự suy diễn.

DỮ LIỆU:
%s

Câu hỏi: %s
Trả lời chi tiết:`, context, question)
}

// shapeResponse substitutes the fixed fallback for blank completions so
// callers never see an empty answer.
func shapeResponse(raw string, docs []*entity.Document) *entity.AskResult {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		answer = noAnswerMessage
	}

	return &entity.AskResult{
		Answer:     answer,
		References: docs,
	}
}
