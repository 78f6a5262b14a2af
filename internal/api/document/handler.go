package document

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/pkg/logger"
	"github.com/nqkhanh/commune-backend/internal/pkg/response"
)

const (
	msgMissingFields    = "Tiêu đề và nội dung là bắt buộc."
	msgInvalidRequest   = "Dữ liệu gửi lên không hợp lệ."
	msgInvalidFile      = "Tệp tải lên không hợp lệ. Chỉ chấp nhận tệp Word (.docx)."
	msgNotFound         = "Không tìm thấy dữ liệu."
	msgInternalError    = "Đã xảy ra lỗi hệ thống. Vui lòng thử lại sau."
	msgDocumentDeleted  = "Đã xóa dữ liệu thành công."
	msgInvalidExportFmt = "Định dạng tải xuống không được hỗ trợ."
)

type Handler struct {
	usecase DocumentUsecase
	cfg     config.UploadConfig
}

func NewHandler(usecase DocumentUsecase, cfg config.UploadConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// List handles GET /api/data
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListDocuments")

	docs, err := h.usecase.List(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if docs == nil {
		docs = []*entity.Document{}
	}

	ctxzap.Debug(ctx, "documents listed", zap.Int("count", len(docs)))
	response.Success(w, docs)
}

// Create handles POST /api/data
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateDocument")

	var req entity.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode create request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	doc, err := h.usecase.Create(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, doc)
}

// Upload handles POST /api/data/upload
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadDocument")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		ctxzap.Warn(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		ctxzap.Warn(ctx, "no file provided")
		response.Error(w, http.StatusBadRequest, msgInvalidFile)
		return
	}

	req := entity.UploadDocumentRequest{
		Title: r.FormValue("title"),
		File:  files[0],
	}

	doc, err := h.usecase.CreateFromWord(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, doc)
}

// Delete handles DELETE /api/data/{document_id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "document_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("document_id", documentID),
		zap.String("action", "DeleteDocument"),
	)

	if err := h.usecase.Delete(ctx, documentID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "document deleted")
	response.Success(w, &entity.DeleteDocumentResponse{Message: msgDocumentDeleted})
}

// Export handles GET /api/data/{document_id}/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "document_id")
	format := entity.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatPDF
	}

	ctx := logger.AddFields(r.Context(),
		zap.String("document_id", documentID),
		zap.String("format", string(format)),
		zap.String("action", "ExportDocument"),
	)

	result, err := h.usecase.Export(ctx, documentID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "document exported", zap.Int("bytes", len(result.Data)))

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, entity.ErrInvalidParameter):
		ctxzap.Warn(ctx, "validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
	case errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrFileTooLarge):
		ctxzap.Warn(ctx, "invalid upload", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidFile)
	case errors.Is(err, entity.ErrUnsupportedFormat):
		ctxzap.Warn(ctx, "unsupported export format", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidExportFmt)
	case errors.Is(err, entity.ErrDocumentNotFound):
		ctxzap.Warn(ctx, "document not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, msgNotFound)
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgInternalError)
	}
}
