package carousel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/pkg/logger"
	"github.com/nqkhanh/commune-backend/internal/pkg/response"
)

const (
	msgMissingImageURL = "Đường dẫn ảnh là bắt buộc."
	msgInvalidRequest  = "Dữ liệu gửi lên không hợp lệ."
	msgInvalidImage    = "Ảnh tải lên không hợp lệ."
	msgInternalError   = "Đã xảy ra lỗi hệ thống. Vui lòng thử lại sau."
	msgImageDeleted    = "Đã xóa ảnh thành công."
)

type Handler struct {
	usecase CarouselUsecase
	cfg     config.UploadConfig
}

func NewHandler(usecase CarouselUsecase, cfg config.UploadConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// List handles GET /api/carousel
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListCarousel")

	images, err := h.usecase.List(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if images == nil {
		images = []*entity.CarouselImage{}
	}

	ctxzap.Debug(ctx, "carousel images listed", zap.Int("count", len(images)))
	response.Success(w, images)
}

// Create handles POST /api/carousel
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateCarousel")

	var req entity.CreateCarouselImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode create request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	img, err := h.usecase.Create(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, img)
}

// Upload handles POST /api/carousel/upload
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadCarousel")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		ctxzap.Warn(ctx, "failed to parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		ctxzap.Warn(ctx, "no image provided")
		response.Error(w, http.StatusBadRequest, msgInvalidImage)
		return
	}

	order, _ := strconv.Atoi(r.FormValue("order"))
	req := entity.UploadCarouselImageRequest{
		Title: r.FormValue("title"),
		Alt:   r.FormValue("alt"),
		Order: order,
		File:  files[0],
	}

	img, err := h.usecase.Upload(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, img)
}

// UploadBase64 handles POST /api/carousel/upload-base64
func (h *Handler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadCarouselBase64")

	var req entity.UploadCarouselBase64Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode base64 upload request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	img, err := h.usecase.UploadBase64(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, img)
}

// Delete handles DELETE /api/carousel/{image_id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "image_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("image_id", imageID),
		zap.String("action", "DeleteCarousel"),
	)

	if err := h.usecase.Delete(ctx, imageID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "carousel image deleted")
	response.Success(w, &entity.DeleteCarouselImageResponse{Message: msgImageDeleted})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgMissingImageURL)
	case errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrInvalidBase64),
		errors.Is(err, entity.ErrInvalidFile):
		ctxzap.Warn(ctx, "invalid image upload", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgInvalidImage)
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgInternalError)
	}
}
