package carousel

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/pkg/validator"
	"github.com/nqkhanh/commune-backend/internal/repository"
	"github.com/nqkhanh/commune-backend/internal/storage"
)

// Usecase implements carousel image business logic
type Usecase struct {
	carouselRepo repository.CarouselRepository
	store        storage.Storage
	namer        *storage.FileNamer
	validator    *validator.Validator
	logger       *zap.Logger
}

func NewUsecase(
	carouselRepo repository.CarouselRepository,
	store storage.Storage,
	namer *storage.FileNamer,
	validator *validator.Validator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		carouselRepo: carouselRepo,
		store:        store,
		namer:        namer,
		validator:    validator,
		logger:       logger,
	}
}

// Create registers a carousel image by direct URL. Missing title, alt and
// order are default-filled, not rejected.
func (uc *Usecase) Create(ctx context.Context, req *entity.CreateCarouselImageRequest) (*entity.CarouselImage, error) {
	if err := uc.validator.ValidateCreateCarousel(req); err != nil {
		return nil, err
	}

	img := entity.CarouselImage{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(req.Title),
		ImageURL: strings.TrimSpace(req.ImageURL),
		Alt:      strings.TrimSpace(req.Alt),
		Order:    req.Order,
	}

	created, err := uc.carouselRepo.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("create carousel image: %w", err)
	}

	ctxzap.Info(ctx, "carousel image created", zap.String("image_id", created.ID))

	return created, nil
}

// Upload persists an uploaded image file to storage first, then registers
// the resulting URL. When the record write fails the orphaned file is
// removed best-effort.
func (uc *Usecase) Upload(ctx context.Context, req *entity.UploadCarouselImageRequest) (*entity.CarouselImage, error) {
	if err := uc.validator.ValidateImageUpload(req.File); err != nil {
		return nil, err
	}

	f, err := req.File.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer f.Close()

	filename := uc.namer.Name(filepath.Ext(req.File.Filename))
	url, err := uc.store.Save(ctx, filename, f)
	if err != nil {
		return nil, fmt.Errorf("save uploaded image: %w", err)
	}

	return uc.register(ctx, url, req.Title, req.Alt, req.Order)
}

// UploadBase64 decodes an inline data-URL image and follows the same
// persist-then-register flow as Upload.
func (uc *Usecase) UploadBase64(ctx context.Context, req *entity.UploadCarouselBase64Request) (*entity.CarouselImage, error) {
	data, ext, err := uc.validator.ParseBase64Image(req.Image)
	if err != nil {
		return nil, err
	}

	filename := uc.namer.Name(ext)
	url, err := uc.store.Save(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("save uploaded image: %w", err)
	}

	return uc.register(ctx, url, req.Title, req.Alt, req.Order)
}

func (uc *Usecase) register(ctx context.Context, url, title, alt string, order int) (*entity.CarouselImage, error) {
	img := entity.CarouselImage{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(title),
		ImageURL: url,
		Alt:      strings.TrimSpace(alt),
		Order:    order,
	}

	created, err := uc.carouselRepo.Create(ctx, img)
	if err != nil {
		// The file is already on disk; clean it up so failed requests
		// don't leak orphans.
		if rmErr := uc.store.Remove(ctx, url); rmErr != nil {
			ctxzap.Warn(ctx, "failed to remove orphaned upload",
				zap.String("url", url),
				zap.Error(rmErr),
			)
		}
		return nil, fmt.Errorf("create carousel image: %w", err)
	}

	ctxzap.Info(ctx, "carousel image uploaded",
		zap.String("image_id", created.ID),
		zap.String("image_url", created.ImageURL),
	)

	return created, nil
}

// List returns all carousel images in display order.
func (uc *Usecase) List(ctx context.Context) ([]*entity.CarouselImage, error) {
	images, err := uc.carouselRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list carousel images: %w", err)
	}

	return images, nil
}

// Delete removes a carousel image. Deleting an unknown identifier
// succeeds. When the stored URL points at a locally hosted file, the file
// is removed best-effort.
func (uc *Usecase) Delete(ctx context.Context, id string) error {
	imageURL, deleted, err := uc.carouselRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete carousel image: %w", err)
	}

	if !deleted {
		ctxzap.Debug(ctx, "delete for unknown carousel image id", zap.String("image_id", id))
		return nil
	}

	if uc.store.IsLocal(imageURL) {
		if err := uc.store.Remove(ctx, imageURL); err != nil {
			ctxzap.Warn(ctx, "failed to remove carousel image file",
				zap.String("image_url", imageURL),
				zap.Error(err),
			)
		}
	}

	return nil
}
