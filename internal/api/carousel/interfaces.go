package carousel

import (
	"context"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

type CarouselUsecase interface {
	Create(ctx context.Context, req *entity.CreateCarouselImageRequest) (*entity.CarouselImage, error)
	Upload(ctx context.Context, req *entity.UploadCarouselImageRequest) (*entity.CarouselImage, error)
	UploadBase64(ctx context.Context, req *entity.UploadCarouselBase64Request) (*entity.CarouselImage, error)
	List(ctx context.Context) ([]*entity.CarouselImage, error)
	Delete(ctx context.Context, id string) error
}
