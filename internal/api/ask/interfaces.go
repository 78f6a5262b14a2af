package ask

import (
	"context"

	"github.com/nqkhanh/commune-backend/internal/entity"
)

type AskUsecase interface {
	Ask(ctx context.Context, question string) (*entity.AskResult, error)
}
