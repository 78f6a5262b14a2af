package ask

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/pkg/logger"
	"github.com/nqkhanh/commune-backend/internal/pkg/response"
)

const (
	msgEmptyQuestion   = "Vui lòng nhập câu hỏi."
	msgNotConfigured   = "Dịch vụ trả lời tự động chưa được cấu hình."
	msgGenerationError = "Đã xảy ra lỗi khi xử lý câu hỏi. Vui lòng thử lại sau."
)

type Handler struct {
	usecase AskUsecase
}

func NewHandler(usecase AskUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Ask handles POST /api/ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	var req entity.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode ask request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgEmptyQuestion)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		ctxzap.Warn(ctx, "empty question")
		response.Error(w, http.StatusBadRequest, msgEmptyQuestion)
		return
	}

	ctxzap.Info(ctx, "answering question", zap.Int("question_length", len(question)))

	result, err := h.usecase.Ask(ctx, question)
	if err != nil {
		if errors.Is(err, entity.ErrGeneratorNotConfigured) {
			ctxzap.Error(ctx, "generation service not configured")
			response.Error(w, http.StatusInternalServerError, msgNotConfigured)
			return
		}

		ctxzap.Error(ctx, "failed to answer question", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgGenerationError)
		return
	}

	ctxzap.Info(ctx, "question answered",
		zap.Int("answer_length", len(result.Answer)),
		zap.Int("reference_count", len(result.References)),
	)

	response.Success(w, toAskResponse(result))
}
