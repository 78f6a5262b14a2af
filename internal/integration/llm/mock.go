package llm

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector answers without an external service, for local development
// and testing with ENABLE_MOCKS.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating answer via LLM", zap.Int("prompt_length", len(prompt)))

	answer := fmt.Sprintf(
		"Đây là câu trả lời thử nghiệm (MOCK). Hệ thống đã nhận được câu hỏi và %d ký tự ngữ cảnh.",
		len(prompt),
	)

	ctxzap.Info(ctx, "[MOCK] answer generated", zap.Int("result_length", len(answer)))
	return answer, nil
}
