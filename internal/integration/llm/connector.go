package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/entity"
	"github.com/nqkhanh/commune-backend/internal/integration/common"
	pkghttp "github.com/nqkhanh/commune-backend/pkg/http"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate sends the assembled prompt to the generation service and
// returns the raw completion text. The call is a single pass: failures
// surface immediately, there is no retry.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating answer via LLM service", zap.Int("prompt_length", len(prompt)))

	req := &entity.LLMGenerateRequest{Prompt: prompt}

	var resp entity.LLMGenerateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("generate answer failed: %w", err)
	}

	ctxzap.Info(ctx, "answer generated successfully", zap.Int("result_length", len(resp.Result)))

	return resp.Result, nil
}
