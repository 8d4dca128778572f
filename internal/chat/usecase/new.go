package usecase

import (
	"context"
	"time"

	"insurance-renewal-assistant/internal/agent"
	"insurance-renewal-assistant/pkg/llmprovider"
	pkgLog "insurance-renewal-assistant/pkg/log"
)

// generator abstracts the LLM provider manager for testability.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// nowFunc is swapped in tests to pin payment link IDs.
var nowFunc = time.Now

type implUseCase struct {
	l             pkgLog.Logger
	llm           generator
	registry      *agent.ToolRegistry
	temperature   float64
	maxTokens     int
	maxIterations int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm generator,
	registry *agent.ToolRegistry,
	temperature float64,
	maxTokens int,
	maxIterations int,
) *implUseCase {
	if maxIterations <= 0 {
		maxIterations = 5
	}
	return &implUseCase{
		l:             l,
		llm:           llm,
		registry:      registry,
		temperature:   temperature,
		maxTokens:     maxTokens,
		maxIterations: maxIterations,
	}
}
