package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/tonechef/backend/internal/types"
)

// GenerationService runs the prompt-to-recipe pipeline: input validation,
// prompt templating, the provider call, output sanitization, and schema
// validation. Rate limiting happens upstream in middleware; no stage is
// retried.
type GenerationService struct {
	client         Client
	maxInputLength int
	logger         *zap.Logger
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(client Client, maxInputLength int, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		client:         client,
		maxInputLength: maxInputLength,
		logger:         logger,
	}
}

// ValidateInput checks request payload shape and size bounds. The length
// bound is a deliberately crude proxy for the provider's token limit.
func (s *GenerationService) ValidateInput(ingredients, steps string) error {
	if strings.TrimSpace(ingredients) == "" || strings.TrimSpace(steps) == "" {
		return ErrEmptyInput
	}
	if len(ingredients)+len(steps) > s.maxInputLength {
		return ErrInputTooLarge
	}
	return nil
}

// Generate runs one request through the pipeline and returns the validated
// recipe. Failures surface immediately: ErrEmptyInput/ErrInputTooLarge,
// *ProviderError, *FormatError, or the context error on cancellation.
func (s *GenerationService) Generate(ctx context.Context, req *types.GenerateRequest) (*types.Recipe, error) {
	if err := s.ValidateInput(req.Ingredients, req.Steps); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req.Ingredients, req.Steps, req.Tone)

	completion, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidate := Sanitize(completion)

	recipe, err := ParseRecipe(candidate)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			s.logger.Warn("completion failed recipe validation",
				zap.String("kind", string(formatErr.Kind)),
				zap.String("detail", formatErr.Detail),
				zap.Strings("missing_fields", formatErr.Fields),
				zap.String("completion", truncate(formatErr.Raw, 2000)))
		}
		return nil, err
	}

	return recipe, nil
}
