package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tonechef/backend/internal/types"
)

// stubClient returns a canned completion or error.
type stubClient struct {
	completion string
	err        error
	prompts    []string
}

func (s *stubClient) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.completion, nil
}

func newTestService(client Client) *GenerationService {
	return NewGenerationService(client, 30000, zap.NewNop())
}

func TestGenerationService_ValidateInput(t *testing.T) {
	svc := newTestService(&stubClient{})

	t.Run("should accept non-empty input within bounds", func(t *testing.T) {
		assert.NoError(t, svc.ValidateInput("2 eggs", "mix"))
	})

	t.Run("should reject empty ingredients", func(t *testing.T) {
		assert.ErrorIs(t, svc.ValidateInput("", "mix"), ErrEmptyInput)
	})

	t.Run("should reject whitespace-only steps", func(t *testing.T) {
		assert.ErrorIs(t, svc.ValidateInput("2 eggs", "  \n\t "), ErrEmptyInput)
	})

	t.Run("should reject oversized input", func(t *testing.T) {
		big := strings.Repeat("x", 30001)
		assert.ErrorIs(t, svc.ValidateInput(big, "mix"), ErrInputTooLarge)
	})

	t.Run("should accept input exactly at the bound", func(t *testing.T) {
		assert.NoError(t, svc.ValidateInput(strings.Repeat("x", 29997), "abc"))
	})
}

func TestGenerationService_Generate(t *testing.T) {
	validCompletion := "```json\n" + `{"name":"Simple Pancakes","servings":"2","prepTime":"5","cookTime":"15","ingredients":["2 eggs","1 cup flour"],"instructions":["Mix ingredients","Bake until golden"]}` + "\n```"

	t.Run("should run the full pipeline", func(t *testing.T) {
		client := &stubClient{completion: validCompletion}
		svc := newTestService(client)

		recipe, err := svc.Generate(context.Background(), &types.GenerateRequest{
			Ingredients: "2 eggs, 1 cup flour",
			Steps:       "mix, bake",
			Tone:        "concise",
		})

		require.NoError(t, err)
		assert.Equal(t, "Simple Pancakes", recipe.Name)
		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0], "2 eggs, 1 cup flour")
	})

	t.Run("should not call the provider on invalid input", func(t *testing.T) {
		client := &stubClient{completion: validCompletion}
		svc := newTestService(client)

		_, err := svc.Generate(context.Background(), &types.GenerateRequest{Ingredients: " ", Steps: "mix"})

		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Empty(t, client.prompts)
	})

	t.Run("should propagate provider failures without retrying", func(t *testing.T) {
		client := &stubClient{err: &ProviderError{StatusCode: 503}}
		svc := newTestService(client)

		_, err := svc.Generate(context.Background(), &types.GenerateRequest{Ingredients: "eggs", Steps: "mix"})

		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Len(t, client.prompts, 1)
	})

	t.Run("should surface format errors from unparseable completions", func(t *testing.T) {
		client := &stubClient{completion: "I would love to help but I am just prose."}
		svc := newTestService(client)

		_, err := svc.Generate(context.Background(), &types.GenerateRequest{Ingredients: "eggs", Steps: "mix"})

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, MalformedJSON, formatErr.Kind)
	})
}
