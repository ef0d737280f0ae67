package service

import (
	"encoding/json"

	"github.com/tonechef/backend/internal/types"
)

// requiredRecipeFields lists the schema v1 required fields in declaration
// order. MissingFields errors report absent fields in this order.
var requiredRecipeFields = []string{
	"name",
	"servings",
	"prepTime",
	"cookTime",
	"ingredients",
	"instructions",
}

// ParseRecipe parses sanitized candidate text into a validated Recipe. It
// fails with MalformedJSON when the text does not parse, MissingFields when
// any required field is absent (reporting all of them), and
// EmptyRequiredList when ingredients or instructions is an empty array.
// Field values are returned as-is; no coercion or repair is attempted.
func ParseRecipe(text string) (*types.Recipe, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, &FormatError{Kind: MalformedJSON, Detail: err.Error(), Raw: text}
	}

	var missing []string
	for _, field := range requiredRecipeFields {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Kind: MissingFields, Fields: missing, Raw: text}
	}

	var recipe types.Recipe
	if err := json.Unmarshal([]byte(text), &recipe); err != nil {
		return nil, &FormatError{Kind: MalformedJSON, Detail: err.Error(), Raw: text}
	}

	if len(recipe.Ingredients) == 0 {
		return nil, &FormatError{Kind: EmptyRequiredList, Detail: "ingredients", Raw: text}
	}
	if len(recipe.Instructions) == 0 {
		return nil, &FormatError{Kind: EmptyRequiredList, Detail: "instructions", Raw: text}
	}

	return &recipe, nil
}
