package types

import (
	"time"
)

// Recipe is the canonical v1 recipe schema returned by the generation
// pipeline. The six scalar/list fields are required; titleVariations is
// passed through when the model provides it but is never required.
type Recipe struct {
	Name            string   `json:"name"`
	TitleVariations []string `json:"titleVariations,omitempty"`
	Servings        string   `json:"servings"`
	PrepTime        string   `json:"prepTime"`
	CookTime        string   `json:"cookTime"`
	Ingredients     []string `json:"ingredients"`
	Instructions    []string `json:"instructions"`
}

// SavedRecipe is a Recipe with the identity fields the client keeps in its
// history list
type SavedRecipe struct {
	Recipe
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
