package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/tonechef/backend/internal/types"
)

// ExportWPRM converts a validated recipe into the WP Recipe Maker import
// shape. All ingredients and instructions go into a single unnamed group;
// the plugin treats a blank group name as "no heading".
func ExportWPRM(recipe *types.Recipe) *types.WPRMRecipe {
	ingredients := make([]types.WPRMIngredient, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		ingredients = append(ingredients, types.WPRMIngredient{Raw: line})
	}

	instructions := make([]types.WPRMInstruction, 0, len(recipe.Instructions))
	for _, step := range recipe.Instructions {
		instructions = append(instructions, types.WPRMInstruction{Text: step})
	}

	prep := parseMinutes(recipe.PrepTime)
	cook := parseMinutes(recipe.CookTime)

	summary := recipe.Name
	if len(recipe.TitleVariations) > 0 {
		summary += " (also known as " + strings.Join(recipe.TitleVariations, ", ") + ")"
	}

	return &types.WPRMRecipe{
		ID:        uuid.New().String(),
		Name:      recipe.Name,
		Summary:   summary,
		Servings:  recipe.Servings,
		PrepTime:  prep,
		CookTime:  cook,
		TotalTime: prep + cook,
		IngredientGroups: []types.WPRMIngredientGroup{
			{Ingredients: ingredients},
		},
		InstructionGroups: []types.WPRMInstructionGroup{
			{Instructions: instructions},
		},
		CreatedAt: time.Now().UTC(),
	}
}

// parseMinutes extracts a minute count from free-text durations like
// "15 minutes", "1 hour" or "1 hour 30 minutes". Unparseable text yields 0;
// the export format tolerates zero times.
func parseMinutes(s string) int {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	total := 0
	pending := 0
	for _, field := range fields {
		if n, err := strconv.Atoi(field); err == nil {
			pending = n
			continue
		}
		switch {
		case strings.HasPrefix(field, "hour") || field == "h" || field == "hr" || field == "hrs":
			total += pending * 60
			pending = 0
		case strings.HasPrefix(field, "min") || field == "m":
			total += pending
			pending = 0
		}
	}

	// A bare number with no unit reads as minutes.
	return total + pending
}
