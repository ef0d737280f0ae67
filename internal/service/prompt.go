package service

import (
	"fmt"
	"sort"
)

// toneStyles maps a narrative tone to the style instruction embedded in the
// prompt. Unknown tones are passed through verbatim so the form can offer
// free-text tones without a server change.
var toneStyles = map[string]string{
	"concise":  "Keep the name and every line short and matter-of-fact.",
	"playful":  "Use a light, playful voice with the occasional pun.",
	"formal":   "Write in a precise, professional cookbook register.",
	"rustic":   "Write warmly, like a handwritten family recipe card.",
	"dramatic": "Narrate each step as if it were the climax of a cooking show.",
}

// Tones returns the supported narrative tones in stable order
func Tones() []string {
	tones := make([]string, 0, len(toneStyles))
	for tone := range toneStyles {
		tones = append(tones, tone)
	}
	sort.Strings(tones)
	return tones
}

// BuildPrompt renders the instruction prompt for the model. The user's
// ingredients and steps are embedded verbatim; downstream sanitization and
// validation must tolerate whatever the model does with malformed or
// adversarial text.
func BuildPrompt(ingredients, steps, tone string) string {
	style, ok := toneStyles[tone]
	if !ok {
		style = fmt.Sprintf("Write the recipe in a %s tone.", tone)
	}

	return fmt.Sprintf(`Turn the ingredient list and preparation steps below into a complete recipe.
%s

Respond with ONLY a JSON object. No explanations, no markdown, no code fences.
The object must match this exact schema (schema v1):
{
    "name": "Recipe name",
    "titleVariations": ["Alternative name 1", "Alternative name 2", "Alternative name 3"],
    "servings": "Number of servings",
    "prepTime": "Preparation time",
    "cookTime": "Cooking time",
    "ingredients": [
        "2 cups flour",
        "1 cup sugar"
    ],
    "instructions": [
        "Step 1: Mix the dry ingredients",
        "Step 2: Bake at 350°F for 30 minutes"
    ]
}

The ingredients and instructions arrays must not be empty.

INGREDIENTS:
%s

PREPARATION STEPS:
%s`, style, ingredients, steps)
}
