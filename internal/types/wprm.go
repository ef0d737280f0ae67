package types

import "time"

// WPRMRecipe is the import shape consumed by the WP Recipe Maker plugin.
// Times are minutes; unparseable time strings export as zero.
type WPRMRecipe struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Summary           string                 `json:"summary"`
	Servings          string                 `json:"servings"`
	PrepTime          int                    `json:"prep_time"`
	CookTime          int                    `json:"cook_time"`
	TotalTime         int                    `json:"total_time"`
	IngredientGroups  []WPRMIngredientGroup  `json:"ingredients"`
	InstructionGroups []WPRMInstructionGroup `json:"instructions"`
	CreatedAt         time.Time              `json:"createdAt"`
}

// WPRMIngredientGroup groups ingredient lines under an optional heading
type WPRMIngredientGroup struct {
	Name        string           `json:"name"`
	Ingredients []WPRMIngredient `json:"ingredients"`
}

// WPRMIngredient is a single raw ingredient line
type WPRMIngredient struct {
	Raw string `json:"raw"`
}

// WPRMInstructionGroup groups instruction steps under an optional heading
type WPRMInstructionGroup struct {
	Name         string            `json:"name"`
	Instructions []WPRMInstruction `json:"instructions"`
}

// WPRMInstruction is a single instruction step
type WPRMInstruction struct {
	Text string `json:"text"`
}
