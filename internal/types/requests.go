package types

// GenerateRequest represents the request body for generating a recipe
type GenerateRequest struct {
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	Tone        string `json:"tone"`
}

// ExportWPRMRequest represents the request body for a WP Recipe Maker export
type ExportWPRMRequest struct {
	Recipe Recipe `json:"recipe" binding:"required"`
}

// ErrorResponse is the JSON body returned on every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
