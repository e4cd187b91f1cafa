package model

// SearchRequest is the criteria-entry form payload
type SearchRequest struct {
	GroupSize   int      `json:"group_size" binding:"required"`
	Environment string   `json:"environment" binding:"required"`
	MinBudget   float64  `json:"min_budget"`
	MaxBudget   float64  `json:"max_budget" binding:"required"`
	Location    string   `json:"location,omitempty"`
	Features    []string `json:"features,omitempty"`
	Preferences string   `json:"preferences,omitempty"`
	TopK        int      `json:"top_k,omitempty"`
}

// SearchResponse carries the ranked recommendations
type SearchResponse struct {
	Results []MatchResult `json:"results"`
	Total   int           `json:"total"`
	Took    int64         `json:"took_ms"`
}

// ChatRequest is a free-text chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// LocationSuggestion is the structured outcome of a chat exchange:
// one concrete property pick plus the model's justification
type LocationSuggestion struct {
	PropertyID    string   `json:"property_id,omitempty"`
	Location      string   `json:"location"`
	PropertyType  string   `json:"property_type,omitempty"`
	PricePerNight float64  `json:"price_per_night,omitempty"`
	Bedrooms      int      `json:"bedrooms,omitempty"`
	Features      []string `json:"features,omitempty"`
	Reasoning     string   `json:"reasoning"`
}

// ChatResponse wraps a suggestion for the UI
type ChatResponse struct {
	Suggestion *LocationSuggestion `json:"suggestion"`
	Took       int64               `json:"took_ms"`
}

// SignupRequest creates an account
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates an account
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest edits name and/or password. Empty fields are left as-is.
type ProfileUpdateRequest struct {
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name,omitempty"`
	Password    string `json:"password,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

// AuthResponse returns the account record (hash excluded by User's json tags)
type AuthResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}
