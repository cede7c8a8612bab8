// model/aimodel.go
package model

import "time"

// Lifecycle states for a base AI model.
const (
	ModelStatusActive        = "active"
	ModelStatusInactive      = "inactive"
	ModelStatusUnderUpdation = "under_updation"
)

// Cost strategies the backend bills a model with.
const (
	CostByTokens  = "tokens"
	CostByRequest = "request"
)

// AIModel is one entry of the AI model catalog.
type AIModel struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Provider        string `json:"provider"`
	ModelIdentifier string `json:"model_identifier"`
	Description     string `json:"description,omitempty"`

	InputCostPer1KTokens  float64 `json:"input_cost_per_1k_tokens"`
	OutputCostPer1KTokens float64 `json:"output_cost_per_1k_tokens"`
	RequestCost           float64 `json:"request_cost"`
	CostCalculationType   string  `json:"cost_calculation_type"`

	MaxTokens     *int64                 `json:"max_tokens"`
	ContextWindow *int64                 `json:"context_window"`
	Capabilities  map[string]interface{} `json:"capabilities,omitempty"`
	Endpoint      string                 `json:"endpoint,omitempty"`

	Status     string     `json:"status"`
	IsPublic   bool       `json:"is_public"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// Usable reports whether the model can serve requests right now.
func (m AIModel) Usable() bool {
	return m.Status == ModelStatusActive
}
