package domain

// Plan is a subscription tier.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// PlanLimits are the per-tier limits applied by handlers.
type PlanLimits struct {
	MaxPageSize   int  `yaml:"max_page_size" json:"max_page_size"`
	MaxExportRows int  `yaml:"max_export_rows" json:"max_export_rows"`
	AIInsights    bool `yaml:"ai_insights" json:"ai_insights"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	OrgID  string `json:"org_id"`
	Plan   Plan   `json:"plan"`
}
