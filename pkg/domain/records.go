package domain

// FundingStage is the coarse company maturity bucket reported by research.
type FundingStage string

const (
	StageSeed    FundingStage = "Seed"
	StageSeriesA FundingStage = "Series A"
	StageSeriesB FundingStage = "Series B"
	StagePublic  FundingStage = "Public"
)

// Tier buckets a lead by score: A >= 12, B >= 6, C below.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// ValidationStatus records which branch of the outreach repair machine
// produced the final email.
type ValidationStatus string

const (
	StatusValid    ValidationStatus = "valid"
	StatusRepaired ValidationStatus = "repaired"
	StatusFallback ValidationStatus = "fallback"
)

// ResearchRecord is the fixed schema returned by a research provider.
// Summary is always scrubbed of email/phone-like tokens before it leaves
// the provider. Funding and Website are only set by enrichment.
type ResearchRecord struct {
	CompanyName      string       `json:"company_name" mapstructure:"company_name"`
	Industry         string       `json:"industry" mapstructure:"industry"`
	Stage            FundingStage `json:"stage" mapstructure:"stage"`
	EmployeeCountEst int          `json:"employee_count_est" mapstructure:"employee_count_est"`
	Summary          string       `json:"summary" mapstructure:"summary"`
	LeadSummary      string       `json:"lead_summary,omitempty" mapstructure:"lead_summary,omitempty"`
	Funding          string       `json:"funding,omitempty" mapstructure:"funding,omitempty"`
	Website          string       `json:"website,omitempty" mapstructure:"website,omitempty"`
}

// ScoreRecord is the output of lead scoring.
// Score = round(employee_count/100 + intent*3, 2).
type ScoreRecord struct {
	CompanyName string  `json:"company_name" mapstructure:"company_name"`
	Score       float64 `json:"score" mapstructure:"score"`
	Tier        Tier    `json:"tier" mapstructure:"tier"`
}

// OutreachRecord is the final outreach email plus provenance.
type OutreachRecord struct {
	Email            string           `json:"email" mapstructure:"email"`
	Tier             Tier             `json:"tier" mapstructure:"tier"`
	ValidationStatus ValidationStatus `json:"validation_status" mapstructure:"validation_status"`
	ScoreExplanation string           `json:"score_explanation,omitempty" mapstructure:"score_explanation,omitempty"`
}
