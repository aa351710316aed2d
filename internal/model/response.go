package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage   `json:"messages"`
	Calculations []ProcessedCalculation `json:"calculations"`
}

type ProcessedCalculation struct {
	Calculation               Calculation `json:"calculation"`
	SchemeID                  string      `json:"scheme_id,omitempty"`
	CalculationMessageIndexes []int       `json:"calculation_message_indexes,omitempty"`
	Output                    *Output     `json:"output,omitempty"`
}

// Output holds whichever result the calculation produced.
type Output struct {
	NetSalary     *NetSalary     `json:"net_salary,omitempty"`
	GrossEstimate *GrossEstimate `json:"gross_estimate,omitempty"`
	Tax           *Tax           `json:"tax,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
