package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeUnknownCalculation   = "UNKNOWN_CALCULATION"
	CodeInvalidProperties    = "INVALID_PROPERTIES"
	CodeInvalidTaxableIncome = "INVALID_TAXABLE_INCOME"
	CodeInputClamped         = "INPUT_CLAMPED"
	CodeEstimateNotConverged = "ESTIMATE_NOT_CONVERGED"
	CodeSchemeFallback       = "SCHEME_FALLBACK"
)
