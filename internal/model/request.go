package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	SchemeID                string                  `json:"scheme_id,omitempty"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	Calculations []Calculation `json:"calculations"`
}

// Calculation is one named instruction. SchemeID overrides the
// request-level scheme for this instruction only.
type Calculation struct {
	CalculationID             string          `json:"calculation_id"`
	CalculationDefinitionName string          `json:"calculation_definition_name"`
	SchemeID                  string          `json:"scheme_id,omitempty"`
	CalculationProperties     json.RawMessage `json:"calculation_properties"`
}
