package calculations

import (
	"payroll-engine/internal/model"
	"payroll-engine/internal/schemeregistry"
)

// CalculationHandler defines the contract for all calculation implementations.
// Validate reports problems with the instruction before anything is computed;
// Apply runs the computation against the resolved scheme.
type CalculationHandler interface {
	Validate(scheme *schemeregistry.Scheme, calc *model.Calculation) []model.CalculationMessage
	Apply(scheme *schemeregistry.Scheme, calc *model.Calculation) (*model.Output, []model.CalculationMessage)
}
