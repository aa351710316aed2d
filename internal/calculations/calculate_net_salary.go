package calculations

import (
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/schemeregistry"
)

type netSalaryProps struct {
	GrossSalary int64 `json:"gross_salary"`
	Dependents  int   `json:"dependents"`
}

type NetSalaryHandler struct{}

func (h *NetSalaryHandler) Validate(_ *schemeregistry.Scheme, calc *model.Calculation) []model.CalculationMessage {
	var props netSalaryProps
	if msg := decodeProps(calc, &props); msg != nil {
		return []model.CalculationMessage{*msg}
	}
	return nil
}

func (h *NetSalaryHandler) Apply(scheme *schemeregistry.Scheme, calc *model.Calculation) (*model.Output, []model.CalculationMessage) {
	var props netSalaryProps
	decodeProps(calc, &props)

	b := scheme.Calculator.ComputeNet(payroll.Money(props.GrossSalary), props.Dependents)
	return &model.Output{NetSalary: model.NewNetSalary(b)}, clampMessages(b.Clamped)
}
