package calculations

import (
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/schemeregistry"
)

type taxProps struct {
	TaxableIncome int64 `json:"taxable_income"`
}

type TaxHandler struct{}

func (h *TaxHandler) Validate(_ *schemeregistry.Scheme, calc *model.Calculation) []model.CalculationMessage {
	var props taxProps
	if msg := decodeProps(calc, &props); msg != nil {
		return []model.CalculationMessage{*msg}
	}
	if props.TaxableIncome < 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidTaxableIncome,
			Message: payroll.ErrNegativeIncome.Error(),
		}}
	}
	return nil
}

func (h *TaxHandler) Apply(scheme *schemeregistry.Scheme, calc *model.Calculation) (*model.Output, []model.CalculationMessage) {
	var props taxProps
	decodeProps(calc, &props)

	tax, err := scheme.Calculator.Schedule().Tax(payroll.Money(props.TaxableIncome))
	if err != nil {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidTaxableIncome,
			Message: err.Error(),
		}}
	}
	return &model.Output{Tax: &model.Tax{
		TaxableIncome:     props.TaxableIncome,
		PersonalIncomeTax: int64(tax),
	}}, nil
}
