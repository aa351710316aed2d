package model

import "payroll-engine/internal/payroll"

// Deductions mirrors the payslip deduction block. Personal and dependent
// deductions reduce taxable income only.
type Deductions struct {
	SocialInsurance       int64 `json:"social_insurance"`
	HealthInsurance       int64 `json:"health_insurance"`
	UnemploymentInsurance int64 `json:"unemployment_insurance"`
	PersonalIncomeTax     int64 `json:"personal_income_tax"`
	PersonalDeduction     int64 `json:"personal_deduction"`
	DependentDeduction    int64 `json:"dependent_deduction"`
}

type NetSalary struct {
	GrossSalary   int64      `json:"gross_salary"`
	Dependents    int        `json:"dependents"`
	NetSalary     int64      `json:"net_salary"`
	TaxableIncome int64      `json:"taxable_income"`
	Deductions    Deductions `json:"deductions"`
}

type GrossEstimate struct {
	TargetNetSalary    int64      `json:"target_net_salary"`
	EstimatedGross     int64      `json:"estimated_gross_salary"`
	Iterations         int        `json:"iterations"`
	Converged          bool       `json:"converged"`
	Method             string     `json:"method"`
	ResultingBreakdown *NetSalary `json:"resulting_breakdown"`
}

type Tax struct {
	TaxableIncome     int64 `json:"taxable_income"`
	PersonalIncomeTax int64 `json:"personal_income_tax"`
}

func NewNetSalary(b payroll.Breakdown) *NetSalary {
	return &NetSalary{
		GrossSalary:   int64(b.GrossSalary),
		Dependents:    b.Dependents,
		NetSalary:     int64(b.NetSalary),
		TaxableIncome: int64(b.TaxableIncome),
		Deductions: Deductions{
			SocialInsurance:       int64(b.SocialInsurance),
			HealthInsurance:       int64(b.HealthInsurance),
			UnemploymentInsurance: int64(b.UnemploymentInsurance),
			PersonalIncomeTax:     int64(b.Tax),
			PersonalDeduction:     int64(b.PersonalRelief),
			DependentDeduction:    int64(b.DependentRelief),
		},
	}
}
