package calculations

import (
	"fmt"

	"payroll-engine/internal/metrics"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/schemeregistry"
)

// MaxIterationsCeiling bounds the per-request max_iterations so a single
// estimate cannot run unbounded.
const MaxIterationsCeiling = 1000

type grossEstimateProps struct {
	TargetNetSalary int64  `json:"target_net_salary"`
	Dependents      int    `json:"dependents"`
	MaxIterations   int    `json:"max_iterations,omitempty"`
	Tolerance       int64  `json:"tolerance,omitempty"`
	Method          string `json:"method,omitempty"`
}

type GrossEstimateHandler struct{}

func (h *GrossEstimateHandler) Validate(_ *schemeregistry.Scheme, calc *model.Calculation) []model.CalculationMessage {
	var props grossEstimateProps
	if msg := decodeProps(calc, &props); msg != nil {
		return []model.CalculationMessage{*msg}
	}
	if _, ok := payroll.ParseMethod(props.Method); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidProperties,
			Message: fmt.Sprintf("Unknown estimation method %q", props.Method),
		}}
	}
	if props.MaxIterations < 0 || props.Tolerance < 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidProperties,
			Message: "max_iterations and tolerance must be non-negative",
		}}
	}
	return nil
}

func (h *GrossEstimateHandler) Apply(scheme *schemeregistry.Scheme, calc *model.Calculation) (*model.Output, []model.CalculationMessage) {
	var props grossEstimateProps
	decodeProps(calc, &props)
	method, _ := payroll.ParseMethod(props.Method)

	var msgs []model.CalculationMessage
	if props.MaxIterations > MaxIterationsCeiling {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeInputClamped,
			Message: fmt.Sprintf("max_iterations %d clamped to %d", props.MaxIterations, MaxIterationsCeiling),
		})
		props.MaxIterations = MaxIterationsCeiling
	}

	est := scheme.Calculator.EstimateGross(
		payroll.Money(props.TargetNetSalary),
		props.Dependents,
		payroll.WithMethod(method),
		payroll.WithMaxIterations(props.MaxIterations),
		payroll.WithTolerance(payroll.Money(props.Tolerance)),
	)
	metrics.EstimatorIterations.WithLabelValues(est.Method.String()).Observe(float64(est.Iterations))

	msgs = append(msgs, clampMessages(est.Clamped)...)
	if !est.Converged {
		metrics.EstimatorNotConverged.WithLabelValues(est.Method.String()).Inc()
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeEstimateNotConverged,
			Message: fmt.Sprintf("Estimate is approximate: net %d after %d iterations, target %d", est.Net, est.Iterations, est.TargetNet),
		})
	}

	b := scheme.Calculator.ComputeNet(est.Gross, max(0, props.Dependents))
	return &model.Output{GrossEstimate: &model.GrossEstimate{
		TargetNetSalary:    int64(est.TargetNet),
		EstimatedGross:     int64(est.Gross),
		Iterations:         est.Iterations,
		Converged:          est.Converged,
		Method:             est.Method.String(),
		ResultingBreakdown: model.NewNetSalary(b),
	}}, msgs
}
