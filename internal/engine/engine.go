package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"payroll-engine/internal/calculations"
	"payroll-engine/internal/metrics"
	"payroll-engine/internal/model"
	"payroll-engine/internal/schemeregistry"
)

var log = logrus.WithField("module", "engine")

type Engine struct {
	schemes *schemeregistry.Registry
}

func New(schemes *schemeregistry.Registry) *Engine {
	return &Engine{schemes: schemes}
}

// Process runs every calculation in the request. Calculations do not
// depend on each other, so a CRITICAL message fails that calculation and
// the batch outcome but the rest still run.
func (e *Engine) Process(ctx context.Context, req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	calcs := req.CalculationInstructions.Calculations
	schemeIDs := lo.Uniq(lo.Map(calcs, func(c model.Calculation, _ int) string {
		return schemeIDFor(req, &c)
	}))
	schemes := e.schemes.Resolve(ctx, schemeIDs)

	var allMessages []model.CalculationMessage
	processed := make([]model.ProcessedCalculation, 0, len(calcs))
	outcome := model.OutcomeSuccess

	appendMsgs := func(indexes []int, msgs []model.CalculationMessage) ([]int, bool) {
		critical := false
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				critical = true
			}
		}
		return indexes, critical
	}

	for i := range calcs {
		calc := calcs[i]
		entry := model.ProcessedCalculation{Calculation: calc}

		handler, ok := calculations.Get(calc.CalculationDefinitionName)
		if !ok {
			entry.CalculationMessageIndexes, _ = appendMsgs(nil, []model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownCalculation,
				Message: fmt.Sprintf("Unknown calculation: %s", calc.CalculationDefinitionName),
			}})
			processed = append(processed, entry)
			outcome = model.OutcomeFailure
			metrics.CalculationsTotal.WithLabelValues("unknown", model.OutcomeFailure).Inc()
			continue
		}

		res := schemes[schemeIDFor(req, &calc)]
		entry.SchemeID = res.Scheme.ID

		var indexes []int
		if res.Fallback {
			indexes, _ = appendMsgs(indexes, []model.CalculationMessage{{
				Level:   model.LevelWarning,
				Code:    model.CodeSchemeFallback,
				Message: fmt.Sprintf("Scheme %s unavailable, used %s", schemeIDFor(req, &calc), res.Scheme.ID),
			}})
		}

		indexes, critical := appendMsgs(indexes, handler.Validate(res.Scheme, &calc))
		if !critical {
			var out *model.Output
			var msgs []model.CalculationMessage
			out, msgs = handler.Apply(res.Scheme, &calc)
			indexes, critical = appendMsgs(indexes, msgs)
			if !critical {
				entry.Output = out
			}
		}
		entry.CalculationMessageIndexes = indexes
		processed = append(processed, entry)

		calcOutcome := model.OutcomeSuccess
		if critical {
			calcOutcome = model.OutcomeFailure
			outcome = model.OutcomeFailure
		}
		metrics.CalculationsTotal.WithLabelValues(calc.CalculationDefinitionName, calcOutcome).Inc()
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	metrics.RequestDuration.Observe(elapsed.Seconds())

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	log.WithFields(logrus.Fields{
		"tenant_id":    req.TenantID,
		"calculations": len(calcs),
		"outcome":      outcome,
		"duration":     elapsed,
	}).Debug("calculation request processed")

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Calculations: processed,
		},
	}
}

func schemeIDFor(req *model.CalculationRequest, calc *model.Calculation) string {
	if calc.SchemeID != "" {
		return calc.SchemeID
	}
	return req.SchemeID
}
