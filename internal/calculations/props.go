package calculations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

func decodeProps(calc *model.Calculation, v any) *model.CalculationMessage {
	if len(calc.CalculationProperties) == 0 {
		return &model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidProperties,
			Message: "calculation_properties is required",
		}
	}
	if err := json.Unmarshal(calc.CalculationProperties, v); err != nil {
		return &model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidProperties,
			Message: "Invalid calculation_properties: " + err.Error(),
		}
	}
	return nil
}

func clampMessages(clamps []payroll.Clamp) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	for _, c := range clamps {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeInputClamped,
			Message: fmt.Sprintf("%s %d clamped to 0", c.Field, c.Original),
		})
	}
	return msgs
}
