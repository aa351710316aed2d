package schemeregistry

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"payroll-engine/internal/payroll"
)

//go:embed default_scheme.yaml
var defaultSchemeYAML []byte

// Scheme is a named, validated payroll configuration.
type Scheme struct {
	ID         string
	Calculator *payroll.Calculator
}

// Document is the on-disk and on-the-wire form of a scheme.
type Document struct {
	SchemeID  string            `json:"scheme_id" yaml:"scheme_id"`
	Insurance InsuranceDocument `json:"insurance" yaml:"insurance"`
	Relief    ReliefDocument    `json:"relief" yaml:"relief"`
	Brackets  []BracketDocument `json:"brackets" yaml:"brackets"`
}

type InsuranceDocument struct {
	Social       decimal.Decimal `json:"social" yaml:"social"`
	Health       decimal.Decimal `json:"health" yaml:"health"`
	Unemployment decimal.Decimal `json:"unemployment" yaml:"unemployment"`
}

type ReliefDocument struct {
	Personal  int64 `json:"personal" yaml:"personal"`
	Dependent int64 `json:"dependent" yaml:"dependent"`
}

// BracketDocument uses a null upper bound for the open top bracket.
type BracketDocument struct {
	LowerBound int64           `json:"lower_bound" yaml:"lower_bound"`
	UpperBound *int64          `json:"upper_bound" yaml:"upper_bound"`
	Rate       decimal.Decimal `json:"rate" yaml:"rate"`
}

// Build validates the document and returns a ready scheme.
func (d Document) Build() (*Scheme, error) {
	if d.SchemeID == "" {
		return nil, fmt.Errorf("scheme_id is required")
	}
	brackets := make([]payroll.Bracket, len(d.Brackets))
	for i, b := range d.Brackets {
		upper := payroll.Unbounded
		if b.UpperBound != nil {
			upper = payroll.Money(*b.UpperBound)
		}
		brackets[i] = payroll.Bracket{
			LowerBound: payroll.Money(b.LowerBound),
			UpperBound: upper,
			Rate:       b.Rate,
		}
	}
	schedule, err := payroll.NewSchedule(brackets)
	if err != nil {
		return nil, fmt.Errorf("scheme %s: %w", d.SchemeID, err)
	}
	calc, err := payroll.NewCalculator(payroll.Rates{
		SocialInsurance:       d.Insurance.Social,
		HealthInsurance:       d.Insurance.Health,
		UnemploymentInsurance: d.Insurance.Unemployment,
		PersonalRelief:        payroll.Money(d.Relief.Personal),
		DependentRelief:       payroll.Money(d.Relief.Dependent),
	}, schedule)
	if err != nil {
		return nil, fmt.Errorf("scheme %s: %w", d.SchemeID, err)
	}
	return &Scheme{ID: d.SchemeID, Calculator: calc}, nil
}

// ParseYAML decodes and builds a scheme. Unknown keys are rejected.
func ParseYAML(data []byte) (*Scheme, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scheme yaml: %w", err)
	}
	return doc.Build()
}

func ParseJSON(data []byte) (*Scheme, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scheme json: %w", err)
	}
	return doc.Build()
}

// LoadFile reads a YAML scheme from path.
func LoadFile(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scheme file: %w", err)
	}
	return ParseYAML(data)
}

// Default returns the built-in scheme.
func Default() *Scheme {
	s, err := ParseYAML(defaultSchemeYAML)
	if err != nil {
		panic("schemeregistry: embedded default scheme: " + err.Error())
	}
	return s
}
