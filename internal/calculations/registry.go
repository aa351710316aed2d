package calculations

var registry = map[string]CalculationHandler{
	"calculate_net_salary":  &NetSalaryHandler{},
	"estimate_gross_salary": &GrossEstimateHandler{},
	"calculate_tax":         &TaxHandler{},
}

func Get(name string) (CalculationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
