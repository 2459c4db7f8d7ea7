package attrition

// Features is the attrition-risk input vector, mirroring the field shape of
// the original API's EmployeeInput model (src/api/main.py) restricted to
// the columns dataprep.EmployeeRecord actually carries.
type Features struct {
	Age               float64
	MonthlyIncome     float64
	YearsAtCompany    float64
	DistanceFromHome  float64
	JobSatisfaction   float64
	WorkLifeBalance   float64
	PerformanceRating float64
}

// RiskThresholds are the probability cutoffs the original config.py defines
// for labeling a predicted probability as high/medium/low risk.
var RiskThresholds = struct {
	High   float64
	Medium float64
}{High: 0.7, Medium: 0.4}

// RiskLevel classifies probability (0..1) into "high", "medium", or "low",
// using the same cutoffs as RISK_THRESHOLDS.
func RiskLevel(probability float64) string {
	switch {
	case probability >= RiskThresholds.High:
		return "high"
	case probability >= RiskThresholds.Medium:
		return "medium"
	default:
		return "low"
	}
}
