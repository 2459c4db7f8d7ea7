package attrition

import "math"

// Predictor estimates attrition risk for one employee. It is the interface
// the httpapi and cmd layers depend on, so a real trained model can replace
// WeightedScorePredictor without touching any caller.
type Predictor interface {
	Predict(f Features) (probability float64, riskLevel string)
}

// featureValue reads the named feature out of f; unknown names read as 0.
func featureValue(f Features, name string) float64 {
	switch name {
	case "Age":
		return f.Age
	case "MonthlyIncome":
		return f.MonthlyIncome
	case "YearsAtCompany":
		return f.YearsAtCompany
	case "DistanceFromHome":
		return f.DistanceFromHome
	case "JobSatisfaction":
		return f.JobSatisfaction
	case "WorkLifeBalance":
		return f.WorkLifeBalance
	case "PerformanceRating":
		return f.PerformanceRating
	default:
		return 0
	}
}

// WeightedScorePredictor is a deterministic stand-in for the trained
// classifier: it scores an employee as a weighted sum of normalized feature
// values and squashes the result through a logistic function. The weights
// are the EDA step's correlation coefficients (dataprep.ComputeEDA's
// Correlations), so a feature that correlates positively with attrition
// pulls the score up and one that correlates negatively pulls it down.
type WeightedScorePredictor struct {
	weights map[string]float64
	scale   map[string]float64
}

// NewWeightedScorePredictor builds a predictor from per-feature weights
// (typically dataprep.ComputeEDA(...).Correlations) and per-feature scale
// factors used to keep each feature's contribution in a comparable range
// (typically the column's standard deviation, or 1 to skip normalization).
func NewWeightedScorePredictor(weights, scale map[string]float64) *WeightedScorePredictor {
	return &WeightedScorePredictor{weights: weights, scale: scale}
}

// Predict scores f and returns the resulting probability and risk label.
func (p *WeightedScorePredictor) Predict(f Features) (float64, string) {
	var score float64
	for name, w := range p.weights {
		v := featureValue(f, name)
		if s, ok := p.scale[name]; ok && s != 0 {
			v /= s
		}
		score += w * v
	}

	probability := sigmoid(score)

	return probability, RiskLevel(probability)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
