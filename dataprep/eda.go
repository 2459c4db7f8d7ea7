package dataprep

import (
	"fmt"
	"math"
)

// EDAResult is the exploratory-analysis summary ComputeEDA produces,
// equivalent in content to perform_eda's eda_results dict but typed instead
// of a loose mapping.
type EDAResult struct {
	// AttritionRate is the fraction (0..1) of records with Attrition == true.
	AttritionRate float64

	// CategoryAttritionRates maps a categorical feature name to, for each
	// observed value of that feature, the fraction of records with that
	// value that attrited. Mirrors the "taxa de rotatividade por categoria"
	// breakdown over JobSatisfaction, WorkLifeBalance, PerformanceRating and
	// JobRole.
	CategoryAttritionRates map[string]map[string]float64

	// Correlations maps each numeric column to its Pearson correlation
	// coefficient against the Attrition flag (0/1).
	Correlations map[string]float64
}

// numericColumn names a numeric field of EmployeeRecord together with an
// accessor, so ComputeEDA can iterate columns without repeating accessor
// boilerplate per column.
type numericColumn struct {
	name string
	get  func(EmployeeRecord) float64
}

var numericColumns = []numericColumn{
	{"Age", func(r EmployeeRecord) float64 { return deref(r.Age) }},
	{"MonthlyIncome", func(r EmployeeRecord) float64 { return deref(r.MonthlyIncome) }},
	{"YearsAtCompany", func(r EmployeeRecord) float64 { return deref(r.YearsAtCompany) }},
	{"DistanceFromHome", func(r EmployeeRecord) float64 { return deref(r.DistanceFromHome) }},
	{"JobSatisfaction", func(r EmployeeRecord) float64 { return deref(r.JobSatisfaction) }},
	{"WorkLifeBalance", func(r EmployeeRecord) float64 { return deref(r.WorkLifeBalance) }},
	{"PerformanceRating", func(r EmployeeRecord) float64 { return deref(r.PerformanceRating) }},
}

// categoricalFeatures lists the columns perform_eda breaks attrition rate
// down by. The three numeric ones are ordinal scales (1-4 or similar), so
// their distinct values double as categories here exactly as groupby does
// in pandas.
var categoricalFeatures = []string{"JobSatisfaction", "WorkLifeBalance", "PerformanceRating", "JobRole"}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ComputeEDA runs the exploratory analysis perform_eda performs: overall
// attrition rate, per-category attrition rate for the four risk features,
// and Pearson correlation of every numeric column against Attrition.
func ComputeEDA(ds CleanedDataset) EDAResult {
	records := ds.Records
	result := EDAResult{
		CategoryAttritionRates: make(map[string]map[string]float64, len(categoricalFeatures)),
		Correlations:           make(map[string]float64, len(numericColumns)),
	}

	if len(records) == 0 {
		return result
	}

	attrited := 0
	for _, r := range records {
		if r.Attrition {
			attrited++
		}
	}
	result.AttritionRate = float64(attrited) / float64(len(records))

	for _, feature := range categoricalFeatures {
		result.CategoryAttritionRates[feature] = categoryRates(records, feature)
	}

	attritionFlag := make([]float64, len(records))
	for i, r := range records {
		if r.Attrition {
			attritionFlag[i] = 1
		}
	}
	for _, col := range numericColumns {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = col.get(r)
		}
		result.Correlations[col.name] = pearson(values, attritionFlag)
	}

	return result
}

func categoryRates(records []EmployeeRecord, feature string) map[string]float64 {
	total := make(map[string]int)
	attrited := make(map[string]int)

	key := func(r EmployeeRecord) string {
		switch feature {
		case "JobSatisfaction":
			return fmt.Sprintf("%g", deref(r.JobSatisfaction))
		case "WorkLifeBalance":
			return fmt.Sprintf("%g", deref(r.WorkLifeBalance))
		case "PerformanceRating":
			return fmt.Sprintf("%g", deref(r.PerformanceRating))
		default:
			return r.JobRole
		}
	}

	for _, r := range records {
		k := key(r)
		total[k]++
		if r.Attrition {
			attrited[k]++
		}
	}

	rates := make(map[string]float64, len(total))
	for k, n := range total {
		rates[k] = float64(attrited[k]) / float64(n)
	}

	return rates
}

// pearson computes the Pearson correlation coefficient between x and y.
// Returns 0 if either series has zero variance (undefined correlation,
// avoided rather than propagated as NaN).
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}

	return cov / denom
}
