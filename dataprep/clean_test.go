package dataprep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retentionlab/knapsack/dataprep"
)

func f64(v float64) *float64 { return &v }

func TestCleanRecords_RemovesExactDuplicates(t *testing.T) {
	rec := dataprep.EmployeeRecord{
		Age: f64(30), MonthlyIncome: f64(5000), YearsAtCompany: f64(4),
		DistanceFromHome: f64(10), JobSatisfaction: f64(3), WorkLifeBalance: f64(2),
		PerformanceRating: f64(4), JobRole: "Engineer", Attrition: false,
	}
	records := []dataprep.EmployeeRecord{rec, rec, rec}

	cleaned, report := dataprep.CleanRecords(records)

	assert.Len(t, cleaned.Records, 1)
	assert.Equal(t, 2, report.DuplicatesRemoved)
	assert.Equal(t, 3, report.InitialRows)
	assert.Equal(t, 1, report.FinalRows)
}

func TestCleanRecords_FillsMissingNumericWithMedian(t *testing.T) {
	records := []dataprep.EmployeeRecord{
		{Age: f64(20), MonthlyIncome: f64(1000), YearsAtCompany: f64(1), DistanceFromHome: f64(1),
			JobSatisfaction: f64(1), WorkLifeBalance: f64(1), PerformanceRating: f64(1), JobRole: "A"},
		{Age: f64(40), MonthlyIncome: f64(2000), YearsAtCompany: f64(2), DistanceFromHome: f64(2),
			JobSatisfaction: f64(2), WorkLifeBalance: f64(2), PerformanceRating: f64(2), JobRole: "A"},
		{Age: nil, MonthlyIncome: f64(3000), YearsAtCompany: f64(3), DistanceFromHome: f64(3),
			JobSatisfaction: f64(3), WorkLifeBalance: f64(3), PerformanceRating: f64(3), JobRole: "B"},
	}

	cleaned, report := dataprep.CleanRecords(records)

	require.NotNil(t, cleaned.Records[2].Age)
	// Median of {20, 40} (the non-nil ages) is 30.
	assert.Equal(t, 30.0, *cleaned.Records[2].Age)
	assert.Equal(t, 1, report.Imputed["Age"])
}

func TestCleanRecords_FillsMissingJobRoleWithMode(t *testing.T) {
	records := []dataprep.EmployeeRecord{
		{Age: f64(1), MonthlyIncome: f64(1), YearsAtCompany: f64(1), DistanceFromHome: f64(1),
			JobSatisfaction: f64(1), WorkLifeBalance: f64(1), PerformanceRating: f64(1), JobRole: "Engineer"},
		{Age: f64(2), MonthlyIncome: f64(1), YearsAtCompany: f64(1), DistanceFromHome: f64(1),
			JobSatisfaction: f64(1), WorkLifeBalance: f64(1), PerformanceRating: f64(1), JobRole: "Engineer"},
		{Age: f64(3), MonthlyIncome: f64(1), YearsAtCompany: f64(1), DistanceFromHome: f64(1),
			JobSatisfaction: f64(1), WorkLifeBalance: f64(1), PerformanceRating: f64(1), JobRole: ""},
	}

	cleaned, report := dataprep.CleanRecords(records)

	assert.Equal(t, "Engineer", cleaned.Records[2].JobRole)
	assert.Equal(t, 1, report.Imputed["JobRole"])
}
