package synth

import (
	"math/rand/v2"

	"github.com/retentionlab/knapsack/dataprep"
)

var jobRoles = []string{"Engineer", "Manager", "Sales", "Analyst", "Support"}

// Generate produces n synthetic EmployeeRecord rows. The generator is seeded
// deterministically: the same n and seed always produce byte-identical
// output, so tests and demo runs never depend on an external dataset.
func Generate(n int, seed uint64) []dataprep.EmployeeRecord {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	records := make([]dataprep.EmployeeRecord, 0, n)
	for i := 0; i < n; i++ {
		satisfaction := float64(1 + rng.IntN(4))
		balance := float64(1 + rng.IntN(4))
		performance := float64(1 + rng.IntN(4))
		distance := float64(1 + rng.IntN(40))
		years := float64(rng.IntN(20))
		age := float64(22 + rng.IntN(40))
		income := float64(2000 + rng.IntN(10000))
		role := jobRoles[rng.IntN(len(jobRoles))]

		// Attrition risk rises with low satisfaction/balance and long
		// commutes; drawn as a weighted coin flip so the synthetic table
		// carries the same directional correlations the real dataset does.
		riskScore := (5-satisfaction)/4 + (5-balance)/4 + distance/40
		attrition := rng.Float64() < riskScore/3

		records = append(records, dataprep.EmployeeRecord{
			Age:               &age,
			MonthlyIncome:     &income,
			YearsAtCompany:    &years,
			DistanceFromHome:  &distance,
			JobSatisfaction:   &satisfaction,
			WorkLifeBalance:   &balance,
			PerformanceRating: &performance,
			JobRole:           role,
			Attrition:         attrition,
		})
	}

	return records
}
