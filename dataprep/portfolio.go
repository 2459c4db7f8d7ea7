package dataprep

import "github.com/retentionlab/knapsack/knapsack"

// Justification is one retention project's full record plus the analytical
// rationale behind its cost/impact estimate, mirroring projects_data's dict
// shape from create_retention_projects (id, name, cost, impact, category,
// justification).
type Justification struct {
	ID            int64
	Name          string
	Cost          float64
	Impact        float64
	Category      string
	Justification string
}

type retentionProject struct {
	id            int64
	name          string
	cost          float64
	impact        float64
	category      string
	justification string
}

// fixedPortfolio is the same fifteen retention projects
// create_retention_projects hand-authors, derived from the EDA step's top
// attrition correlates (Job Satisfaction, Work-Life Balance, career
// development, recognition, compensation, and so on). The set is fixed, not
// computed from whatever table LoadEmployeeRecords happens to load.
var fixedPortfolio = []retentionProject{
	{1, "Job Satisfaction Improvement Program", 120.0, 25.0, "Engagement",
		"Job satisfaction is the single most correlated factor with attrition"},
	{2, "Work-Life Balance Initiative", 80.0, 18.0, "Wellbeing",
		"Work-life balance is the second most important factor"},
	{3, "Career Development Plan", 60.0, 15.0, "Development",
		"Lack of promotions correlates strongly with departures"},
	{4, "Recognition and Rewards Program", 50.0, 12.0, "Recognition",
		"Low performance ratings raise departure risk"},
	{5, "Competitive Salary Adjustment", 200.0, 20.0, "Compensation",
		"Monthly income has a moderate correlation with attrition"},
	{6, "Mentoring and Coaching Program", 40.0, 10.0, "Development",
		"Development support reduces turnover"},
	{7, "Flexible Hours and Remote Work", 30.0, 14.0, "Wellbeing",
		"Distance from home affects the decision to stay"},
	{8, "Technical Training and Upskilling", 70.0, 13.0, "Development",
		"Investment in skills increases engagement"},
	{9, "Workplace Environment Improvement", 90.0, 16.0, "Infrastructure",
		"Physical environment influences overall satisfaction"},
	{10, "Mental Health and Wellbeing Program", 55.0, 11.0, "Wellbeing",
		"Mental health is a critical retention factor"},
	{11, "Continuous Feedback System", 35.0, 9.0, "Communication",
		"Clear communication reduces dissatisfaction"},
	{12, "Diversity and Inclusion Program", 65.0, 12.0, "Culture",
		"An inclusive environment increases belonging"},
	{13, "Personalized Flexible Benefits", 100.0, 17.0, "Benefits",
		"Customized benefits meet individual needs"},
	{14, "New Hire Onboarding Program", 45.0, 10.0, "Onboarding",
		"New employees have the highest turnover rate"},
	{15, "Team Building and Culture Initiative", 40.0, 8.0, "Culture",
		"A sense of community increases retention"},
}

// FixedRetentionPortfolio returns the fifteen retention projects as
// knapsack.Item values, ready to build a knapsack.Instance from. Cost is
// expressed in the same units as the original (R$ thousands) and impact is
// the estimated percentage-point reduction in attrition; Efficiency is
// derived by knapsack.NewItem.
func FixedRetentionPortfolio() []knapsack.Item {
	items := make([]knapsack.Item, 0, len(fixedPortfolio))
	for _, p := range fixedPortfolio {
		items = append(items, knapsack.NewItem(p.id, p.name, p.cost, p.impact, p.category))
	}

	return items
}

// RetentionJustifications returns the full project record plus justification
// text for each project in FixedRetentionPortfolio, in the same id order.
func RetentionJustifications() []Justification {
	out := make([]Justification, 0, len(fixedPortfolio))
	for _, p := range fixedPortfolio {
		out = append(out, Justification{
			ID:            p.id,
			Name:          p.name,
			Cost:          p.cost,
			Impact:        p.impact,
			Category:      p.category,
			Justification: p.justification,
		})
	}

	return out
}
