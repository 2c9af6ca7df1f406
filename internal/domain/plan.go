package domain

import "sort"

// Plan is a workout plan assigned to exactly one trainee.
type Plan struct {
	ID          int64        `json:"id"`
	UserName    string       `json:"userName"`
	Name        string       `json:"name"`
	IsCompleted bool         `json:"isCompleted"`
	PlanDetails []PlanDetail `json:"planDetails"`
}

// PlanDetail is one exercise occurrence within a plan. OrderInPlan is unique
// within the parent plan; the weight pair tracks progress between sessions.
type PlanDetail struct {
	ID             int64   `json:"id"`
	OrderInPlan    int     `json:"orderInPlan"`
	ExerciseName   string  `json:"exerciseName"`
	Reps           int     `json:"reps"`
	Sets           int     `json:"sets"`
	CurrentWeight  float64 `json:"currentWeight"`
	PreviousWeight float64 `json:"previousWeight"`
}

// SortDetails orders the plan's details by their position in the plan.
func (p *Plan) SortDetails() {
	sort.Slice(p.PlanDetails, func(i, j int) bool {
		return p.PlanDetails[i].OrderInPlan < p.PlanDetails[j].OrderInPlan
	})
}
