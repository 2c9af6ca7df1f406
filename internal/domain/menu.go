package domain

// Menu is a meal plan assigned to exactly one trainee.
type Menu struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Meals    []Meal `json:"meals"`
}

// Meal is one entry in a menu. Order is unique within the parent menu.
// Macro points express portions: one point is 100 grams of the macronutrient.
type Meal struct {
	ID            int64  `json:"id"`
	Order         int    `json:"order"`
	Name          string `json:"name"`
	ProteinPoints int    `json:"proteinPoints"`
	CarbsPoints   int    `json:"carbsPoints"`
	FatsPoints    int    `json:"fatsPoints"`
	IsCompleted   bool   `json:"isCompleted"`
}

// AllCompleted reports whether every meal in the menu has been checked off.
// An empty menu is not considered completed.
func (m *Menu) AllCompleted() bool {
	if len(m.Meals) == 0 {
		return false
	}
	for _, meal := range m.Meals {
		if !meal.IsCompleted {
			return false
		}
	}
	return true
}
