package state

import (
	"fmt"
	"strings"

	"fitcoach/client/internal/domain"
)

// ValidationError is a field-level rejection raised before any network call.
// The backend re-validates the same rules authoritatively.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validatePlanName rejects a plan name already present among the trainee's plans.
func validatePlanName(name string, existing []domain.Plan) error {
	for _, plan := range existing {
		if strings.EqualFold(plan.Name, name) {
			return &ValidationError{Field: "name", Message: "A plan with this name already exists."}
		}
	}
	return nil
}

// validateDetailOrder rejects an orderInPlan already taken by a sibling detail.
// excludeID skips the detail being updated; pass 0 for creations.
func validateDetailOrder(order int, details []domain.PlanDetail, excludeID int64) error {
	for _, detail := range details {
		if detail.OrderInPlan == order && detail.ID != excludeID {
			return &ValidationError{Field: "orderInPlan", Message: "Exercise order is already taken"}
		}
	}
	return nil
}

// validateDetailExercise rejects adding an exercise already present in the plan.
func validateDetailExercise(exerciseName string, details []domain.PlanDetail) error {
	for _, detail := range details {
		if detail.ExerciseName == exerciseName {
			return &ValidationError{Field: "exerciseName", Message: "The exercise already exists in the plan"}
		}
	}
	return nil
}

// validateMeal rejects a meal whose name or order collides with a sibling.
func validateMeal(name string, order int, meals []domain.Meal) error {
	for _, meal := range meals {
		if strings.EqualFold(meal.Name, name) {
			return &ValidationError{Field: "name", Message: "A meal with this name already exists"}
		}
		if meal.Order == order {
			return &ValidationError{Field: "order", Message: "A meal with this order already exists"}
		}
	}
	return nil
}

// findExerciseID resolves an exercise name against the reference catalog.
func findExerciseID(name string, catalog []domain.Exercise) (int64, error) {
	for _, exercise := range catalog {
		if exercise.Name == name {
			return exercise.ID, nil
		}
	}
	return 0, &ValidationError{Field: "exerciseName", Message: "Exercise was not found"}
}

// validateExerciseName rejects a duplicate name in the shared exercise catalog.
func validateExerciseName(name string, catalog []domain.Exercise) error {
	for _, exercise := range catalog {
		if strings.EqualFold(exercise.Name, name) {
			return &ValidationError{Field: "name", Message: fmt.Sprintf("An exercise named %q already exists", exercise.Name)}
		}
	}
	return nil
}
