package domain

// Exercise is shared reference data, mutable only by admin sessions.
// An exercise belongs to one muscle group by name and may carry a
// demonstration video reference.
type Exercise struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MuscleGroupName string `json:"muscleGroupName"`
	VideoURL        string `json:"videoUrl,omitempty"`
}

// MuscleGroup groups exercises by the muscle they target.
type MuscleGroup struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}
