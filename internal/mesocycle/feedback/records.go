package feedback

import (
	"time"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

type SorenessRecord struct {
	ID            int                       `json:"id"`
	UserID        int                       `json:"userId"`
	WorkoutDate   time.Time                 `json:"workoutDate"`
	MuscleGroup   string                    `json:"muscleGroup"`
	SorenessLevel progression.SorenessLevel `json:"sorenessLevel"`
	Healed        bool                      `json:"healed"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

type PumpRecord struct {
	ID          int                   `json:"id"`
	UserID      int                   `json:"userId"`
	WorkoutDate time.Time             `json:"workoutDate"`
	MuscleGroup string                `json:"muscleGroup"`
	PumpLevel   progression.PumpLevel `json:"pumpLevel"`
	CreatedAt   time.Time             `json:"createdAt"`
}
