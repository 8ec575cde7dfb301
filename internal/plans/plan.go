package plans

import (
	"math"

	"github.com/mdjurovic/kratos/internal/catalog"
)

// RestSeconds values selectable when authoring a plan.
var ValidRestSeconds = []int{30, 60, 90, 120, 150, 180}

func RestSecondsValid(rest int) bool {
	for _, r := range ValidRestSeconds {
		if rest == r {
			return true
		}
	}
	return false
}

// PlanExercise is a catalog exercise plus its prescription within a plan.
// The exercise is embedded by value, a snapshot: catalog edits never
// change an already saved plan.
type PlanExercise struct {
	catalog.Exercise
	Sets        int `json:"sets"`
	TargetReps  int `json:"targetReps"`
	RestSeconds int `json:"restSeconds"`
}

// Plan is a reusable workout template. EstimatedMinutes is computed once
// at creation and stored, never recomputed afterwards.
type Plan struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             catalog.DayType `json:"type"`
	ScheduledDay     string          `json:"scheduledDay,omitempty"`
	Description      string          `json:"description,omitempty"`
	EstimatedMinutes int             `json:"estimatedMinutes"`
	Exercises        []PlanExercise  `json:"exercises"`
}

// EstimateMinutes gives a rough session duration for a set of plan
// exercises: 45s of work per set, plus the average rest per set, plus
// 5 minutes of warmup.
func EstimateMinutes(exercises []PlanExercise) int {
	if len(exercises) == 0 {
		return 0
	}

	var totalSets, totalRest int
	for _, pe := range exercises {
		totalSets += pe.Sets
		totalRest += pe.RestSeconds
	}
	avgRest := math.Round(float64(totalRest) / float64(len(exercises)))

	return int(math.Round((float64(totalSets)*45+float64(totalSets)*avgRest)/60)) + 5
}
