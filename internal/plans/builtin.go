package plans

import (
	"fmt"

	"github.com/mdjurovic/kratos/internal/catalog"
)

// builtins are the stock beginner push/pull/legs plans. They are served
// next to the user-authored plans but never persisted and never
// deletable.
var builtins = []Plan{
	{
		ID:               "beginner-push",
		Name:             "Push Day A",
		Type:             catalog.Push,
		EstimatedMinutes: 55,
		ScheduledDay:     "Monday",
		Description:      "Chest, shoulders & triceps. Focus on form over weight - keep your back flat on the bench and drive through the full range of motion.",
		Exercises: []PlanExercise{
			{Exercise: mustExercise("bench-press"), Sets: 3, TargetReps: 8, RestSeconds: 120},
			{Exercise: mustExercise("ohp"), Sets: 3, TargetReps: 8, RestSeconds: 120},
			{Exercise: mustExercise("tricep-pushdown"), Sets: 3, TargetReps: 12, RestSeconds: 90},
		},
	},
	{
		ID:               "beginner-pull",
		Name:             "Pull Day B",
		Type:             catalog.Pull,
		EstimatedMinutes: 50,
		ScheduledDay:     "Wednesday",
		Description:      "Back & biceps. Initiate every pull with your lats, not your arms. Keep your core braced during barbell rows.",
		Exercises: []PlanExercise{
			{Exercise: mustExercise("barbell-row"), Sets: 3, TargetReps: 8, RestSeconds: 120},
			{Exercise: mustExercise("lat-pulldown"), Sets: 3, TargetReps: 10, RestSeconds: 90},
			{Exercise: mustExercise("db-curl"), Sets: 3, TargetReps: 12, RestSeconds: 60},
		},
	},
	{
		ID:               "beginner-legs",
		Name:             "Legs Day C",
		Type:             catalog.Legs,
		EstimatedMinutes: 60,
		ScheduledDay:     "Friday",
		Description:      "Quads, hamstrings & glutes. Squat to parallel or below. Take the extra rest - your CNS needs it on heavy leg days.",
		Exercises: []PlanExercise{
			{Exercise: mustExercise("squat"), Sets: 3, TargetReps: 8, RestSeconds: 150},
			{Exercise: mustExercise("rdl"), Sets: 3, TargetReps: 10, RestSeconds: 120},
			{Exercise: mustExercise("leg-press"), Sets: 3, TargetReps: 12, RestSeconds: 90},
		},
	},
}

// BuiltinPlans returns a copy of the stock plans.
func BuiltinPlans() []Plan {
	plans := make([]Plan, len(builtins))
	copy(plans, builtins)
	return plans
}

func mustExercise(id string) catalog.Exercise {
	e, ok := catalog.Find(id)
	if !ok {
		panic(fmt.Sprintf("builtin plan references unknown exercise %q", id))
	}
	return e
}
