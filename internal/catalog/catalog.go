// Package catalog holds the static exercise reference data. It is read-only
// lookup material for exercise pickers and plan building; the stores only
// ever reference it by exercise id.
package catalog

// DayType is the Push/Pull/Legs/Other split used for both workout sessions
// and exercise categories.
type DayType string

const (
	Push  DayType = "Push"
	Pull  DayType = "Pull"
	Legs  DayType = "Legs"
	Other DayType = "Other"
)

func (d DayType) Valid() bool {
	switch d {
	case Push, Pull, Legs, Other:
		return true
	}
	return false
}

type Exercise struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup"`
	Category    DayType `json:"category"`
	Equipment   string  `json:"equipment,omitempty"`
}

// All returns the full exercise catalog.
func All() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// Find returns the exercise with the given id.
func Find(id string) (Exercise, bool) {
	for _, e := range exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// ByCategory returns all exercises for the given category, plus all
// Other-category exercises. Category Other itself returns the entire
// catalog - exercise pickers depend on this fallback, do not "fix" it.
func ByCategory(category DayType) []Exercise {
	if category == Other {
		return All()
	}
	var out []Exercise
	for _, e := range exercises {
		if e.Category == category || e.Category == Other {
			out = append(out, e)
		}
	}
	return out
}

var exercises = []Exercise{
	// push - chest
	{ID: "bench-press", Name: "Barbell Bench Press", MuscleGroup: "Chest", Category: Push, Equipment: "Barbell"},
	{ID: "incline-bench-press", Name: "Incline Barbell Press", MuscleGroup: "Chest", Category: Push, Equipment: "Barbell"},
	{ID: "db-bench-press", Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Category: Push, Equipment: "Dumbbell"},
	{ID: "incline-db-press", Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Category: Push, Equipment: "Dumbbell"},
	{ID: "decline-db-press", Name: "Decline Dumbbell Press", MuscleGroup: "Chest", Category: Push, Equipment: "Dumbbell"},
	{ID: "db-fly", Name: "Dumbbell Fly", MuscleGroup: "Chest", Category: Push, Equipment: "Dumbbell"},
	{ID: "cable-fly", Name: "Cable Fly", MuscleGroup: "Chest", Category: Push, Equipment: "Cable"},
	{ID: "cable-crossover", Name: "Cable Crossover", MuscleGroup: "Chest", Category: Push, Equipment: "Cable"},
	{ID: "chest-press-machine", Name: "Chest Press Machine", MuscleGroup: "Chest", Category: Push, Equipment: "Machine"},
	{ID: "pec-deck", Name: "Pec Deck / Fly Machine", MuscleGroup: "Chest", Category: Push, Equipment: "Machine"},
	{ID: "push-up", Name: "Push-Up", MuscleGroup: "Chest", Category: Push, Equipment: "Bodyweight"},
	{ID: "dip", Name: "Chest Dip", MuscleGroup: "Chest", Category: Push, Equipment: "Bodyweight"},
	{ID: "smith-bench", Name: "Smith Machine Bench Press", MuscleGroup: "Chest", Category: Push, Equipment: "Machine"},

	// push - shoulders
	{ID: "ohp", Name: "Overhead Press (Barbell)", MuscleGroup: "Shoulders", Category: Push, Equipment: "Barbell"},
	{ID: "db-shoulder-press", Name: "Dumbbell Shoulder Press", MuscleGroup: "Shoulders", Category: Push, Equipment: "Dumbbell"},
	{ID: "arnold-press", Name: "Arnold Press", MuscleGroup: "Shoulders", Category: Push, Equipment: "Dumbbell"},
	{ID: "lateral-raise", Name: "Dumbbell Lateral Raise", MuscleGroup: "Shoulders", Category: Push, Equipment: "Dumbbell"},
	{ID: "cable-lateral-raise", Name: "Cable Lateral Raise", MuscleGroup: "Shoulders", Category: Push, Equipment: "Cable"},
	{ID: "front-raise", Name: "Dumbbell Front Raise", MuscleGroup: "Shoulders", Category: Push, Equipment: "Dumbbell"},
	{ID: "shoulder-press-machine", Name: "Shoulder Press Machine", MuscleGroup: "Shoulders", Category: Push, Equipment: "Machine"},
	{ID: "upright-row", Name: "Upright Row", MuscleGroup: "Shoulders", Category: Push, Equipment: "Barbell"},

	// push - triceps
	{ID: "tricep-pushdown", Name: "Tricep Rope Pushdown", MuscleGroup: "Triceps", Category: Push, Equipment: "Cable"},
	{ID: "tricep-bar-pushdown", Name: "Tricep Bar Pushdown", MuscleGroup: "Triceps", Category: Push, Equipment: "Cable"},
	{ID: "skull-crusher", Name: "Skull Crusher (EZ Bar)", MuscleGroup: "Triceps", Category: Push, Equipment: "Barbell"},
	{ID: "db-skull-crusher", Name: "Dumbbell Skull Crusher", MuscleGroup: "Triceps", Category: Push, Equipment: "Dumbbell"},
	{ID: "overhead-tricep-ext", Name: "Overhead Tricep Extension", MuscleGroup: "Triceps", Category: Push, Equipment: "Dumbbell"},
	{ID: "cable-overhead-tricep", Name: "Cable Overhead Tricep Ext", MuscleGroup: "Triceps", Category: Push, Equipment: "Cable"},
	{ID: "tricep-dip", Name: "Tricep Dip", MuscleGroup: "Triceps", Category: Push, Equipment: "Bodyweight"},
	{ID: "tricep-machine", Name: "Tricep Extension Machine", MuscleGroup: "Triceps", Category: Push, Equipment: "Machine"},
	{ID: "db-kickback", Name: "Dumbbell Kickback", MuscleGroup: "Triceps", Category: Push, Equipment: "Dumbbell"},
	{ID: "close-grip-bench", Name: "Close Grip Bench Press", MuscleGroup: "Triceps", Category: Push, Equipment: "Barbell"},

	// pull - back
	{ID: "barbell-row", Name: "Barbell Row", MuscleGroup: "Back", Category: Pull, Equipment: "Barbell"},
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: "Back", Category: Pull, Equipment: "Barbell"},
	{ID: "lat-pulldown", Name: "Lat Pulldown", MuscleGroup: "Lats", Category: Pull, Equipment: "Cable"},
	{ID: "wide-pulldown", Name: "Wide-Grip Lat Pulldown", MuscleGroup: "Lats", Category: Pull, Equipment: "Cable"},
	{ID: "seated-cable-row", Name: "Seated Cable Row", MuscleGroup: "Back", Category: Pull, Equipment: "Cable"},
	{ID: "pull-up", Name: "Pull-Up", MuscleGroup: "Lats", Category: Pull, Equipment: "Bodyweight"},
	{ID: "chin-up", Name: "Chin-Up", MuscleGroup: "Lats", Category: Pull, Equipment: "Bodyweight"},
	{ID: "assisted-pullup", Name: "Assisted Pull-Up Machine", MuscleGroup: "Lats", Category: Pull, Equipment: "Machine"},
	{ID: "db-row", Name: "Dumbbell Row", MuscleGroup: "Back", Category: Pull, Equipment: "Dumbbell"},
	{ID: "chest-supported-row", Name: "Chest Supported Row", MuscleGroup: "Back", Category: Pull, Equipment: "Machine"},
	{ID: "machine-row", Name: "Seated Row Machine", MuscleGroup: "Back", Category: Pull, Equipment: "Machine"},
	{ID: "t-bar-row", Name: "T-Bar Row", MuscleGroup: "Back", Category: Pull, Equipment: "Barbell"},
	{ID: "face-pull", Name: "Face Pull", MuscleGroup: "Rear Delt", Category: Pull, Equipment: "Cable"},
	{ID: "db-shrug", Name: "Dumbbell Shrug", MuscleGroup: "Traps", Category: Pull, Equipment: "Dumbbell"},
	{ID: "barbell-shrug", Name: "Barbell Shrug", MuscleGroup: "Traps", Category: Pull, Equipment: "Barbell"},

	// pull - biceps
	{ID: "db-curl", Name: "Dumbbell Bicep Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Dumbbell"},
	{ID: "barbell-curl", Name: "Barbell Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Barbell"},
	{ID: "ez-bar-curl", Name: "EZ Bar Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Barbell"},
	{ID: "hammer-curl", Name: "Hammer Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Dumbbell"},
	{ID: "incline-db-curl", Name: "Incline Dumbbell Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Dumbbell"},
	{ID: "cable-curl", Name: "Cable Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Cable"},
	{ID: "preacher-curl", Name: "Preacher Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Machine"},
	{ID: "concentration-curl", Name: "Concentration Curl", MuscleGroup: "Biceps", Category: Pull, Equipment: "Dumbbell"},

	// legs - quads
	{ID: "squat", Name: "Barbell Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Barbell"},
	{ID: "front-squat", Name: "Front Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Barbell"},
	{ID: "smith-squat", Name: "Smith Machine Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Machine"},
	{ID: "hack-squat", Name: "Hack Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Machine"},
	{ID: "leg-press", Name: "Leg Press", MuscleGroup: "Quads", Category: Legs, Equipment: "Machine"},
	{ID: "leg-extension", Name: "Leg Extension", MuscleGroup: "Quads", Category: Legs, Equipment: "Machine"},
	{ID: "walking-lunge", Name: "Walking Lunges", MuscleGroup: "Quads", Category: Legs, Equipment: "Bodyweight"},
	{ID: "db-lunge", Name: "Dumbbell Lunge", MuscleGroup: "Quads", Category: Legs, Equipment: "Dumbbell"},
	{ID: "db-goblet-squat", Name: "Goblet Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Dumbbell"},
	{ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat", MuscleGroup: "Quads", Category: Legs, Equipment: "Dumbbell"},
	{ID: "step-up", Name: "Step-Up", MuscleGroup: "Quads", Category: Legs, Equipment: "Dumbbell"},

	// legs - hamstrings / glutes
	{ID: "rdl", Name: "Romanian Deadlift (Barbell)", MuscleGroup: "Hamstrings", Category: Legs, Equipment: "Barbell"},
	{ID: "db-rdl", Name: "Romanian Deadlift (Dumbbell)", MuscleGroup: "Hamstrings", Category: Legs, Equipment: "Dumbbell"},
	{ID: "leg-curl", Name: "Lying Leg Curl", MuscleGroup: "Hamstrings", Category: Legs, Equipment: "Machine"},
	{ID: "seated-leg-curl", Name: "Seated Leg Curl", MuscleGroup: "Hamstrings", Category: Legs, Equipment: "Machine"},
	{ID: "nordic-curl", Name: "Nordic Hamstring Curl", MuscleGroup: "Hamstrings", Category: Legs, Equipment: "Bodyweight"},
	{ID: "hip-thrust", Name: "Hip Thrust (Barbell)", MuscleGroup: "Glutes", Category: Legs, Equipment: "Barbell"},
	{ID: "db-hip-thrust", Name: "Hip Thrust (Dumbbell)", MuscleGroup: "Glutes", Category: Legs, Equipment: "Dumbbell"},
	{ID: "glute-bridge", Name: "Glute Bridge", MuscleGroup: "Glutes", Category: Legs, Equipment: "Bodyweight"},
	{ID: "cable-kickback", Name: "Cable Glute Kickback", MuscleGroup: "Glutes", Category: Legs, Equipment: "Cable"},
	{ID: "abductor-machine", Name: "Abductor Machine", MuscleGroup: "Glutes", Category: Legs, Equipment: "Machine"},
	{ID: "adductor-machine", Name: "Adductor Machine", MuscleGroup: "Inner Thigh", Category: Legs, Equipment: "Machine"},

	// legs - calves
	{ID: "calf-raise", Name: "Standing Calf Raise", MuscleGroup: "Calves", Category: Legs, Equipment: "Machine"},
	{ID: "seated-calf-raise", Name: "Seated Calf Raise", MuscleGroup: "Calves", Category: Legs, Equipment: "Machine"},
	{ID: "db-calf-raise", Name: "Dumbbell Calf Raise", MuscleGroup: "Calves", Category: Legs, Equipment: "Dumbbell"},

	// other / core / full body
	{ID: "plank", Name: "Plank", MuscleGroup: "Core", Category: Other, Equipment: "Bodyweight"},
	{ID: "ab-wheel", Name: "Ab Wheel Rollout", MuscleGroup: "Core", Category: Other, Equipment: "Other"},
	{ID: "cable-crunch", Name: "Cable Crunch", MuscleGroup: "Core", Category: Other, Equipment: "Cable"},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", MuscleGroup: "Core", Category: Other, Equipment: "Bodyweight"},
	{ID: "crunch", Name: "Crunch", MuscleGroup: "Core", Category: Other, Equipment: "Bodyweight"},
	{ID: "russian-twist", Name: "Russian Twist", MuscleGroup: "Core", Category: Other, Equipment: "Bodyweight"},
	{ID: "farmers-carry", Name: "Farmer's Carry", MuscleGroup: "Full Body", Category: Other, Equipment: "Dumbbell"},
	{ID: "battle-ropes", Name: "Battle Ropes", MuscleGroup: "Full Body", Category: Other, Equipment: "Other"},
	{ID: "box-jump", Name: "Box Jump", MuscleGroup: "Full Body", Category: Other, Equipment: "Bodyweight"},
	{ID: "clean", Name: "Power Clean", MuscleGroup: "Full Body", Category: Other, Equipment: "Barbell"},
}
