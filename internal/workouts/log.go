package workouts

import (
	"time"

	"github.com/mdjurovic/kratos/internal/catalog"
)

// DateLayout is the calendar date format used for all log dates.
// No time component - comparisons are by calendar day, not instant.
const DateLayout = "2006-01-02"

// KilosToPounds converts a weight in kg to lbs.
const KilosToPounds = 2.205

type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"
)

type Set struct {
	Reps   int        `json:"reps"`
	Weight float64    `json:"weight"`
	Unit   WeightUnit `json:"unit"`
}

// Pounds returns the set weight normalized to lbs.
func (s Set) Pounds() float64 {
	if s.Unit == UnitKg {
		return s.Weight * KilosToPounds
	}
	return s.Weight
}

type LoggedExercise struct {
	ExerciseID string `json:"exerciseId"`
	// ExerciseName is a snapshot of the catalog name at logging time,
	// so the log survives catalog changes
	ExerciseName string `json:"exerciseName"`
	Sets         []Set  `json:"sets"`
}

// Log is a single completed workout session.
type Log struct {
	ID   string          `json:"id"`
	Date string          `json:"date"` // YYYY-MM-DD
	Type catalog.DayType `json:"type"`
	// provenance link to the plan this session was started from;
	// never re-validated against the plan store
	PlanID    string           `json:"planId,omitempty"`
	PlanName  string           `json:"planName,omitempty"`
	Exercises []LoggedExercise `json:"exercises"`
	Notes     string           `json:"notes,omitempty"`
}

// Day parses the log date as a calendar day (midnight UTC).
func (l Log) Day() (time.Time, error) {
	return time.Parse(DateLayout, l.Date)
}

// Volume returns weight x reps summed over all sets, in lbs.
func (l Log) Volume() float64 {
	var total float64
	for _, ex := range l.Exercises {
		for _, s := range ex.Sets {
			total += s.Pounds() * float64(s.Reps)
		}
	}
	return total
}
