package hevy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnumValue marks a value outside one of the API's closed
// enumerations. Wrapped errors name the value and the allowed set.
var ErrInvalidEnumValue = errors.New("invalid value")

// SetType classifies a single set within an exercise entry.
type SetType string

const (
	SetNormal  SetType = "normal"
	SetWarmup  SetType = "warmup"
	SetFailure SetType = "failure"
	SetDropset SetType = "dropset"
)

// ExerciseType describes how an exercise template is measured.
type ExerciseType string

// EquipmentCategory describes the equipment an exercise template uses.
type EquipmentCategory string

// MuscleGroup names a muscle group targeted by an exercise template.
type MuscleGroup string

// Wire-value tables. These are the exhaustive sets the service accepts;
// anything else is rejected locally before a request is built.
var (
	SetTypes = []SetType{SetWarmup, SetNormal, SetFailure, SetDropset}

	ExerciseTypes = []ExerciseType{
		"weight_reps", "reps_only", "bodyweight_reps", "bodyweight_assisted_reps",
		"duration", "weight_duration", "distance_duration", "short_distance_weight",
	}

	EquipmentCategories = []EquipmentCategory{
		"none", "barbell", "dumbbell", "kettlebell", "machine",
		"plate", "resistance_band", "suspension", "other",
	}

	MuscleGroups = []MuscleGroup{
		"abdominals", "shoulders", "biceps", "triceps", "forearms",
		"quadriceps", "hamstrings", "calves", "glutes", "abductors",
		"adductors", "lats", "upper_back", "traps", "lower_back",
		"chest", "cardio", "neck", "full_body", "other",
	}
)

// ParseSetType validates a wire string against the set type enumeration.
func ParseSetType(s string) (SetType, error) {
	for _, t := range SetTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", enumErr("set type", s, SetTypes)
}

// ParseExerciseType validates a wire string against the exercise type
// enumeration.
func ParseExerciseType(s string) (ExerciseType, error) {
	for _, t := range ExerciseTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", enumErr("exercise type", s, ExerciseTypes)
}

// ParseEquipmentCategory validates a wire string against the equipment
// enumeration.
func ParseEquipmentCategory(s string) (EquipmentCategory, error) {
	for _, c := range EquipmentCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", enumErr("equipment category", s, EquipmentCategories)
}

// ParseMuscleGroup validates a wire string against the muscle group
// enumeration.
func ParseMuscleGroup(s string) (MuscleGroup, error) {
	for _, g := range MuscleGroups {
		if s == string(g) {
			return g, nil
		}
	}
	return "", enumErr("muscle group", s, MuscleGroups)
}

func enumErr[T ~string](what, got string, allowed []T) error {
	values := make([]string, len(allowed))
	for i, v := range allowed {
		values[i] = string(v)
	}
	return fmt.Errorf("%w: %q is not a valid %s (allowed: %s)",
		ErrInvalidEnumValue, got, what, strings.Join(values, ", "))
}
