// Package payload parses and validates the exercises JSON accepted by
// workout and routine create/update commands.
//
// The validator is deliberately open: it checks only the fields it has to
// reason about (the template identifier, the set type enumeration, the
// numeric set fields) and passes everything else through untouched, so
// newer server-side fields keep working. Explicit nulls are preserved as
// nulls; they are meaningful to the server and distinct from absent keys.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"hevyctl/internal/hevy"
)

var (
	// ErrInvalidPayload marks exercises JSON that failed to parse or
	// violated the schema.
	ErrInvalidPayload = errors.New("invalid exercises payload")

	// ErrSourceUnreadable marks an @file argument whose path could not
	// be read.
	ErrSourceUnreadable = errors.New("exercises payload source unreadable")
)

// Exercises is a validated, normalized exercises payload. Array order is
// preserved; it is semantically meaningful to the server.
type Exercises []map[string]any

// ParseArg resolves an --exercises-json argument (literal JSON or an
// @file reference) and validates it.
func ParseArg(arg string) (Exercises, error) {
	raw, err := ResolveSource(arg).Read()
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse validates raw exercises JSON in a single pass, returning the
// normalized payload or the first violation encountered.
func Parse(raw []byte) (Exercises, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidPayload, err)
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value must be an array of exercise objects", ErrInvalidPayload)
	}
	out := make(Exercises, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: exercises[%d] must be an object", ErrInvalidPayload, i)
		}
		if err := validateEntry(i, entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func validateEntry(i int, entry map[string]any) error {
	id, ok := entry["exercise_template_id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("%w: exercises[%d] is missing a non-empty exercise_template_id", ErrInvalidPayload, i)
	}
	rawSets, ok := entry["sets"]
	if !ok {
		return fmt.Errorf("%w: exercises[%d] is missing sets (an empty array is fine)", ErrInvalidPayload, i)
	}
	sets, ok := rawSets.([]any)
	if !ok {
		return fmt.Errorf("%w: exercises[%d].sets must be an array", ErrInvalidPayload, i)
	}
	for j, rawSet := range sets {
		set, ok := rawSet.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: exercises[%d].sets[%d] must be an object", ErrInvalidPayload, i, j)
		}
		if err := validateSet(i, j, set); err != nil {
			return err
		}
	}
	return nil
}

// Numeric set fields that must be non-negative when supplied. rpe is
// excluded: any number (or null) passes through.
var nonNegativeSetFields = []string{"weight_kg", "reps", "distance_meters", "duration_seconds"}

func validateSet(i, j int, set map[string]any) error {
	switch v := set["type"].(type) {
	case string:
		if _, err := hevy.ParseSetType(v); err != nil {
			return fmt.Errorf("%w: exercises[%d].sets[%d].type: %v", ErrInvalidPayload, i, j, err)
		}
	default:
		if _, present := set["type"]; present {
			return fmt.Errorf("%w: exercises[%d].sets[%d].type must be a string", ErrInvalidPayload, i, j)
		}
		set["type"] = string(hevy.SetNormal)
	}

	for _, field := range nonNegativeSetFields {
		v, present := set[field]
		if !present || v == nil {
			continue
		}
		n, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: exercises[%d].sets[%d].%s must be a number or null", ErrInvalidPayload, i, j, field)
		}
		if n < 0 {
			return fmt.Errorf("%w: exercises[%d].sets[%d].%s must be non-negative, got %v", ErrInvalidPayload, i, j, field, n)
		}
		if field == "reps" && n != math.Trunc(n) {
			return fmt.Errorf("%w: exercises[%d].sets[%d].reps must be an integer, got %v", ErrInvalidPayload, i, j, n)
		}
	}

	if v, present := set["rpe"]; present && v != nil {
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%w: exercises[%d].sets[%d].rpe must be a number or null", ErrInvalidPayload, i, j)
		}
	}
	return nil
}
