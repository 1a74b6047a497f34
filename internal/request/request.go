// Package request maps a (resource, operation, arguments) selection to a
// concrete HTTP request specification. All local validation happens here:
// pagination bounds, required fields, enumeration checks, and the
// partial-update rule that only explicitly supplied fields are sent. A
// build failure means no request is issued at all.
package request

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hevyctl/internal/hevy"
	"hevyctl/internal/payload"
)

var (
	// ErrPaginationOutOfRange marks a page or page size outside the
	// resource's local bounds.
	ErrPaginationOutOfRange = errors.New("pagination out of range")

	// ErrMissingIdentifier marks a get/update/history call without an id.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrMissingRequiredField marks a create call lacking a required field.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrEmptyUpdate marks an update call that supplied nothing to change.
	ErrEmptyUpdate = errors.New("empty update")
)

// Spec is a fully validated HTTP request, ready for the client to send.
// Body, when non-nil, is marshaled to JSON by the client.
type Spec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Page carries pagination arguments for list-style operations.
type Page struct {
	Page int
	Size int
}

func pageQuery(res hevy.Resource, pg Page) (url.Values, error) {
	if pg.Page < 1 {
		return nil, fmt.Errorf("%w: --page must be at least 1, got %d", ErrPaginationOutOfRange, pg.Page)
	}
	limit := res.PageSizeLimit()
	if pg.Size < 1 || pg.Size > limit {
		return nil, fmt.Errorf("%w: --page-size for %s must be between 1 and %d, got %d",
			ErrPaginationOutOfRange, res, limit, pg.Size)
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(pg.Page))
	q.Set("page_size", strconv.Itoa(pg.Size))
	return q, nil
}

// List builds a collection listing request for any resource.
func List(res hevy.Resource, pg Page) (*Spec, error) {
	q, err := pageQuery(res, pg)
	if err != nil {
		return nil, err
	}
	return &Spec{Method: http.MethodGet, Path: res.CollectionPath(), Query: q}, nil
}

// Get builds a single-item fetch for any resource.
func Get(res hevy.Resource, id string) (*Spec, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: a %s id is required", ErrMissingIdentifier, res.WrapperKey())
	}
	return &Spec{Method: http.MethodGet, Path: res.CollectionPath() + "/" + url.PathEscape(id)}, nil
}

// WorkoutCount builds the total-count request.
func WorkoutCount() *Spec {
	return &Spec{Method: http.MethodGet, Path: hevy.Workouts.CollectionPath() + "/count"}
}

// WorkoutEvents builds the update/delete event feed request. The since
// timestamp is passed through verbatim; the server validates it.
func WorkoutEvents(pg Page, since string) (*Spec, error) {
	q, err := pageQuery(hevy.Workouts, pg)
	if err != nil {
		return nil, err
	}
	if since != "" {
		q.Set("since", since)
	}
	return &Spec{Method: http.MethodGet, Path: hevy.Workouts.CollectionPath() + "/events", Query: q}, nil
}

// TemplateHistory builds the per-template exercise history request. Date
// bounds are optional and passed through verbatim.
func TemplateHistory(templateID, startDate, endDate string) (*Spec, error) {
	if templateID == "" {
		return nil, fmt.Errorf("%w: an exercise template id is required", ErrMissingIdentifier)
	}
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return &Spec{Method: http.MethodGet, Path: "/v1/exercise_history/" + url.PathEscape(templateID), Query: q}, nil
}

// WorkoutDraft carries the arguments for workout creation. Optional fields
// are pointers so that "not supplied" never reaches the wire.
type WorkoutDraft struct {
	Title         string
	StartTime     string
	EndTime       string
	Description   *string
	IsPrivate     bool
	ExercisesJSON string
}

// CreateWorkout builds a workout creation request.
func CreateWorkout(d WorkoutDraft) (*Spec, error) {
	if d.Title == "" {
		return nil, requiredErr("--title")
	}
	if d.StartTime == "" {
		return nil, requiredErr("--start-time")
	}
	if d.EndTime == "" {
		return nil, requiredErr("--end-time")
	}
	workout := map[string]any{
		"title":      d.Title,
		"start_time": d.StartTime,
		"end_time":   d.EndTime,
		"is_private": d.IsPrivate,
	}
	if d.Description != nil {
		workout["description"] = *d.Description
	}
	if err := attachExercises(workout, d.ExercisesJSON); err != nil {
		return nil, err
	}
	return &Spec{
		Method: http.MethodPost,
		Path:   hevy.Workouts.CollectionPath(),
		Body:   wrap(hevy.Workouts, workout),
	}, nil
}

// WorkoutPatch carries partial-update arguments for a workout. A nil
// pointer means the field was not supplied and must be omitted from the
// body, which is distinct from setting it to an empty value.
type WorkoutPatch struct {
	Title         *string
	Description   *string
	StartTime     *string
	EndTime       *string
	IsPrivate     *bool
	ExercisesJSON string
}

// UpdateWorkout builds a partial workout update containing exactly the
// supplied fields.
func UpdateWorkout(id string, p WorkoutPatch) (*Spec, error) {
	workout := map[string]any{}
	setIf(workout, "title", p.Title)
	setIf(workout, "description", p.Description)
	setIf(workout, "start_time", p.StartTime)
	setIf(workout, "end_time", p.EndTime)
	if p.IsPrivate != nil {
		workout["is_private"] = *p.IsPrivate
	}
	if err := attachExercises(workout, p.ExercisesJSON); err != nil {
		return nil, err
	}
	return update(hevy.Workouts, id, workout)
}

// RoutineDraft carries the arguments for routine creation.
type RoutineDraft struct {
	Title         string
	FolderID      *int
	Notes         *string
	ExercisesJSON string
}

// CreateRoutine builds a routine creation request.
func CreateRoutine(d RoutineDraft) (*Spec, error) {
	if d.Title == "" {
		return nil, requiredErr("--title")
	}
	routine := map[string]any{"title": d.Title}
	if d.FolderID != nil {
		routine["folder_id"] = *d.FolderID
	}
	if d.Notes != nil {
		routine["notes"] = *d.Notes
	}
	if err := attachExercises(routine, d.ExercisesJSON); err != nil {
		return nil, err
	}
	return &Spec{
		Method: http.MethodPost,
		Path:   hevy.Routines.CollectionPath(),
		Body:   wrap(hevy.Routines, routine),
	}, nil
}

// RoutinePatch carries partial-update arguments for a routine.
type RoutinePatch struct {
	Title         *string
	Notes         *string
	ExercisesJSON string
}

// UpdateRoutine builds a partial routine update containing exactly the
// supplied fields.
func UpdateRoutine(id string, p RoutinePatch) (*Spec, error) {
	routine := map[string]any{}
	setIf(routine, "title", p.Title)
	setIf(routine, "notes", p.Notes)
	if err := attachExercises(routine, p.ExercisesJSON); err != nil {
		return nil, err
	}
	return update(hevy.Routines, id, routine)
}

// TemplateDraft carries the arguments for custom exercise template
// creation. Enum fields arrive as raw flag strings and are validated here,
// before any request exists.
type TemplateDraft struct {
	Title           string
	ExerciseType    string
	Equipment       string
	PrimaryMuscle   string
	SecondaryMuscle []string
}

// CreateTemplate builds an exercise template creation request. Secondary
// muscles keep their input order, duplicates included; the server owns
// dedup semantics.
func CreateTemplate(d TemplateDraft) (*Spec, error) {
	if d.Title == "" {
		return nil, requiredErr("--title")
	}
	if d.ExerciseType == "" {
		return nil, requiredErr("--exercise-type")
	}
	if d.Equipment == "" {
		return nil, requiredErr("--equipment")
	}
	if d.PrimaryMuscle == "" {
		return nil, requiredErr("--muscle-group")
	}
	exType, err := hevy.ParseExerciseType(d.ExerciseType)
	if err != nil {
		return nil, fmt.Errorf("--exercise-type: %w", err)
	}
	equipment, err := hevy.ParseEquipmentCategory(d.Equipment)
	if err != nil {
		return nil, fmt.Errorf("--equipment: %w", err)
	}
	primary, err := hevy.ParseMuscleGroup(d.PrimaryMuscle)
	if err != nil {
		return nil, fmt.Errorf("--muscle-group: %w", err)
	}
	template := map[string]any{
		"title":                d.Title,
		"type":                 exType,
		"equipment_category":   equipment,
		"primary_muscle_group": primary,
	}
	if len(d.SecondaryMuscle) > 0 {
		secondary := make([]hevy.MuscleGroup, 0, len(d.SecondaryMuscle))
		for _, raw := range d.SecondaryMuscle {
			group, err := hevy.ParseMuscleGroup(raw)
			if err != nil {
				return nil, fmt.Errorf("--other-muscles: %w", err)
			}
			secondary = append(secondary, group)
		}
		template["secondary_muscle_groups"] = secondary
	}
	return &Spec{
		Method: http.MethodPost,
		Path:   hevy.ExerciseTemplates.CollectionPath(),
		Body:   wrap(hevy.ExerciseTemplates, template),
	}, nil
}

// CreateFolder builds a routine folder creation request.
func CreateFolder(name string) (*Spec, error) {
	if name == "" {
		return nil, requiredErr("--name")
	}
	return &Spec{
		Method: http.MethodPost,
		Path:   hevy.RoutineFolders.CollectionPath(),
		Body:   wrap(hevy.RoutineFolders, map[string]any{"title": name}),
	}, nil
}

func update(res hevy.Resource, id string, fields map[string]any) (*Spec, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: a %s id is required", ErrMissingIdentifier, res.WrapperKey())
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: supply at least one field to change", ErrEmptyUpdate)
	}
	return &Spec{
		Method: http.MethodPut,
		Path:   res.CollectionPath() + "/" + url.PathEscape(id),
		Body:   wrap(res, fields),
	}, nil
}

func wrap(res hevy.Resource, body map[string]any) map[string]any {
	return map[string]any{res.WrapperKey(): body}
}

func setIf(body map[string]any, key string, value *string) {
	if value != nil {
		body[key] = *value
	}
}

// attachExercises validates and embeds an exercises payload when one was
// supplied. The normalized payload is embedded as-is.
func attachExercises(body map[string]any, exercisesJSON string) error {
	if exercisesJSON == "" {
		return nil
	}
	exercises, err := payload.ParseArg(exercisesJSON)
	if err != nil {
		return err
	}
	body["exercises"] = exercises
	return nil
}

func requiredErr(flag string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, flag)
}
