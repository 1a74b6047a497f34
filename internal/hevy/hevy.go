// Package hevy defines the vocabulary of the Hevy API: the four resource
// collections, the operations each one supports, and the closed string
// enumerations used by exercise templates and sets.
package hevy

// Resource identifies one of the API's resource collections. Its string
// value is the wire-level collection name used in paths and list responses.
type Resource string

const (
	Workouts          Resource = "workouts"
	Routines          Resource = "routines"
	ExerciseTemplates Resource = "exercise_templates"
	RoutineFolders    Resource = "routine_folders"
)

// Operation identifies an action on a resource. Not every resource supports
// every operation; check Supports before building a request.
type Operation string

const (
	OpList    Operation = "list"
	OpGet     Operation = "get"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpCount   Operation = "count"
	OpEvents  Operation = "events"
	OpHistory Operation = "history"
)

var supported = map[Resource]map[Operation]bool{
	Workouts:          {OpList: true, OpGet: true, OpCreate: true, OpUpdate: true, OpCount: true, OpEvents: true},
	Routines:          {OpList: true, OpGet: true, OpCreate: true, OpUpdate: true},
	ExerciseTemplates: {OpList: true, OpGet: true, OpCreate: true, OpHistory: true},
	RoutineFolders:    {OpList: true, OpGet: true, OpCreate: true},
}

// Supports reports whether the resource accepts the operation.
func Supports(r Resource, op Operation) bool {
	return supported[r][op]
}

// CollectionPath returns the versioned collection path, e.g. "/v1/workouts".
func (r Resource) CollectionPath() string {
	return "/v1/" + string(r)
}

// CollectionField is the key under which list responses carry the item
// array. It matches the collection name.
func (r Resource) CollectionField() string {
	return string(r)
}

// WrapperKey is the key create and update bodies wrap the resource object
// under, e.g. {"workout": {...}}.
func (r Resource) WrapperKey() string {
	switch r {
	case Workouts:
		return "workout"
	case Routines:
		return "routine"
	case ExerciseTemplates:
		return "exercise_template"
	case RoutineFolders:
		return "routine_folder"
	}
	return ""
}

// PageSizeLimit is the largest page_size the service accepts for the
// resource. Exercise templates allow larger pages than the rest.
func (r Resource) PageSizeLimit() int {
	if r == ExerciseTemplates {
		return 100
	}
	return 10
}
