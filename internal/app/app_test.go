package app

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hevyctl/internal/auth"
	"hevyctl/internal/client"
	"hevyctl/internal/hevy"
	"hevyctl/internal/request"
)

// recorded captures what reached the test server for a single command run.
type recorded struct {
	Method string
	Path   string
	Query  map[string]string
	APIKey string
	Body   []byte
}

// runCLI executes the command line against an httptest server, injecting
// the server URL and a test credential as global flags. An isolated HOME
// keeps a developer's real config file out of the run.
func runCLI(t *testing.T, respond http.HandlerFunc, args ...string) (string, *recorded, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var rec *recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		query := map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		rec = &recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  query,
			APIKey: r.Header.Get("api-key"),
			Body:   body,
		}
		respond(w, r)
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	a := NewWithOpts(Opts{Out: &buf})
	full := append([]string{"--base-url", srv.URL, "--api-key", "test-key"}, args...)
	err := a.Execute(full)
	return buf.String(), rec, err
}

func respondJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func TestWorkoutsList(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"page":1,"page_count":1,"workouts":[{"id":"w1","title":"Push Day","exercises":[]}]}`),
		"workouts", "list")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/v1/workouts", rec.Path)
	assert.Equal(t, "1", rec.Query["page"])
	assert.Equal(t, "5", rec.Query["page_size"])
	assert.Equal(t, "test-key", rec.APIKey)
	assert.Contains(t, out, "Push Day")
}

func TestWorkoutsListJSONMode(t *testing.T) {
	out, _, err := runCLI(t,
		respondJSON(`{"workouts":[{"id":"w1"}]}`),
		"--json", "workouts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "w1"`)
	assert.NotContains(t, out, "TITLE")
}

func TestWorkoutsListPaginationFlags(t *testing.T) {
	_, rec, err := runCLI(t,
		respondJSON(`{"workouts":[]}`),
		"workouts", "list", "--page", "3", "--page-size", "10")
	require.NoError(t, err)
	assert.Equal(t, "3", rec.Query["page"])
	assert.Equal(t, "10", rec.Query["page_size"])
}

func TestWorkoutsListPageSizeOutOfRange(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{}`),
		"workouts", "list", "--page-size", "11")
	assert.ErrorIs(t, err, request.ErrPaginationOutOfRange)
	assert.Nil(t, rec, "an invalid page size must never reach the server")
}

func TestWorkoutsListAll(t *testing.T) {
	out, _, err := runCLI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			w.Write([]byte(`{"page":1,"page_count":2,"workouts":[{"id":"w1","title":"A","exercises":[]}]}`))
			return
		}
		w.Write([]byte(`{"page":2,"page_count":2,"workouts":[{"id":"w2","title":"B","exercises":[]}]}`))
	}, "workouts", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "w1")
	assert.Contains(t, out, "w2")
}

func TestWorkoutsGet(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"workout":{"id":"w1","title":"Push Day","exercises":[]}}`),
		"workouts", "get", "w1")
	require.NoError(t, err)
	assert.Equal(t, "/v1/workouts/w1", rec.Path)
	assert.Contains(t, out, "Push Day")
}

func TestWorkoutsCount(t *testing.T) {
	out, rec, err := runCLI(t, respondJSON(`{"workout_count":42}`), "workouts", "count")
	require.NoError(t, err)
	assert.Equal(t, "/v1/workouts/count", rec.Path)
	assert.Equal(t, "Total workouts: 42\n", out)
}

func TestWorkoutsEvents(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{"events":[]}`),
		"workouts", "events", "--since", "2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "/v1/workouts/events", rec.Path)
	assert.Equal(t, "2024-01-01T00:00:00Z", rec.Query["since"])
}

func TestWorkoutsEventsDefaultSince(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{"events":[]}`), "workouts", "events")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00Z", rec.Query["since"])
}

func TestWorkoutsCreate(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"workout":{"id":"w9","title":"Leg Day","exercises":[]}}`),
		"workouts", "create",
		"--title", "Leg Day",
		"--start-time", "2024-03-01T10:00:00Z",
		"--end-time", "2024-03-01T11:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/v1/workouts", rec.Path)
	assert.JSONEq(t, `{"workout":{
		"title": "Leg Day",
		"start_time": "2024-03-01T10:00:00Z",
		"end_time": "2024-03-01T11:00:00Z",
		"is_private": false
	}}`, string(rec.Body))
	assert.Contains(t, out, "Workout created.")
}

func TestWorkoutsCreateMissingTitle(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{}`),
		"workouts", "create", "--start-time", "a", "--end-time", "b")
	assert.ErrorIs(t, err, request.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "--title")
	assert.Nil(t, rec)
}

func TestWorkoutsUpdatePartial(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"workout":{"id":"w1","title":"Renamed","exercises":[]}}`),
		"workouts", "update", "w1", "--title", "Renamed")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/v1/workouts/w1", rec.Path)
	assert.JSONEq(t, `{"workout":{"title":"Renamed"}}`, string(rec.Body))
	assert.Contains(t, out, "Workout updated.")
}

func TestWorkoutsUpdateNoFields(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{}`), "workouts", "update", "w1")
	assert.ErrorIs(t, err, request.ErrEmptyUpdate)
	assert.Nil(t, rec)
}

func TestRoutinesCreate(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"routine":{"id":"r1","title":"PPL","exercises":[]}}`),
		"routines", "create", "--title", "PPL", "--folder-id", "7")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/v1/routines", rec.Path)
	assert.JSONEq(t, `{"routine":{"title":"PPL","folder_id":7}}`, string(rec.Body))
	assert.Contains(t, out, "Routine created.")
}

func TestRoutinesCreateWithExercisesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"exercise_template_id": "t1", "sets": [{"weight_kg": 60, "reps": 8}]}
	]`), 0o600))

	_, rec, err := runCLI(t,
		respondJSON(`{"routine":{"id":"r1","title":"PPL","exercises":[]}}`),
		"routines", "create", "--title", "PPL", "--exercises-json", "@"+path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"routine":{
		"title": "PPL",
		"exercises": [{"exercise_template_id": "t1", "sets": [{"type": "normal", "weight_kg": 60, "reps": 8}]}]
	}}`, string(rec.Body))
}

func TestExercisesList(t *testing.T) {
	_, rec, err := runCLI(t,
		respondJSON(`{"exercise_templates":[]}`),
		"exercises", "list", "--page-size", "100")
	require.NoError(t, err)
	assert.Equal(t, "/v1/exercise_templates", rec.Path)
	assert.Equal(t, "100", rec.Query["page_size"])
}

func TestExercisesHistory(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"exercise_history":[]}`),
		"exercises", "history", "t1", "--start-date", "2024-01-01", "--end-date", "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, "/v1/exercise_history/t1", rec.Path)
	assert.Equal(t, "2024-01-01", rec.Query["startDate"])
	assert.Equal(t, "2024-02-01", rec.Query["endDate"])
	assert.Contains(t, out, "No exercise history found.")
}

func TestExercisesCreate(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"exercise_template":{"id":"t1","title":"Cable Fly"}}`),
		"exercises", "create",
		"--title", "Cable Fly",
		"--exercise-type", "weight_reps",
		"--equipment", "machine",
		"--muscle-group", "chest",
		"--other-muscles", "shoulders",
		"--other-muscles", "triceps")
	require.NoError(t, err)

	assert.Equal(t, "/v1/exercise_templates", rec.Path)
	assert.JSONEq(t, `{"exercise_template":{
		"title": "Cable Fly",
		"type": "weight_reps",
		"equipment_category": "machine",
		"primary_muscle_group": "chest",
		"secondary_muscle_groups": ["shoulders", "triceps"]
	}}`, string(rec.Body))
	assert.Contains(t, out, "Exercise template created.")
}

func TestExercisesCreateInvalidEnum(t *testing.T) {
	_, rec, err := runCLI(t, respondJSON(`{}`),
		"exercises", "create",
		"--title", "X",
		"--exercise-type", "weight_reps",
		"--equipment", "treadmill",
		"--muscle-group", "chest")
	assert.ErrorIs(t, err, hevy.ErrInvalidEnumValue)
	assert.Contains(t, err.Error(), "--equipment")
	assert.Nil(t, rec)
}

func TestFoldersCreate(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"routine_folder":{"id":42,"title":"Strength"}}`),
		"folders", "create", "--name", "Strength")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/v1/routine_folders", rec.Path)
	assert.JSONEq(t, `{"routine_folder":{"title":"Strength"}}`, string(rec.Body))
	assert.Contains(t, out, "Folder created.")
}

func TestFoldersGet(t *testing.T) {
	out, rec, err := runCLI(t,
		respondJSON(`{"routine_folder":{"id":42,"title":"Strength"}}`),
		"folders", "get", "42")
	require.NoError(t, err)
	assert.Equal(t, "/v1/routine_folders/42", rec.Path)
	assert.Contains(t, out, "Strength")
}

func TestAPIErrorSurfaces(t *testing.T) {
	_, _, err := runCLI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"workout not found"}`))
	}, "workouts", "get", "nope")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "workout not found")
}

func TestMissingCredential(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(auth.EnvAPIKey, "")

	a := NewWithOpts(Opts{Out: &bytes.Buffer{}})
	err := a.Execute([]string{"workouts", "list"})
	assert.ErrorIs(t, err, auth.ErrMissingCredential)
}

func TestConfigFileDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "hevyctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("page_size: 3\noutput: json\n"), 0o600))

	out, rec, err := runCLI(t,
		respondJSON(`{"workouts":[{"id":"w1"}]}`),
		"--config", cfgPath, "workouts", "list")
	require.NoError(t, err)
	assert.Equal(t, "3", rec.Query["page_size"], "config page_size applies when the flag is absent")
	assert.Contains(t, out, `"id": "w1"`, "config output mode applies when --json is absent")
}

func TestConfigDefaultsYieldToFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "hevyctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("page_size: 3\n"), 0o600))

	_, rec, err := runCLI(t, respondJSON(`{"workouts":[]}`),
		"--config", cfgPath, "workouts", "list", "--page-size", "8")
	require.NoError(t, err)
	assert.Equal(t, "8", rec.Query["page_size"])
}

func TestConfigAPIKeyUsedWhenNoFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(auth.EnvAPIKey, "")

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		w.Write([]byte(`{"workouts":[]}`))
	}))
	t.Cleanup(srv.Close)

	cfgPath := filepath.Join(t.TempDir(), "hevyctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("api_key: config-key\n"), 0o600))

	a := NewWithOpts(Opts{Out: &bytes.Buffer{}})
	err := a.Execute([]string{"--base-url", srv.URL, "--config", cfgPath, "workouts", "list"})
	require.NoError(t, err)
	assert.Equal(t, "config-key", gotKey)
}

func TestUnknownCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	a := NewWithOpts(Opts{Out: &bytes.Buffer{}})
	err := a.Execute([]string{"--api-key", "k", "bogus"})
	assert.Error(t, err)
}
