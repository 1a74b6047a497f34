// Package render formats API responses for the terminal.
//
// Structured mode emits the response body verbatim (pretty-printed); it is
// the mode automation should scrape identifiers from. Tabular mode projects
// a resource-specific subset of fields for human scanning, degrades to "-"
// when a field is absent, and is lossy on purpose.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSON emits the raw response body, pretty-printed, preserving every field.
func JSON(w io.Writer, body []byte) {
	out := pretty.Pretty(body)
	w.Write(out)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		fmt.Fprintln(w)
	}
}

// Workouts renders a workout listing.
func Workouts(w io.Writer, body []byte) {
	workouts := gjson.GetBytes(body, "workouts").Array()
	if len(workouts) == 0 {
		fmt.Fprintln(w, "No workouts found.")
		return
	}
	fmt.Fprintf(w, "Workouts (page %s/%s)\n", orDash(gjson.GetBytes(body, "page")), orDash(gjson.GetBytes(body, "page_count")))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tDATE\tDURATION\tEXERCISES")
	for _, wk := range workouts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			wk.Get("id").String(),
			title(wk),
			formatTime(wk.Get("start_time")),
			duration(wk.Get("start_time"), wk.Get("end_time")),
			len(wk.Get("exercises").Array()),
		)
	}
	tw.Flush()
}

// WorkoutDetail renders a single workout with its exercises and sets.
func WorkoutDetail(w io.Writer, body []byte) {
	wk := unwrap(body, "workout")
	fmt.Fprintf(w, "%s  %s  (%s)\n", title(wk), formatTime(wk.Get("start_time")), duration(wk.Get("start_time"), wk.Get("end_time")))
	if desc := wk.Get("description").String(); desc != "" {
		fmt.Fprintln(w, desc)
	}
	exercises := wk.Get("exercises").Array()
	if len(exercises) == 0 {
		fmt.Fprintln(w, "No exercises.")
		return
	}
	for _, ex := range exercises {
		printExercise(w, ex)
	}
}

// WorkoutCount renders the total workout count.
func WorkoutCount(w io.Writer, body []byte) {
	count := gjson.GetBytes(body, "workout_count")
	if !count.Exists() {
		count = gjson.ParseBytes(body)
	}
	fmt.Fprintf(w, "Total workouts: %s\n", count.String())
}

// WorkoutEvents renders the workout update/delete event feed.
func WorkoutEvents(w io.Writer, body []byte) {
	events := gjson.GetBytes(body, "events").Array()
	if len(events) == 0 {
		fmt.Fprintln(w, "No workout events found.")
		return
	}
	fmt.Fprintf(w, "Workout Events (page %s/%s)\n", orDash(gjson.GetBytes(body, "page")), orDash(gjson.GetBytes(body, "page_count")))
	tw := newTable(w)
	fmt.Fprintln(tw, "TYPE\tWORKOUT ID\tWHEN")
	for _, e := range events {
		when := e.Get("timestamp")
		if !when.Exists() {
			when = e.Get("created_at")
		}
		workoutID := e.Get("workout_id")
		if !workoutID.Exists() {
			workoutID = e.Get("workout.id")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", orDash(e.Get("type")), workoutID.String(), formatTime(when))
	}
	tw.Flush()
}

// Routines renders a routine listing.
func Routines(w io.Writer, body []byte) {
	routines := gjson.GetBytes(body, "routines").Array()
	if len(routines) == 0 {
		fmt.Fprintln(w, "No routines found.")
		return
	}
	fmt.Fprintf(w, "Routines (page %s/%s)\n", orDash(gjson.GetBytes(body, "page")), orDash(gjson.GetBytes(body, "page_count")))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tFOLDER\tEXERCISES")
	for _, r := range routines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			r.Get("id").String(),
			title(r),
			orDash(r.Get("folder_id")),
			len(r.Get("exercises").Array()),
		)
	}
	tw.Flush()
}

// RoutineDetail renders a single routine with its exercises and sets.
func RoutineDetail(w io.Writer, body []byte) {
	r := unwrap(body, "routine")
	// Some endpoints return the routine wrapped in a one-element array.
	if r.IsArray() {
		items := r.Array()
		if len(items) == 0 {
			fmt.Fprintln(w, "No routine data returned.")
			return
		}
		r = items[0]
	}
	header := title(r)
	if folder := r.Get("folder_id"); folder.Exists() && folder.Type != gjson.Null {
		header += fmt.Sprintf("  (folder: %s)", folder.String())
	}
	fmt.Fprintln(w, header)
	if notes := r.Get("notes").String(); notes != "" {
		fmt.Fprintln(w, notes)
	}
	for _, ex := range r.Get("exercises").Array() {
		printExercise(w, ex)
	}
}

// Templates renders an exercise template listing.
func Templates(w io.Writer, body []byte) {
	templates := gjson.GetBytes(body, "exercise_templates").Array()
	if len(templates) == 0 {
		fmt.Fprintln(w, "No exercise templates found.")
		return
	}
	fmt.Fprintf(w, "Exercise Templates (page %s/%s)\n", orDash(gjson.GetBytes(body, "page")), orDash(gjson.GetBytes(body, "page_count")))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tPRIMARY MUSCLE\tCUSTOM")
	for _, t := range templates {
		custom := ""
		if t.Get("is_custom").Bool() {
			custom = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Get("id").String(),
			t.Get("title").String(),
			t.Get("type").String(),
			t.Get("primary_muscle_group").String(),
			custom,
		)
	}
	tw.Flush()
}

// TemplateDetail renders a single exercise template.
func TemplateDetail(w io.Writer, body []byte) {
	t := unwrap(body, "exercise_template")
	secondary := "-"
	if groups := t.Get("secondary_muscle_groups").Array(); len(groups) > 0 {
		names := make([]string, len(groups))
		for i, g := range groups {
			names[i] = g.String()
		}
		secondary = strings.Join(names, ", ")
	}
	custom := "no"
	if t.Get("is_custom").Bool() {
		custom = "yes"
	}
	fmt.Fprintf(w, "Template %s\n", t.Get("id").String())
	fmt.Fprintf(w, "%s\n", t.Get("title").String())
	fmt.Fprintf(w, "Type: %s\n", t.Get("type").String())
	fmt.Fprintf(w, "Primary muscle: %s\n", t.Get("primary_muscle_group").String())
	fmt.Fprintf(w, "Secondary: %s\n", secondary)
	fmt.Fprintf(w, "Custom: %s\n", custom)
}

// History renders exercise history entries for a template.
func History(w io.Writer, body []byte, templateID string) {
	entries := gjson.GetBytes(body, "exercise_history").Array()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No exercise history found.")
		return
	}
	fmt.Fprintf(w, "Exercise History for %s\n", templateID)
	tw := newTable(w)
	fmt.Fprintln(tw, "WORKOUT\tDATE\tSET TYPE\tWEIGHT (KG)\tREPS\tRPE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Get("workout_title").String(),
			formatTime(e.Get("workout_start_time")),
			e.Get("set_type").String(),
			orDash(e.Get("weight_kg")),
			orDash(e.Get("reps")),
			orDash(e.Get("rpe")),
		)
	}
	tw.Flush()
}

// Folders renders a routine folder listing.
func Folders(w io.Writer, body []byte) {
	folders := gjson.GetBytes(body, "routine_folders").Array()
	if len(folders) == 0 {
		fmt.Fprintln(w, "No routine folders found.")
		return
	}
	fmt.Fprintf(w, "Routine Folders (page %s/%s)\n", orDash(gjson.GetBytes(body, "page")), orDash(gjson.GetBytes(body, "page_count")))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tUPDATED")
	for _, f := range folders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			f.Get("id").String(),
			f.Get("title").String(),
			formatTime(f.Get("created_at")),
			formatTime(f.Get("updated_at")),
		)
	}
	tw.Flush()
}

// FolderDetail renders a single routine folder.
func FolderDetail(w io.Writer, body []byte) {
	f := unwrap(body, "routine_folder")
	fmt.Fprintf(w, "%s\n", f.Get("title").String())
	fmt.Fprintf(w, "ID: %s\n", f.Get("id").String())
	fmt.Fprintf(w, "Created: %s\n", formatTime(f.Get("created_at")))
	fmt.Fprintf(w, "Updated: %s\n", formatTime(f.Get("updated_at")))
}

// printExercise writes one exercise block with its per-set lines, e.g.
//
//	Bench Press
//	  Note: pause reps
//	  Set 1: 60kg x8 RPE 8
func printExercise(w io.Writer, ex gjson.Result) {
	name := ex.Get("title").String()
	if name == "" {
		name = "Unknown"
	}
	fmt.Fprintf(w, "\n%s\n", name)
	if notes := ex.Get("notes").String(); notes != "" {
		fmt.Fprintf(w, "  Note: %s\n", notes)
	}
	for i, s := range ex.Get("sets").Array() {
		fmt.Fprintf(w, "  Set %d: %s\n", i+1, setLine(s))
	}
}

func setLine(s gjson.Result) string {
	var parts []string
	if t := s.Get("type").String(); t != "" && t != "normal" {
		parts = append(parts, "["+t+"]")
	}
	if v := s.Get("weight_kg"); v.Exists() && v.Type != gjson.Null {
		parts = append(parts, formatNum(v.Num)+"kg")
	}
	if v := s.Get("reps"); v.Exists() && v.Type != gjson.Null {
		parts = append(parts, "x"+formatNum(v.Num))
	}
	if v := s.Get("distance_meters"); v.Exists() && v.Type != gjson.Null {
		parts = append(parts, formatNum(v.Num)+"m")
	}
	if v := s.Get("duration_seconds"); v.Exists() && v.Type != gjson.Null {
		parts = append(parts, formatNum(v.Num)+"s")
	}
	if v := s.Get("rpe"); v.Exists() && v.Type != gjson.Null {
		parts = append(parts, "RPE "+formatNum(v.Num))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// unwrap returns body[key] when the response nests the resource under its
// wrapper key, or the whole document when it does not.
func unwrap(body []byte, key string) gjson.Result {
	if r := gjson.GetBytes(body, key); r.Exists() {
		return r
	}
	return gjson.ParseBytes(body)
}

func title(r gjson.Result) string {
	if t := r.Get("title").String(); t != "" {
		return t
	}
	return "Untitled"
}

// formatTime renders an ISO-8601 or epoch timestamp as "2006-01-02 15:04",
// or "-" when absent or unparseable.
func formatTime(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null {
		return "-"
	}
	if v.Type == gjson.Number {
		return time.Unix(int64(v.Num), 0).UTC().Format("2006-01-02 15:04")
	}
	t, err := time.Parse(time.RFC3339, v.String())
	if err != nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// duration renders the span between two timestamps in whole minutes.
func duration(start, end gjson.Result) string {
	s, err1 := toEpoch(start)
	e, err2 := toEpoch(end)
	if err1 != nil || err2 != nil || e < s {
		return "-"
	}
	return strconv.Itoa(int((e-s)/60)) + "m"
}

func toEpoch(v gjson.Result) (int64, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return 0, fmt.Errorf("no timestamp")
	}
	if v.Type == gjson.Number {
		return int64(v.Num), nil
	}
	t, err := time.Parse(time.RFC3339, v.String())
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func orDash(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null || v.String() == "" {
		return "-"
	}
	return v.String()
}
