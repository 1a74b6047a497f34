package app

import (
	"github.com/spf13/cobra"

	"hevyctl/internal/hevy"
	"hevyctl/internal/render"
	"hevyctl/internal/request"
)

func (a *App) workoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "Manage workouts",
	}
	cmd.AddCommand(
		a.workoutsListCmd(),
		a.workoutsGetCmd(),
		a.workoutsCountCmd(),
		a.workoutsEventsCmd(),
		a.workoutsCreateCmd(),
		a.workoutsUpdateCmd(),
	)
	return cmd
}

func (a *App) workoutsListCmd() *cobra.Command {
	var (
		page, pageSize int
		all            bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := a.effectivePageSize(cmd, pageSize)
			if all {
				body, err := a.client.ListAll(cmd.Context(), hevy.Workouts, size)
				if err != nil {
					return err
				}
				a.show(body, render.Workouts)
				return nil
			}
			spec, err := request.List(hevy.Workouts, request.Page{Page: page, Size: size})
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.Workouts)
		},
	}
	addPageFlags(cmd, &page, &pageSize, &all, hevy.Workouts.PageSizeLimit())
	return cmd
}

func (a *App) workoutsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get WORKOUT_ID",
		Short: "Get a single workout by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.Get(hevy.Workouts, args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.WorkoutDetail)
		},
	}
}

func (a *App) workoutsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Get total workout count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, request.WorkoutCount(), render.WorkoutCount)
		},
	}
}

func (a *App) workoutsEventsCmd() *cobra.Command {
	var (
		page, pageSize int
		since          string
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Get workout update/delete events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := request.WorkoutEvents(request.Page{Page: page, Size: a.effectivePageSize(cmd, pageSize)}, since)
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.WorkoutEvents)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 5, "items per page (1-10)")
	cmd.Flags().StringVar(&since, "since", "1970-01-01T00:00:00Z", "ISO-8601 datetime to filter from")
	return cmd
}

func (a *App) workoutsCreateCmd() *cobra.Command {
	var (
		title, description, startTime, endTime, exercisesJSON string
		isPrivate                                             bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := request.CreateWorkout(request.WorkoutDraft{
				Title:         title,
				StartTime:     startTime,
				EndTime:       endTime,
				Description:   stringPtrIfSet(cmd, "description", &description),
				IsPrivate:     isPrivate,
				ExercisesJSON: exercisesJSON,
			})
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Workout created.")
			a.show(body, render.WorkoutDetail)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&title, "title", "", "workout title (required)")
	fl.StringVar(&description, "description", "", "workout description")
	fl.StringVar(&startTime, "start-time", "", "ISO-8601 start time (required)")
	fl.StringVar(&endTime, "end-time", "", "ISO-8601 end time (required)")
	fl.BoolVar(&isPrivate, "is-private", false, "mark the workout private")
	fl.StringVar(&exercisesJSON, "exercises-json", "", "JSON string or @file path for the exercises array")
	return cmd
}

func (a *App) workoutsUpdateCmd() *cobra.Command {
	var (
		title, description, startTime, endTime, exercisesJSON string
		isPrivate                                             bool
	)
	cmd := &cobra.Command{
		Use:   "update WORKOUT_ID",
		Short: "Update an existing workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.UpdateWorkout(args[0], request.WorkoutPatch{
				Title:         stringPtrIfSet(cmd, "title", &title),
				Description:   stringPtrIfSet(cmd, "description", &description),
				StartTime:     stringPtrIfSet(cmd, "start-time", &startTime),
				EndTime:       stringPtrIfSet(cmd, "end-time", &endTime),
				IsPrivate:     boolPtrIfSet(cmd, "is-private", &isPrivate),
				ExercisesJSON: exercisesJSON,
			})
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Workout updated.")
			a.show(body, render.WorkoutDetail)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&title, "title", "", "workout title")
	fl.StringVar(&description, "description", "", "workout description")
	fl.StringVar(&startTime, "start-time", "", "ISO-8601 start time")
	fl.StringVar(&endTime, "end-time", "", "ISO-8601 end time")
	fl.BoolVar(&isPrivate, "is-private", false, "mark the workout private")
	fl.StringVar(&exercisesJSON, "exercises-json", "", "JSON string or @file path for the exercises array")
	return cmd
}
