package app

import (
	"github.com/spf13/cobra"

	"hevyctl/internal/hevy"
	"hevyctl/internal/render"
	"hevyctl/internal/request"
)

func (a *App) routinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routines",
		Short: "Manage routines",
	}
	cmd.AddCommand(
		a.routinesListCmd(),
		a.routinesGetCmd(),
		a.routinesCreateCmd(),
		a.routinesUpdateCmd(),
	)
	return cmd
}

func (a *App) routinesListCmd() *cobra.Command {
	var (
		page, pageSize int
		all            bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := a.effectivePageSize(cmd, pageSize)
			if all {
				body, err := a.client.ListAll(cmd.Context(), hevy.Routines, size)
				if err != nil {
					return err
				}
				a.show(body, render.Routines)
				return nil
			}
			spec, err := request.List(hevy.Routines, request.Page{Page: page, Size: size})
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.Routines)
		},
	}
	addPageFlags(cmd, &page, &pageSize, &all, hevy.Routines.PageSizeLimit())
	return cmd
}

func (a *App) routinesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROUTINE_ID",
		Short: "Get a single routine by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.Get(hevy.Routines, args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.RoutineDetail)
		},
	}
}

func (a *App) routinesCreateCmd() *cobra.Command {
	var (
		title, notes, exercisesJSON string
		folderID                    int
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new routine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := request.CreateRoutine(request.RoutineDraft{
				Title:         title,
				FolderID:      intPtrIfSet(cmd, "folder-id", &folderID),
				Notes:         stringPtrIfSet(cmd, "notes", &notes),
				ExercisesJSON: exercisesJSON,
			})
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Routine created.")
			a.show(body, render.RoutineDetail)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&title, "title", "", "routine title (required)")
	fl.IntVar(&folderID, "folder-id", 0, "folder to place the routine in")
	fl.StringVar(&notes, "notes", "", "routine notes")
	fl.StringVar(&exercisesJSON, "exercises-json", "", "JSON string or @file path for the exercises array")
	return cmd
}

func (a *App) routinesUpdateCmd() *cobra.Command {
	var title, notes, exercisesJSON string
	cmd := &cobra.Command{
		Use:   "update ROUTINE_ID",
		Short: "Update an existing routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.UpdateRoutine(args[0], request.RoutinePatch{
				Title:         stringPtrIfSet(cmd, "title", &title),
				Notes:         stringPtrIfSet(cmd, "notes", &notes),
				ExercisesJSON: exercisesJSON,
			})
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Routine updated.")
			a.show(body, render.RoutineDetail)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&title, "title", "", "routine title")
	fl.StringVar(&notes, "notes", "", "routine notes")
	fl.StringVar(&exercisesJSON, "exercises-json", "", "JSON string or @file path for the exercises array")
	return cmd
}
