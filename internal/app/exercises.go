package app

import (
	"io"

	"github.com/spf13/cobra"

	"hevyctl/internal/hevy"
	"hevyctl/internal/render"
	"hevyctl/internal/request"
)

func (a *App) exercisesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Manage exercise templates",
	}
	cmd.AddCommand(
		a.exercisesListCmd(),
		a.exercisesGetCmd(),
		a.exercisesHistoryCmd(),
		a.exercisesCreateCmd(),
	)
	return cmd
}

func (a *App) exercisesListCmd() *cobra.Command {
	var (
		page, pageSize int
		all            bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exercise templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := a.effectivePageSize(cmd, pageSize)
			if all {
				body, err := a.client.ListAll(cmd.Context(), hevy.ExerciseTemplates, size)
				if err != nil {
					return err
				}
				a.show(body, render.Templates)
				return nil
			}
			spec, err := request.List(hevy.ExerciseTemplates, request.Page{Page: page, Size: size})
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.Templates)
		},
	}
	addPageFlags(cmd, &page, &pageSize, &all, hevy.ExerciseTemplates.PageSizeLimit())
	return cmd
}

func (a *App) exercisesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID",
		Short: "Get an exercise template by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.Get(hevy.ExerciseTemplates, args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.TemplateDetail)
		},
	}
}

func (a *App) exercisesHistoryCmd() *cobra.Command {
	var startDate, endDate string
	cmd := &cobra.Command{
		Use:   "history TEMPLATE_ID",
		Short: "Get exercise history for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.TemplateHistory(args[0], startDate, endDate)
			if err != nil {
				return err
			}
			return a.run(cmd, spec, func(w io.Writer, body []byte) {
				render.History(w, body, args[0])
			})
		},
	}
	cmd.Flags().StringVar(&startDate, "start-date", "", "ISO-8601 start date filter")
	cmd.Flags().StringVar(&endDate, "end-date", "", "ISO-8601 end date filter")
	return cmd
}

func (a *App) exercisesCreateCmd() *cobra.Command {
	var (
		title, exerciseType, equipment, muscleGroup string
		otherMuscles                                []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom exercise template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := request.CreateTemplate(request.TemplateDraft{
				Title:           title,
				ExerciseType:    exerciseType,
				Equipment:       equipment,
				PrimaryMuscle:   muscleGroup,
				SecondaryMuscle: otherMuscles,
			})
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Exercise template created.")
			a.show(body, render.TemplateDetail)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&title, "title", "", "template title (required)")
	fl.StringVar(&exerciseType, "exercise-type", "", "exercise type (required)")
	fl.StringVar(&equipment, "equipment", "", "equipment category (required)")
	fl.StringVar(&muscleGroup, "muscle-group", "", "primary muscle group (required)")
	fl.StringArrayVar(&otherMuscles, "other-muscles", nil, "secondary muscle group (repeatable)")
	return cmd
}
