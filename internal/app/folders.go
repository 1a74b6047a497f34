package app

import (
	"github.com/spf13/cobra"

	"hevyctl/internal/hevy"
	"hevyctl/internal/render"
	"hevyctl/internal/request"
)

func (a *App) foldersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage routine folders",
	}
	cmd.AddCommand(
		a.foldersListCmd(),
		a.foldersGetCmd(),
		a.foldersCreateCmd(),
	)
	return cmd
}

func (a *App) foldersListCmd() *cobra.Command {
	var (
		page, pageSize int
		all            bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routine folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size := a.effectivePageSize(cmd, pageSize)
			if all {
				body, err := a.client.ListAll(cmd.Context(), hevy.RoutineFolders, size)
				if err != nil {
					return err
				}
				a.show(body, render.Folders)
				return nil
			}
			spec, err := request.List(hevy.RoutineFolders, request.Page{Page: page, Size: size})
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.Folders)
		},
	}
	addPageFlags(cmd, &page, &pageSize, &all, hevy.RoutineFolders.PageSizeLimit())
	return cmd
}

func (a *App) foldersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FOLDER_ID",
		Short: "Get a routine folder by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := request.Get(hevy.RoutineFolders, args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, spec, render.FolderDetail)
		},
	}
}

func (a *App) foldersCreateCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a routine folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := request.CreateFolder(name)
			if err != nil {
				return err
			}
			body, err := a.client.Do(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.confirm("Folder created.")
			a.show(body, render.FolderDetail)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "folder name (required)")
	return cmd
}
