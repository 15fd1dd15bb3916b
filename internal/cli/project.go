package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewProjectCmd создаёт группу команд для управления портфолио проектов.
func NewProjectCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage portfolio projects",
	}

	cmd.AddCommand(
		newProjectListCmd(clientFn, outputFn),
		newProjectShowCmd(clientFn, outputFn),
		newProjectCreateCmd(clientFn, outputFn),
		newProjectUpdateCmd(clientFn, outputFn),
		newProjectDeleteCmd(clientFn, outputFn),
	)

	return cmd
}

var projectHeaders = []string{"ID", "TITLE", "MATERIALS", "FEATURED", "ACTIVE", "CREATED"}

func projectRow(p ProjectResponse) []string {
	return []string{
		p.ID,
		truncate(p.Title, 40),
		truncate(strings.Join(p.MaterialsUsed, ", "), 40),
		strconv.FormatBool(p.IsFeatured),
		strconv.FormatBool(p.IsActive),
		p.CreatedAt,
	}
}

func newProjectListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var opts ListProjectsOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List portfolio projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			projects, err := client.ListProjects(opts)
			if err != nil {
				return err
			}

			rows := make([][]string, len(projects))
			for i, p := range projects {
				rows[i] = projectRow(p)
			}

			out.Print(projectHeaders, rows, projects)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "Only featured projects")
	cmd.Flags().BoolVar(&opts.IncludeInactive, "include-inactive", false, "Include deactivated projects")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Limit results")

	return cmd
}

func newProjectShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			project, err := client.GetProject(args[0])
			if err != nil {
				return err
			}

			out.Print(projectHeaders, [][]string{projectRow(*project)}, project)
			return nil
		},
	}
}

func newProjectCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req CreateProjectRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a portfolio project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			project, err := client.CreateProject(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Project created: %s", project.ID))
			out.Print(projectHeaders, [][]string{projectRow(*project)}, project)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Project title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Project description")
	cmd.Flags().StringSliceVar(&req.MaterialsUsed, "material", nil, "Material used (repeatable)")
	cmd.Flags().StringSliceVar(&req.Images, "image", nil, "Image URL (repeatable)")
	cmd.Flags().BoolVar(&req.IsFeatured, "featured", false, "Mark as featured")
	cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var title, description, featured, active string
	var materials, images []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a portfolio project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			req := UpdateProjectRequest{}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("material") {
				req.MaterialsUsed = materials
			}
			if cmd.Flags().Changed("image") {
				req.Images = images
			}
			if cmd.Flags().Changed("featured") {
				b, err := strconv.ParseBool(featured)
				if err != nil {
					return fmt.Errorf("invalid value for --featured: %s", featured)
				}
				req.IsFeatured = &b
			}
			if cmd.Flags().Changed("active") {
				b, err := strconv.ParseBool(active)
				if err != nil {
					return fmt.Errorf("invalid value for --active: %s", active)
				}
				req.IsActive = &b
			}

			project, err := client.UpdateProject(args[0], req)
			if err != nil {
				return err
			}

			out.Success("Project updated")
			out.Print(projectHeaders, [][]string{projectRow(*project)}, project)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringSliceVar(&materials, "material", nil, "Replace materials used (repeatable)")
	cmd.Flags().StringSliceVar(&images, "image", nil, "Replace image URLs (repeatable)")
	cmd.Flags().StringVar(&featured, "featured", "", "Set featured status (true/false)")
	cmd.Flags().StringVar(&active, "active", "", "Set active status (true/false)")

	return cmd
}

func newProjectDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a portfolio project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.DeleteProject(args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Project deleted: %s", args[0]))
			return nil
		},
	}
}
