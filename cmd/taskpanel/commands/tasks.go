package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/ports"
)

// NewAddCommand creates the add command with its task/category subcommands
func NewAddCommand() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task or category",
	}

	var (
		taskType, start, end string
		priority, category   string
		description          string
		subTasks             []string
	)
	taskCmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedType, err := parseTaskType(taskType)
			if err != nil {
				return err
			}
			parsedPriority, err := parsePriority(priority)
			if err != nil {
				return err
			}

			req := ports.CreateTaskRequest{
				Name:        args[0],
				Type:        parsedType,
				StartDate:   start,
				EndDate:     end,
				Priority:    parsedPriority,
				Description: description,
			}
			if category != "" {
				req.CategoryID = &category
			}
			for _, name := range subTasks {
				req.SubTasks = append(req.SubTasks, entities.SubTask{Name: name})
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.core.Tasks.CreateTask(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Utworzono zadanie %s (%s)\n", task.Name, task.ID)
			return nil
		},
	}
	taskCmd.Flags().StringVar(&taskType, "type", "daily", "task type: main or daily")
	taskCmd.Flags().StringVar(&start, "start", entities.AllDay, "start: RFC 3339 for main tasks, HH:MM or \"Cały dzień\" for daily ones")
	taskCmd.Flags().StringVar(&end, "end", "", "end: RFC 3339 deadline for main tasks, HH:MM for daily ones")
	taskCmd.Flags().StringVar(&priority, "priority", "medium", "priority: low, medium, high or very-high")
	taskCmd.Flags().StringVar(&category, "category", "", "category id")
	taskCmd.Flags().StringVar(&description, "desc", "", "task description")
	taskCmd.Flags().StringArrayVar(&subTasks, "subtask", nil, "sub-task name (repeatable)")

	var icon string
	categoryCmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			category, err := a.core.Categories.CreateCategory(cmd.Context(), ports.CreateCategoryRequest{
				Name: args[0],
				Icon: icon,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Utworzono kategorię %s (%s)\n", category.Name, category.ID)
			return nil
		},
	}
	categoryCmd.Flags().StringVar(&icon, "icon", "fa-house", "icon key from the catalog")

	addCmd.AddCommand(taskCmd)
	addCmd.AddCommand(categoryCmd)
	return addCmd
}

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <task-id>",
		Short: "Archive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.core.Tasks.ArchiveTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Zarchiwizowano zadanie %s\n", task.Name)
			return nil
		},
	}
}

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <task-id>",
		Short: "Restore an archived task; a main task's deadline window moves to now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.core.Tasks.RestoreTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Przywrócono zadanie %s\n", task.Name)
			return nil
		},
	}
}

// NewDeleteCommand creates the delete command with its task/category subcommands
func NewDeleteCommand() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task or category",
	}

	deleteCmd.AddCommand(&cobra.Command{
		Use:   "task <task-id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			removed, err := a.core.Tasks.DeleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Pomyślnie usunięto zadanie %q\n", removed.Name)
			return nil
		},
	})

	deleteCmd.AddCommand(&cobra.Command{
		Use:   "category <category-id>",
		Short: "Delete a category; its tasks keep running without one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.core.Categories.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println("Pomyślnie usunięto kategorię")
			return nil
		},
	})

	return deleteCmd
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the store with example data",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			home, err := a.core.Categories.CreateCategory(cmd.Context(), ports.CreateCategoryRequest{
				Name: "Dom", Icon: "fa-house",
			})
			if err != nil {
				return err
			}
			work, err := a.core.Categories.CreateCategory(cmd.Context(), ports.CreateCategoryRequest{
				Name: "Praca", Icon: "fa-briefcase",
			})
			if err != nil {
				return err
			}

			now := time.Now()
			seeds := []ports.CreateTaskRequest{
				{
					Name:       "Zapłacić rachunki",
					Type:       entities.TypeMain,
					StartDate:  now.Format(time.RFC3339),
					EndDate:    now.Add(72 * time.Hour).Format(time.RFC3339),
					CategoryID: &home.ID,
					Priority:   entities.PriorityHigh,
					SubTasks: []entities.SubTask{
						{Name: "Prąd"},
						{Name: "Internet"},
					},
				},
				{
					Name:       "Przegląd skrzynki",
					Type:       entities.TypeDaily,
					StartDate:  "09:00",
					EndDate:    "09:30",
					CategoryID: &work.ID,
					Priority:   entities.PriorityMedium,
				},
				{
					Name:      "Spacer",
					Type:      entities.TypeDaily,
					StartDate: entities.AllDay,
					Priority:  entities.PriorityLow,
				},
			}

			for _, seed := range seeds {
				if _, err := a.core.Tasks.CreateTask(cmd.Context(), seed); err != nil {
					return err
				}
			}

			fmt.Println("Przykładowe dane zapisane")
			return nil
		},
	}
}
