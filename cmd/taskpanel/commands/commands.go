package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskpanel/core/internal/adapters/storage"
	"github.com/taskpanel/core/internal/application/services"
	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/domain/taskutil"
	"github.com/taskpanel/core/internal/infrastructure/config"
	"github.com/taskpanel/core/internal/infrastructure/logger"
	"github.com/taskpanel/core/internal/infrastructure/metrics"
)

// app holds the wired dependencies a command runs against. One instance is
// built per invocation and handed down explicitly; nothing is global.
type app struct {
	cfg  *config.Config
	log  *logger.Logger
	core *services.Core
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	store := storage.NewFileStore(afero.NewOsFs(), cfg.Storage.DocumentFile(), log)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	return &app{
		cfg:  cfg,
		log:  log,
		core: services.NewCore(store, log, m, cfg.Storage.Latency),
	}, nil
}

func (a *app) close() {
	_ = a.log.Close()
}

// NewListCommand creates the list command with its task/category subcommands
func NewListCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks or categories",
	}

	var filter, sortOrder string
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			tasks, err := a.core.Tasks.GetTasks(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := a.core.Categories.GetCategories(cmd.Context())
			if err != nil {
				return err
			}

			if filter != "" {
				tasks = taskutil.FilterBy(taskutil.FilterCriterion(filter), tasks)
			}
			tasks = taskutil.SortBy(taskutil.SortCriterion(sortOrder), tasks)

			printTasks(tasks, categories)
			return nil
		},
	}
	tasksCmd.Flags().StringVar(&filter, "filter", "", "only-important, only-completed or only-active")
	tasksCmd.Flags().StringVar(&sortOrder, "sort", "", "name-asc, name-desc, created-asc, created-desc, deadline-asc, deadline-desc, priority-asc (default priority-desc)")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			categories, err := a.core.Categories.GetCategories(cmd.Context())
			if err != nil {
				return err
			}

			for _, category := range categories {
				fmt.Printf("%s  %-24s %s (utworzono %s)\n",
					category.ID, category.Name,
					taskutil.CategoryIcon(&category),
					category.CreatedAt.Format("02.01.2006"))
			}
			return nil
		},
	}

	listCmd.AddCommand(tasksCmd)
	listCmd.AddCommand(categoriesCmd)
	return listCmd
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate task statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			snapshot, err := a.core.Stats.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Zadania: %d (główne %d, dzienne %d, zarchiwizowane %d)\n",
				snapshot.TotalTasks, snapshot.MainTasks, snapshot.DailyTasks, snapshot.ArchivedTasks)
			fmt.Printf("Kategorie: %d\n", snapshot.TotalCategories)
			for _, slice := range snapshot.ByStatus {
				fmt.Printf("  %-20s %3d%%\n", slice.Label, slice.Percent)
			}
			fmt.Printf("Do końca dnia: %s\n", snapshot.TimeToEndOfDay.Round(1e9))
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print TaskPanel version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("TaskPanel Core v1.0.0")
		},
	}
}

func printTasks(tasks []entities.Task, categories []entities.TaskCategory) {
	byID := make(map[string]entities.TaskCategory, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	for _, task := range tasks {
		categoryName := "Brak"
		if task.CategoryID != nil {
			if category, ok := byID[*task.CategoryID]; ok {
				categoryName = category.Name
			}
		}

		marker := " "
		if task.IsArchived {
			marker = "A"
		}

		progress := ""
		if len(task.SubTasks) > 0 {
			progress = fmt.Sprintf(" [%d%%]", taskutil.PercentOfCompletedSubTasks(task))
		}

		fmt.Printf("%s %s  %-30s %-14s %-22s %-12s %s%s\n",
			marker, task.ID, task.Name, task.Status,
			task.Priority.DisplayName(), categoryName,
			taskutil.FormatTimeWindow(task), progress)
	}
}

func parseTaskType(value string) (entities.TaskType, error) {
	switch strings.ToLower(value) {
	case "main":
		return entities.TypeMain, nil
	case "daily":
		return entities.TypeDaily, nil
	}
	return "", fmt.Errorf("unknown task type %q (want main or daily)", value)
}

func parsePriority(value string) (entities.TaskPriority, error) {
	switch strings.ToLower(value) {
	case "low":
		return entities.PriorityLow, nil
	case "medium":
		return entities.PriorityMedium, nil
	case "high":
		return entities.PriorityHigh, nil
	case "very-high":
		return entities.PriorityVeryHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q (want low, medium, high or very-high)", value)
}
