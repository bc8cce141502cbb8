// cc-todo-tui is the interactive list view over Claude Code todo
// sessions, with cursor navigation and fuzzy project filtering.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/aggregate"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/claudedir"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/config"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/logging"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/ui"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/watch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cc-todo-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	logging.Setup("cc-todo-tui")

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[MAIN] config ignored: %v", err)
	}

	todosDir := cfg.TodosDir
	if todosDir == "" {
		if todosDir, err = claudedir.TodosDir(); err != nil {
			return err
		}
	}
	currentPath := cfg.CurrentFile
	if currentPath == "" {
		if currentPath, err = claudedir.CurrentTodosPath(); err != nil {
			return err
		}
	}

	resolver, err := claudedir.NewResolver(cfg.ProjectsDir)
	if err != nil {
		return err
	}
	agg, err := aggregate.New(todosDir, currentPath, resolver,
		cfg.SessionLimit, todo.ParseProjectSortMode(cfg.ProjectSort))
	if err != nil {
		return err
	}

	watcher := watch.New(todosDir, currentPath, cfg.ForceRefresh())
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("[MAIN] watcher stopped: %v", err)
		}
	}()

	p := tea.NewProgram(ui.New(agg, watcher), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
