// cc-todo-live renders a continuously updating view of Claude Code todo
// sessions directly in the terminal, redrawing in place on every snapshot
// change until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/aggregate"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/claudedir"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/config"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/logging"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/render"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/todo"
	"github.com/JamesonNyp/cc-todo-hook-tracker/internal/watch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cc-todo-live:", err)
		os.Exit(1)
	}
}

func run() error {
	logging.Setup("cc-todo-live")

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
	if watcher.Polling() {
		log.Printf("[MAIN] change notifications unavailable, polling %s", todosDir)
	}

	renderer := render.New(os.Stdout, render.WithDebounce(cfg.Debounce()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		// Single consumer: events are handled to completion one at a
		// time, so no two redraws ever overlap.
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-watcher.Events():
				switch ev.Kind {
				case watch.EventRefresh:
					renderer.Redraw(agg.Aggregate(), ev.Forced)
				case watch.EventTick:
					renderer.Countdown(ev.Remaining)
				}
			}
		}
	})

	err = g.Wait()
	renderer.Finish("todo tracker stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
