package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ekisa-team/campus/internal/config"
	"github.com/ekisa-team/campus/internal/env"
	"github.com/ekisa-team/campus/internal/envvar"
	"github.com/ekisa-team/campus/internal/logger"
	"github.com/ekisa-team/campus/internal/report"
	"github.com/ekisa-team/campus/internal/seed"
	"github.com/ekisa-team/campus/internal/xfs"
)

func main() {
	if xfs.Exists(".env") {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
			os.Exit(1)
		}
	}

	logFile := os.Getenv(envvar.CampusLogFile)
	slog.SetDefault(
		logger.New(env.FromEnv(),
			logger.WithLogToFile(logFile != ""),
			logger.WithLogFile(logFile),
		),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("campus failed", "error", err)
		os.Exit(1)
	}
}

func defaultRosterPath() string {
	if p := os.Getenv(envvar.CampusConfigPath); p != "" {
		return p
	}
	return config.DefaultRosterPath()
}

// run loads the roster and prints the requested listing. With -watch it keeps
// reloading the roster until ctx is done.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("campus", flag.ContinueOnError)
	var (
		flagConfigPath = fs.String("config", defaultRosterPath(), "Path to roster file")
		flagSchemaPath = fs.String("schema", "", "Path to schema file (built-in schema when empty)")
		flagStudent    = fs.String("student", "", "Print the transcript of this student ID")
		flagCourse     = fs.String("course", "", "Print the grade sheet of this course ID")
		flagWatch      = fs.Bool("watch", false, "Reload the roster whenever it changes")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rosterPath := xfs.ExpandTilde(*flagConfigPath)
	schemaPath := xfs.ExpandTilde(*flagSchemaPath)
	manager := seed.NewManager()

	render := func() error {
		reg := manager.Registry()
		switch {
		case *flagStudent != "":
			return report.Transcript(stdout, reg, *flagStudent)
		case *flagCourse != "":
			return report.GradeSheet(stdout, reg, *flagCourse)
		default:
			return report.Summary(stdout, reg)
		}
	}

	if !*flagWatch {
		cfg, err := config.LoadAndValidate(rosterPath, schemaPath)
		if err != nil {
			return err
		}
		if err := manager.LoadFromConfig(ctx, cfg); err != nil {
			return err
		}
		return render()
	}

	watcher, err := config.NewWatcher(rosterPath, schemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload roster", "error", err)
			return
		}

		if err := manager.LoadFromConfig(ctx, cfg); err != nil {
			slog.Error("Failed to load roster into registry", "error", err)
			return
		}
		if err := render(); err != nil {
			slog.Error("Failed to print report", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create roster watcher: %w", err)
	}
	defer watcher.Close()

	if err := manager.LoadFromConfig(ctx, watcher.Snapshot()); err != nil {
		return err
	}
	if err := render(); err != nil {
		return err
	}

	slog.Info("Watching roster", "config", rosterPath)
	<-ctx.Done()

	return nil
}
