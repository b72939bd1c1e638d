// Command students is the menu-driven student grading tracker.
//
// Student records are kept in memory and written to records.txt (or the
// configured backend) after every change.
//
//	go run ./cmd/students --config=config/local.yaml
//
// or with defaults and no config file at all:
//
//	go run ./cmd/students
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/records-cli/internal/app"
	"github.com/aanand-mishra/records-cli/internal/config"
	"github.com/aanand-mishra/records-cli/internal/logger"
)

func main() {
	cfg := config.MustLoad()

	logOut, closeLog, err := logger.Open(cfg.LogFile)
	if err != nil {
		slog.Error("failed to open log file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLog()

	log := logger.New(cfg.Env, "students", logOut, cfg.LogFile == "")
	log.Info("starting students",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Backend))

	if err := app.RunStudents(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Error("students stopped", slog.String("error", err.Error()))
		closeLog()
		os.Exit(1)
	}

	log.Info("students stopped")
}
