package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/advent-of-code/internal/config"
	"github.com/vancomm/advent-of-code/internal/solve"
	"github.com/vancomm/advent-of-code/internal/y2023"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "advent YEAR DAY PART",
	Short: "Solve an Advent of Code puzzle against its input file",
	Args:  cobra.ExactArgs(3),
	RunE:  runSolver,
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	y2023.Log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath := config.LogPath(); logPath != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
		y2023.Log.AddHook(hook)
	}
}

func newSolver(year solve.Year, day solve.Day, part solve.Part) (solve.Solver, error) {
	switch year {
	case 2023:
		return y2023.New(day, part)
	default:
		return nil, fmt.Errorf("no solvers for year %d", year)
	}
}

func runSolver(cmd *cobra.Command, args []string) error {
	year, err := solve.ParseYear(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %w", err)
	}
	day, err := solve.ParseDay(args[1])
	if err != nil {
		return fmt.Errorf("invalid day: %w", err)
	}
	part, err := solve.ParsePart(args[2])
	if err != nil {
		return fmt.Errorf("invalid part: %w", err)
	}

	solver, err := newSolver(year, day, part)
	if err != nil {
		return err
	}

	inputPath := solve.InputPath(config.InputDir(), year, day, part)
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("unable to open input file: %w", err)
	}
	defer input.Close()

	log.WithFields(logrus.Fields{
		"year":  year,
		"day":   day,
		"part":  part,
		"input": inputPath,
	}).Info("solving puzzle")

	start := time.Now()
	answer, err := solve.Run(input, solver)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("solver finished")

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

func main() {
	cobra.OnInitialize(setupLogging)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
