package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/akamensky/argparse"

	"github.com/nvr-ai/go-nms/config"
	"github.com/nvr-ai/go-nms/suppress"
	"github.com/nvr-ai/go-nms/tables"
)

func main() {
	parser := argparse.NewParser("nms", "Class-wise non-maximum suppression over a score/box table pair")
	scoresPath := parser.String("s", "scores", &argparse.Options{Help: "Score table: class label header, then one row of per-class scores per box", Required: true})
	boxesPath := parser.String("b", "boxes", &argparse.Options{Help: "Box table: one 'x1 y1 x2 y2' row per box", Required: true})
	outputPath := parser.String("o", "output", &argparse.Options{Help: "Output result table (default stdout)", Required: false})
	configPath := parser.String("c", "config", &argparse.Options{Help: "YAML config file", Required: false})
	scoreThreshold := parser.Float("", "score-threshold", &argparse.Options{Help: "Exclusive minimum score (overrides config)", Required: false, Default: math.NaN()})
	iouThreshold := parser.Float("", "iou-threshold", &argparse.Options{Help: "Exclusive IoU bound (overrides config)", Required: false, Default: math.NaN()})
	workers := parser.Int("w", "workers", &argparse.Options{Help: "Classes suppressed concurrently (overrides config)", Required: false, Default: 0})
	asJSON := parser.Flag("j", "json", &argparse.Options{Help: "Emit JSON instead of the text table", Required: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if !math.IsNaN(*scoreThreshold) {
		cfg.ScoreThreshold = float32(*scoreThreshold)
	}
	if !math.IsNaN(*iouThreshold) {
		cfg.IoUThreshold = float32(*iouThreshold)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	labels, scoresByClass, err := tables.LoadScoresFile(*scoresPath)
	if err != nil {
		logger.Error("failed to load score table", "error", err)
		os.Exit(1)
	}
	boxes, err := tables.LoadBoxesFile(*boxesPath)
	if err != nil {
		logger.Error("failed to load box table", "error", err)
		os.Exit(1)
	}

	results, err := suppress.All(labels, scoresByClass, boxes, cfg.Suppression())
	if err != nil {
		logger.Error("suppression failed", "error", err)
		os.Exit(1)
	}

	kept := 0
	for _, cls := range results {
		kept += len(cls.Candidates)
	}
	logger.Info("suppression complete",
		"classes_in", len(labels),
		"classes_out", len(results),
		"boxes", len(boxes),
		"kept", kept)

	var w io.Writer = os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			logger.Error("failed to create output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if *asJSON {
		err = tables.WriteResultsJSON(w, results)
	} else {
		err = tables.WriteResults(w, results)
	}
	if err != nil {
		logger.Error("failed to write results", "error", err)
		os.Exit(1)
	}
}
