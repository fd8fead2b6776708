// Package tables - text table I/O around the suppression core.
//
// Two input tables feed a run: a score table whose first non-blank line
// names the classes and whose later lines carry one score per class for
// each box, and a box table with one "x1 y1 x2 y2" row per box. The
// loader transposes the score table into per-class sequences; the only
// contract the core relies on is that scoresByClass[c][i] and boxes[i]
// describe the same box.
package tables

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/images"
	"github.com/nvr-ai/go-nms/suppress"
)

// LoadScores reads a score table and transposes it into per-class
// score sequences.
//
// Arguments:
//   - r: The table source. Lines are trimmed and blank lines skipped.
//
// Returns:
//   - The class labels from the header line.
//   - scoresByClass[class][box], index-aligned with the box table.
//   - An error naming the offending line on malformed input.
func LoadScores(r io.Reader) ([]string, [][]float32, error) {
	var (
		labels  []string
		byClass [][]float32
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if labels == nil {
			labels = fields
			byClass = make([][]float32, len(labels))
			continue
		}
		if len(fields) != len(labels) {
			return nil, nil, errors.Errorf("scores line %d: got %d scores, want %d (one per class)",
				line, len(fields), len(labels))
		}
		for c, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "scores line %d: bad score %q", line, field)
			}
			byClass[c] = append(byClass[c], float32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read score table")
	}
	if labels == nil {
		return nil, nil, errors.New("score table is empty")
	}
	return labels, byClass, nil
}

// LoadBoxes reads a box table, one "x1 y1 x2 y2" row per box.
func LoadBoxes(r io.Reader) ([]images.Box, error) {
	var boxes []images.Box

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		box, err := parseBox(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "boxes line %d", line)
		}
		boxes = append(boxes, box)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read box table")
	}
	return boxes, nil
}

// LoadResults reads a result table back, in the format WriteResults
// emits: a "label:" header followed by one coordinate row per accepted
// box. Scores and areas are not part of the format, so the returned
// candidates carry only boxes.
func LoadResults(r io.Reader) ([]suppress.ClassResult, error) {
	var results []suppress.ClassResult

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasSuffix(text, ":") {
			results = append(results, suppress.ClassResult{Label: strings.TrimSuffix(text, ":")})
			continue
		}
		if len(results) == 0 {
			return nil, errors.Errorf("results line %d: box row before any class header", line)
		}
		box, err := parseBox(strings.Fields(text))
		if err != nil {
			return nil, errors.Wrapf(err, "results line %d", line)
		}
		last := &results[len(results)-1]
		last.Candidates = append(last.Candidates, suppress.Candidate{Box: box})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read result table")
	}
	return results, nil
}

// LoadScoresFile is LoadScores over a file path.
func LoadScoresFile(path string) ([]string, [][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open score table")
	}
	defer f.Close()
	return LoadScores(f)
}

// LoadBoxesFile is LoadBoxes over a file path.
func LoadBoxesFile(path string) ([]images.Box, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open box table")
	}
	defer f.Close()
	return LoadBoxes(f)
}

// LoadResultsFile is LoadResults over a file path.
func LoadResultsFile(path string) ([]suppress.ClassResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open result table")
	}
	defer f.Close()
	return LoadResults(f)
}

func parseBox(fields []string) (images.Box, error) {
	if len(fields) != 4 {
		return images.Box{}, errors.Errorf("got %d coordinates, want 4", len(fields))
	}
	var coords [4]float32
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return images.Box{}, errors.Wrapf(err, "bad coordinate %q", field)
		}
		coords[i] = float32(v)
	}
	return images.Box{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}
