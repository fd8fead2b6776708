package tables

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nvr-ai/go-nms/suppress"
)

// WriteResults renders suppression results as a text table: per class a
// "label:" header followed by one "x1 y1 x2 y2" row per accepted box,
// highest score first. Classes come out in the order the suppressor
// produced them; absent classes were never in the slice to begin with.
func WriteResults(w io.Writer, results []suppress.ClassResult) error {
	for _, cls := range results {
		if _, err := fmt.Fprintf(w, "%s:\n", cls.Label); err != nil {
			return err
		}
		for _, cand := range cls.Candidates {
			b := cand.Box
			if _, err := fmt.Fprintf(w, "%g %g %g %g\n", b.X1, b.Y1, b.X2, b.Y2); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteResultsJSON renders the same results as indented JSON, scores
// and areas included, for machine consumers.
func WriteResultsJSON(w io.Writer, results []suppress.ClassResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
