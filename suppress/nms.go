package suppress

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nvr-ai/go-nms/images"
)

// LengthMismatchError reports index-aligned inputs of unequal length.
//
// scores[i], boxes[i] and areas[i] must all refer to the same box;
// silently zipping to the shorter length would compare the wrong boxes,
// so a mismatch fails fast instead.
type LengthMismatchError struct {
	// What names the sequence whose length disagrees.
	What string
	// Got is the offending length, Want the expected one.
	Got, Want int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("suppress: %s has length %d, want %d", e.What, e.Got, e.Want)
}

// Class runs greedy Non-Maximum Suppression for a single class.
//
// Candidates are built from every index whose score lies strictly above
// cfg.ScoreThreshold, stably sorted by descending score (ties keep input
// order, which makes the output reproducible), and then reduced by the
// greedy loop: accept the highest-scoring candidate, drop every
// remaining one whose IoU against it reaches cfg.IoUThreshold, repeat.
// The working list strictly shrinks every round, so the loop runs at
// most len(scores) times.
//
// Scores and thresholds are not validated for finiteness. A NaN score
// never compares above the threshold, so NaN candidates are filtered
// out; a NaN threshold admits no candidate (score filter) or suppresses
// none (IoU filter), per Go float comparison semantics.
//
// Arguments:
//   - scores: Per-box scores for this class.
//   - boxes: The shared box sequence, index-aligned with scores.
//   - areas: Precomputed areas, index-aligned with boxes (see images.Areas).
//   - cfg: Suppression parameters; nil means DefaultConfig.
//
// Returns:
//   - The accepted candidates in acceptance (descending score) order.
//   - ok=false when no candidate clears the score threshold; the class
//     is then absent, not empty, and callers must omit it entirely.
//   - A LengthMismatchError when the inputs are not index-aligned.
func Class(scores []float32, boxes []images.Box, areas []float32, cfg *Config) ([]Candidate, bool, error) {
	if len(scores) != len(boxes) {
		return nil, false, &LengthMismatchError{What: "scores", Got: len(scores), Want: len(boxes)}
	}
	if len(areas) != len(boxes) {
		return nil, false, &LengthMismatchError{What: "areas", Got: len(areas), Want: len(boxes)}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	pending := make([]Candidate, 0, len(scores))
	for i, score := range scores {
		if score > cfg.ScoreThreshold {
			pending = append(pending, Candidate{Score: score, Box: boxes[i], Area: areas[i]})
		}
	}
	if len(pending) == 0 {
		return nil, false, nil
	}

	// Stable descending sort on score only. SliceStable is documented
	// stable, and the strict > comparator keeps equal scores in input
	// order.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Score > pending[j].Score
	})

	accepted := make([]Candidate, 0, len(pending))
	for len(pending) > 0 {
		highest := pending[0]
		accepted = append(accepted, highest)

		// Filter survivors in place. Writes trail reads by at least one
		// slot, so reusing the backing array is safe.
		kept := pending[:0]
		for _, cand := range pending[1:] {
			if images.CalculateIoU(cand.Box, highest.Box, cand.Area, highest.Area) < cfg.IoUThreshold {
				kept = append(kept, cand)
			}
		}
		pending = kept
	}

	return accepted, true, nil
}

// All runs per-class suppression across every class against one shared
// box set.
//
// Box areas are computed exactly once and shared read-only across all
// classes. Classes whose every score falls at or below the threshold
// are omitted from the output entirely; the surviving classes keep
// their input order.
//
// With cfg.Workers above 1 the classes are dispatched to a goroutine
// pool. Each worker only reads the shared boxes/areas and writes its
// own result slot, so no synchronization beyond the pool itself is
// needed and the output matches the serial path exactly.
//
// Arguments:
//   - labels: Class labels, index-aligned with scoresByClass.
//   - scoresByClass: One score sequence per class, each index-aligned
//     with boxes.
//   - boxes: The shared box sequence.
//   - cfg: Suppression parameters; nil means DefaultConfig.
//
// Returns:
//   - One ClassResult per class with at least one surviving candidate.
//   - The first contract violation encountered, if any.
func All(labels []string, scoresByClass [][]float32, boxes []images.Box, cfg *Config) ([]ClassResult, error) {
	if len(labels) != len(scoresByClass) {
		return nil, &LengthMismatchError{What: "labels", Got: len(labels), Want: len(scoresByClass)}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	areas := images.Areas(boxes)

	type slot struct {
		candidates []Candidate
		ok         bool
		err        error
	}
	slots := make([]slot, len(labels))

	run := func(c int) {
		candidates, ok, err := Class(scoresByClass[c], boxes, areas, cfg)
		slots[c] = slot{candidates: candidates, ok: ok, err: err}
	}

	if cfg.Workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for c := range jobs {
					run(c)
				}
			}()
		}
		for c := range labels {
			jobs <- c
		}
		close(jobs)
		wg.Wait()
	} else {
		for c := range labels {
			run(c)
		}
	}

	results := make([]ClassResult, 0, len(labels))
	for c, s := range slots {
		if s.err != nil {
			return nil, s.err
		}
		if !s.ok {
			continue
		}
		results = append(results, ClassResult{Label: labels[c], Candidates: s.candidates})
	}
	return results, nil
}
