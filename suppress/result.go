// Package suppress - class-wise Non-Maximum Suppression over scored boxes.
package suppress

import "github.com/nvr-ai/go-nms/images"

// Candidate bundles one scored box with its precomputed area.
//
// Candidates are immutable values: they are built fresh for each class's
// suppression run and the area is never recomputed inside the
// elimination loop.
type Candidate struct {
	// The confidence score of the candidate.
	Score float32 `json:"score"`
	// The bounding box of the candidate.
	Box images.Box `json:"box"`
	// The precomputed area of Box.
	Area float32 `json:"area"`
}

// ClassResult holds the surviving candidates for one class, in
// acceptance order (descending score).
type ClassResult struct {
	// The class label.
	Label string `json:"label"`
	// The accepted candidates, highest score first.
	Candidates []Candidate `json:"candidates"`
}
