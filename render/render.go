// Package render - draws suppression results onto an image.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/suppress"
)

// Options controls how results are drawn.
type Options struct {
	// Colors maps class labels to "#RRGGBB" stroke colors.
	Colors map[string]string
	// DefaultColor is used for labels without a Colors entry. When
	// empty, each uncolored class gets a distinct hue instead.
	DefaultColor string
	// MaxHeight downscales the output when it is taller, preserving
	// aspect ratio. 0 disables scaling.
	MaxHeight int
	// LineWidth is the stroke width in pixels. Values <= 0 mean 2.
	LineWidth float64
}

// Draw strokes one rectangle per accepted candidate onto a copy of img,
// colored per class. Box coordinates are absolute pixels; rectangles
// reaching outside the canvas clip silently.
//
// Arguments:
//   - img: The backdrop image. It is not modified.
//   - results: Per-class accepted candidates, as produced by suppress.All
//     or loaded back by tables.LoadResults.
//   - opts: Drawing options.
//
// Returns:
//   - The annotated image, downscaled if MaxHeight demands it.
//   - An error when a configured color fails to parse.
func Draw(img image.Image, results []suppress.ClassResult, opts Options) (image.Image, error) {
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 2
	}

	dc := gg.NewContextForImage(img)
	dc.SetLineWidth(lineWidth)

	for i, cls := range results {
		col, err := classColor(cls.Label, i, opts)
		if err != nil {
			return nil, err
		}
		dc.SetColor(col)
		for _, cand := range cls.Candidates {
			b := cand.Box
			dc.DrawRectangle(float64(b.X1), float64(b.Y1), float64(b.X2-b.X1), float64(b.Y2-b.Y1))
		}
		dc.Stroke()
	}

	out := dc.Image()
	if opts.MaxHeight > 0 && out.Bounds().Dy() > opts.MaxHeight {
		out = resize.Resize(0, uint(opts.MaxHeight), out, resize.Lanczos3)
	}
	return out, nil
}

func classColor(label string, index int, opts Options) (color.Color, error) {
	if hex, ok := opts.Colors[label]; ok {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "color for class %q", label)
		}
		return col, nil
	}
	if opts.DefaultColor != "" {
		col, err := colorful.Hex(opts.DefaultColor)
		if err != nil {
			return nil, errors.Wrap(err, "default color")
		}
		return col, nil
	}
	// Spread hues so neighboring classes stay distinguishable without
	// any configuration.
	return colorful.Hsv(float64((index*67)%360), 0.9, 1.0), nil
}
