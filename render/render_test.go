package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-nms/images"
	"github.com/nvr-ai/go-nms/suppress"
)

func testResults() []suppress.ClassResult {
	return []suppress.ClassResult{
		{
			Label: "cat",
			Candidates: []suppress.Candidate{
				{Box: images.Box{X1: 10, Y1: 10, X2: 40, Y2: 40}},
			},
		},
		{
			Label: "dog",
			Candidates: []suppress.Candidate{
				{Box: images.Box{X1: 50, Y1: 50, X2: 90, Y2: 90}},
			},
		},
	}
}

func TestDrawKeepsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	out, err := Draw(img, testResults(), Options{DefaultColor: "#FF0000"})
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), out.Bounds())
}

func TestDrawStrokesBoxes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	out, err := Draw(img, testResults(), Options{DefaultColor: "#FF0000"})
	require.NoError(t, err)

	// A point on the first box's top edge must no longer be fully
	// transparent black.
	_, _, _, a := out.At(25, 10).RGBA()
	assert.NotZero(t, a, "box edge should have been stroked")
}

func TestDrawDoesNotMutateInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	_, err := Draw(img, testResults(), Options{DefaultColor: "#FF0000"})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{}, img.RGBAAt(25, 10), "backdrop must stay untouched")
}

func TestDrawMaxHeightDownscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))

	out, err := Draw(img, testResults(), Options{DefaultColor: "#FF0000", MaxHeight: 50})
	require.NoError(t, err)

	assert.Equal(t, 50, out.Bounds().Dy())
	assert.Equal(t, 100, out.Bounds().Dx(), "aspect ratio preserved")
}

func TestDrawBadColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	_, err := Draw(img, testResults(), Options{Colors: map[string]string{"cat": "red"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `class "cat"`)
}

func TestDrawAutoPalette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	// No colors configured at all: every class gets a generated hue.
	out, err := Draw(img, testResults(), Options{})
	require.NoError(t, err)
	require.NotNil(t, out)
}
