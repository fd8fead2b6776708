package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/akamensky/argparse"

	"github.com/nvr-ai/go-nms/render"
	"github.com/nvr-ai/go-nms/suppress"
	"github.com/nvr-ai/go-nms/tables"
)

func main() {
	parser := argparse.NewParser("shownms", "Draw a suppression result table onto an image")
	imgPath := parser.String("m", "image", &argparse.Options{Help: "Backdrop image (png or jpeg)", Required: true})
	tablePath := parser.String("t", "table", &argparse.Options{Help: "Result table, as written by nms", Required: true})
	outputPath := parser.String("o", "output", &argparse.Options{Help: "Output png", Required: false})
	items := parser.StringList("i", "items", &argparse.Options{Help: "Select classes to draw, as 'label' or 'label#RRGGBB'", Required: false})
	list := parser.Flag("l", "list", &argparse.Options{Help: "Print the table's class labels and exit", Required: false})
	defaultColor := parser.String("c", "color", &argparse.Options{Help: "Default box color", Required: false, Default: "#FFFFFF"})
	maxHeight := parser.Int("", "maxheight", &argparse.Options{Help: "Downscale the output to this height if taller", Required: false, Default: 0})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	results, err := tables.LoadResultsFile(*tablePath)
	check(err)

	if *list {
		for _, cls := range results {
			fmt.Println(cls.Label)
		}
		return
	}

	colors := map[string]string{}
	if len(*items) > 0 {
		selected := make([]suppress.ClassResult, 0, len(*items))
		for _, item := range *items {
			label, hex := parseItem(item)
			cls, ok := findClass(results, label)
			if !ok {
				fmt.Fprintf(os.Stderr, "no such class: %s\n", label)
				os.Exit(1)
			}
			if hex != "" {
				colors[label] = hex
			}
			selected = append(selected, cls)
		}
		results = selected
	}

	if *outputPath == "" {
		fmt.Fprintln(os.Stderr, "an output path is required (-o)")
		os.Exit(1)
	}

	f, err := os.Open(*imgPath)
	check(err)
	img, _, err := image.Decode(f)
	f.Close()
	check(err)

	out, err := render.Draw(img, results, render.Options{
		Colors:       colors,
		DefaultColor: *defaultColor,
		MaxHeight:    *maxHeight,
	})
	check(err)

	dst, err := os.Create(*outputPath)
	check(err)
	defer dst.Close()
	check(png.Encode(dst, out))
}

// parseItem splits "label#RRGGBB" into its parts; the color is optional.
func parseItem(item string) (label, hex string) {
	if i := strings.LastIndex(item, "#"); i > 0 {
		return item[:i], item[i:]
	}
	return item, ""
}

func findClass(results []suppress.ClassResult, label string) (suppress.ClassResult, bool) {
	for _, cls := range results {
		if cls.Label == label {
			return cls, true
		}
	}
	return suppress.ClassResult{}, false
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
