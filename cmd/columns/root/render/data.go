package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vdobler/livechart"
	"github.com/vdobler/livechart/data"
	"gopkg.in/yaml.v3"
)

// DataFile is the structure of the YAML data file.
type DataFile struct {
	Title  string       `yaml:"title"`
	Series []SeriesData `yaml:"series"`
}

// SeriesData is one series of the data file. Next, if present, replaces
// Values halfway through the animation.
type SeriesData struct {
	Title        string    `yaml:"title"`
	Fill         string    `yaml:"fill"`
	Stroke       string    `yaml:"stroke"`
	CornerRadius float64   `yaml:"cornerRadius"`
	Labels       []string  `yaml:"labels"`
	Values       []float64 `yaml:"values"`
	Next         []float64 `yaml:"next"`
}

func readDataFile(filePath string) (*DataFile, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file path: %w", err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parseData(raw)
}

func parseData(raw []byte) (*DataFile, error) {
	var df DataFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(df.Series) == 0 {
		return nil, fmt.Errorf("no series")
	}
	for i, s := range df.Series {
		if s.Title == "" {
			df.Series[i].Title = fmt.Sprintf("Series %d", i+1)
		}
	}
	return &df, nil
}

// HasNext reports whether any series changes halfway.
func (df *DataFile) HasNext() bool {
	for _, s := range df.Series {
		if s.Next != nil {
			return true
		}
	}
	return false
}

// series converts sd into a chart series.
func (sd SeriesData) series() (*livechart.Series, error) {
	s := livechart.NewSeries(sd.Title, data.Labeled(sd.Labels, sd.Values...))
	s.PointCornerRadius = sd.CornerRadius
	var err error
	if s.Fill, err = parseColor(sd.Fill); err != nil {
		return nil, fmt.Errorf("series %q: fill: %w", sd.Title, err)
	}
	if s.Stroke, err = parseColor(sd.Stroke); err != nil {
		return nil, fmt.Errorf("series %q: stroke: %w", sd.Title, err)
	}
	return s, nil
}

// parseColor parses #rgb, #rrggbb and #rrggbbaa. The empty string is nil.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
