package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdobler/livechart"
	"github.com/vdobler/livechart/data"
	"github.com/vdobler/livechart/geom"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var dataPath, outDir, palette string
	var frames int
	var fps float64

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file into PNG frames",
		Long: `Render the series of a YAML data file as an animated column chart.
Series with next values are retargeted halfway through the animation.`,
		Example: `  columns render --data sales.yaml --out frames --frames 60 --labels`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 || fps <= 0 {
				return fmt.Errorf("need a positive number of frames and fps")
			}
			cfg := livechart.DefaultConfig()
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}
			df, err := readDataFile(dataPath)
			if err != nil {
				return err
			}
			if df.Title != "" && cfg.Title == "" {
				cfg.Title = df.Title
			}
			r := &renderer{
				cfg:     cfg,
				outDir:  outDir,
				frames:  frames,
				delta:   time.Duration(float64(time.Second) / fps),
				palette: palette,
			}
			return r.run(df)
		},
	}

	defaults := livechart.DefaultConfig()
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Path to the YAML data file (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for the frames")
	cmd.Flags().IntVarP(&frames, "frames", "n", 30, "Number of frames")
	cmd.Flags().Float64Var(&fps, "fps", 30, "Frames per second")
	cmd.Flags().StringVar(&palette, "palette", "default", "Series colors: default or kindlmann")
	cmd.Flags().String("title", "", "Chart title")
	cmd.Flags().Float64("width", defaults.Width, "Image width")
	cmd.Flags().Float64("height", defaults.Height, "Image height")
	cmd.Flags().Duration("animations-speed", defaults.AnimationsSpeed, "Duration of every transition")
	cmd.Flags().Float64("group-gap", defaults.GroupGap, "Gap between categories")
	cmd.Flags().Float64("bar-gap", defaults.BarGap, "Gap between columns of one category")
	cmd.Flags().Float64("font-size", defaults.FontSize, "Base font size")
	cmd.Flags().Float64("corner-radius", defaults.CornerRadius, "Corner radius of the columns")
	cmd.Flags().Bool("labels", defaults.Labels, "Draw data labels")
	cmd.MarkFlagRequired("data")

	for _, name := range []string{"title", "width", "height", "animations-speed",
		"group-gap", "bar-gap", "font-size", "corner-radius", "labels"} {
		viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

type renderer struct {
	cfg     livechart.Config
	outDir  string
	frames  int
	delta   time.Duration
	palette string
}

func (r *renderer) colors(n int) ([]color.Color, error) {
	switch r.palette {
	case "", "default":
		return nil, nil
	case "kindlmann":
		return livechart.ColorMapColors(moreland.Kindlmann(), n)
	}
	return nil, fmt.Errorf("unknown palette %q", r.palette)
}

// chart builds the chart of df.
func (r *renderer) chart(df *DataFile) (*livechart.Chart, []*livechart.Series, error) {
	chart, err := livechart.NewChart(r.cfg)
	if err != nil {
		return nil, nil, err
	}
	chart.DefaultView = geom.NewView

	colors, err := r.colors(len(df.Series))
	if err != nil {
		return nil, nil, err
	}
	series := make([]*livechart.Series, len(df.Series))
	for i, sd := range df.Series {
		s, err := sd.series()
		if err != nil {
			return nil, nil, err
		}
		if s.Fill == nil && colors != nil {
			s.Fill = colors[i]
		}
		series[i] = s
	}
	chart.Add(series...)
	return chart, series, nil
}

func (r *renderer) run(df *DataFile) error {
	chart, series, err := r.chart(df)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := chart.Update(); err != nil {
		return err
	}

	half := r.frames / 2
	for i := 0; i < r.frames; i++ {
		if i == half && df.HasNext() {
			for j, sd := range df.Series {
				if sd.Next != nil {
					series[j].Data = data.Labeled(sd.Labels, sd.Next...)
				}
			}
			if err := chart.Update(); err != nil {
				return err
			}
			log.Info("retargeted", "frame", i)
		}

		path := filepath.Join(r.outDir, fmt.Sprintf("frame-%04d.png", i))
		if err := r.write(chart, path); err != nil {
			return err
		}
		running := chart.Tick(r.delta)
		log.Debug("frame written", "path", path, "running", running)
	}
	log.Info("done", "frames", r.frames, "dir", r.outDir)
	return nil
}

func (r *renderer) write(chart *livechart.Chart, path string) error {
	img := vgimg.New(vg.Length(r.cfg.Width), vg.Length(r.cfg.Height))
	chart.Render(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
