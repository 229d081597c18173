// Command typstdemo renders a sample chart to a Typst document.
//
// It exercises the full drawing surface of the typstplot backend: axes and
// grid lines, a sine curve drawn as a path, filled markers, a filled
// polygon under the curve, and anchored labels. Chart styling can be
// overridden with a TOML config file.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/typstplot/typstplot"
	"github.com/typstplot/typstplot/backend"
)

// chartConfig is the TOML-overridable styling of the demo chart.
type chartConfig struct {
	Title   string `toml:"title"`
	Font    string `toml:"font"`
	Samples int    `toml:"samples"`
	Stroke  int    `toml:"stroke"`
	Margin  int    `toml:"margin"`
}

func defaultChartConfig() chartConfig {
	return chartConfig{
		Title:   "Sine wave",
		Font:    "sans-serif",
		Samples: 100,
		Stroke:  2,
		Margin:  40,
	}
}

func main() {
	var (
		width      int
		height     int
		out        string
		configPath string
		anchors    string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "typstdemo",
		Short:        "typstdemo renders a demo chart as Typst markup",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				Level:           level,
			})

			cfg := defaultChartConfig()
			if configPath != "" {
				if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
					return fmt.Errorf("load config %s: %w", configPath, err)
				}
				logger.Debug("loaded config", "path", configPath)
			}

			var opts []typstplot.Option
			switch anchors {
			case "edge":
			case "offset":
				opts = append(opts, typstplot.WithAnchorStrategy(typstplot.OffsetAnchors))
			default:
				return fmt.Errorf("unknown anchor strategy %q (want edge or offset)", anchors)
			}

			c := typstplot.New(out, width, height, opts...)
			if err := drawChart(c, width, height, cfg); err != nil {
				return err
			}
			if err := c.Close(); err != nil {
				return err
			}

			logger.Info("chart written", "path", out, "size", fmt.Sprintf("%dx%d", width, height))
			return nil
		},
	}

	root.Flags().IntVar(&width, "width", 800, "canvas width in pt")
	root.Flags().IntVar(&height, "height", 600, "canvas height in pt")
	root.Flags().StringVarP(&out, "out", "o", "demo.typ", "output file")
	root.Flags().StringVar(&configPath, "config", "", "optional TOML chart config")
	root.Flags().StringVar(&anchors, "anchors", "edge", "text anchor strategy (edge or offset)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// drawChart draws through the backend interface rather than the concrete
// canvas, the way a plotting library would.
func drawChart(b backend.DrawingBackend, width, height int, cfg chartConfig) error {
	if err := b.EnsurePrepared(); err != nil {
		return err
	}

	if cfg.Samples < 2 {
		cfg.Samples = defaultChartConfig().Samples
	}

	m := cfg.Margin
	plotW := width - 2*m
	plotH := height - 2*m
	axis := backend.NewStyle(backend.Black)
	grid := backend.NewStyle(backend.RGBA(0, 0, 0, 0.2))
	curve := backend.NewStyle(backend.RGB(204, 41, 54)).WithStrokeWidth(cfg.Stroke)
	area := backend.NewStyle(backend.RGBA(204, 41, 54, 0.15))

	// Plot frame and horizontal grid lines.
	if err := b.DrawRect(backend.Pt(m, m), backend.Pt(m+plotW, m+plotH), axis, false); err != nil {
		return err
	}
	for i := 1; i < 4; i++ {
		y := m + i*plotH/4
		if err := b.DrawLine(backend.Pt(m, y), backend.Pt(m+plotW, y), grid); err != nil {
			return err
		}
	}

	// Sampled sine curve, its filled area, and markers.
	sample := func(i int) backend.Point {
		t := float64(i) / float64(cfg.Samples-1)
		x := m + int(t*float64(plotW))
		y := m + plotH/2 - int(math.Sin(2*math.Pi*t)*float64(plotH)/2*0.8)
		return backend.Pt(x, y)
	}

	points := make([]backend.Point, cfg.Samples)
	for i := range points {
		points[i] = sample(i)
	}

	polygon := append([]backend.Point{backend.Pt(m, m+plotH/2)}, points...)
	polygon = append(polygon, backend.Pt(m+plotW, m+plotH/2))
	if err := b.FillPolygon(polygon, area); err != nil {
		return err
	}
	if err := b.DrawPath(points, curve); err != nil {
		return err
	}
	step := cfg.Samples / 10
	if step == 0 {
		step = 1
	}
	for i := 0; i < cfg.Samples; i += step {
		if err := b.DrawCircle(points[i], 3, curve, true); err != nil {
			return err
		}
	}

	// Title and axis labels.
	title := backend.NewTextStyle(backend.Black, cfg.Font, 24).
		WithAnchor(backend.HCenter, backend.Top)
	if err := b.DrawText(cfg.Title, title, backend.Pt(width/2, 8)); err != nil {
		return err
	}

	label := backend.NewTextStyle(backend.Black, cfg.Font, 14)
	if err := b.DrawText("t", label.WithAnchor(backend.HCenter, backend.Top),
		backend.Pt(width/2, m+plotH+8)); err != nil {
		return err
	}
	return b.DrawText("sin(2πt)", label.WithAnchor(backend.Left, backend.VCenter).WithTransform(backend.Rotate270),
		backend.Pt(12, height/2))
}
