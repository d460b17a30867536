// Package chart renders light curve plots as PNG images. Rendering is
// fully headless: plots are drawn onto an in-memory raster canvas and
// written straight to disk, so the pipeline runs the same on servers
// and workstations.
package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/config"
	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

// Axis and legend labels for the light curve plot.
const (
	xAxisLabel  = "Barycentric Julian Day (BJD)"
	yAxisLabel  = "Brightness (relative flux)"
	legendLabel = "Observations"
)

// Point and error bar styling. Matches the survey team's plotting
// conventions: steelblue markers with gray capped error bars, both
// drawn at 70% opacity so dense curves stay readable.
var (
	markerColor   = color.NRGBA{R: 70, G: 130, B: 180, A: 178}
	errorBarColor = color.NRGBA{R: 128, G: 128, B: 128, A: 178}
	gridColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 76}
)

// Renderer draws light curves: brightness against observation time
// with one vertical error bar per point.
type Renderer struct {
	logger *slog.Logger
	config RendererConfig
}

// RendererConfig holds the plot geometry and titling.
type RendererConfig struct {
	WidthInches  float64 // Canvas width in inches
	HeightInches float64 // Canvas height in inches
	DPI          int     // Raster resolution in dots per inch
	Title        string  // Plot title
}

// DefaultRendererConfig returns the standard wide-format light curve layout.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		WidthInches:  config.DefaultChartWidthInches,
		HeightInches: config.DefaultChartHeightInches,
		DPI:          config.DefaultChartDPI,
		Title:        config.DefaultChartTitle,
	}
}

// NewRenderer creates a Renderer with the given configuration.
// Zero geometry fields are backfilled from the defaults.
func NewRenderer(logger *slog.Logger, cfg RendererConfig) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}

	defaults := DefaultRendererConfig()
	if cfg.WidthInches <= 0 {
		cfg.WidthInches = defaults.WidthInches
	}
	if cfg.HeightInches <= 0 {
		cfg.HeightInches = defaults.HeightInches
	}
	if cfg.DPI <= 0 {
		cfg.DPI = defaults.DPI
	}
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}

	return &Renderer{logger: logger, config: cfg}
}

// errorPoints adapts observations for the plotter: the XYs provide the
// positions, the YErrors the symmetric error bar extents.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func newErrorPoints(observations []domain.Observation) errorPoints {
	pts := errorPoints{
		XYs:     make(plotter.XYs, len(observations)),
		YErrors: make(plotter.YErrors, len(observations)),
	}
	for i, obs := range observations {
		pts.XYs[i].X = obs.Time
		pts.XYs[i].Y = obs.Brightness
		pts.YErrors[i].Low = obs.Error
		pts.YErrors[i].High = obs.Error
	}
	return pts
}

// Render draws the light curve for the given observations and writes
// it to path as a PNG. The observations must be non-empty; the
// pipeline halts on an empty table before a plot is requested.
func (r *Renderer) Render(ctx context.Context, observations []domain.Observation, path string) error {
	if len(observations) == 0 {
		return apperrors.NewEmptyResultError("no observations to plot")
	}

	r.logger.InfoContext(ctx, "rendering light curve",
		slog.String("path", path),
		slog.Int("observations", len(observations)),
		slog.Float64("width_inches", r.config.WidthInches),
		slog.Float64("height_inches", r.config.HeightInches),
		slog.Int("dpi", r.config.DPI))

	p, err := r.buildPlot(observations)
	if err != nil {
		return err
	}

	if err := r.writePNG(p, path); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "light curve rendered",
		slog.String("path", path))
	return nil
}

func (r *Renderer) buildPlot(observations []domain.Observation) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.config.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xAxisLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = yAxisLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	pts := newErrorPoints(observations)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, apperrors.NewRenderError("failed to build error bars", err)
	}
	bars.LineStyle.Color = errorBarColor
	bars.LineStyle.Width = vg.Points(1)
	bars.CapWidth = vg.Points(3)

	scatter, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, apperrors.NewRenderError("failed to build scatter", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = markerColor
	scatter.GlyphStyle.Radius = vg.Points(2)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor

	// Error bars first so the markers draw on top of them.
	p.Add(grid, bars, scatter)
	p.Legend.Add(legendLabel, scatter)
	p.Legend.Top = true

	return p, nil
}

func (r *Renderer) writePNG(p *plot.Plot, path string) error {
	if err := config.EnsureParentDir(path); err != nil {
		return apperrors.NewRenderError("failed to create directory for plot", err)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.config.WidthInches)*vg.Inch, vg.Length(r.config.HeightInches)*vg.Inch),
		vgimg.UseDPI(r.config.DPI),
	)
	p.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewRenderError(fmt.Sprintf("failed to create plot file %s", path), err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		return apperrors.NewRenderError("failed to encode plot PNG", err)
	}

	return nil
}
