package viz

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"
)

// viridisColors is the color ramp for visual maps, low to high.
var viridisColors = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// TrajectoryChart builds an interactive scatter of the trajectory with each
// point colored by its local fit radius. radii is the profile from
// circlefit.LocalRadii; unfilled edge slots color as zero.
func TrajectoryChart(x, y, radii []float64) (*charts.Scatter, error) {
	if len(x) != len(y) || len(x) != len(radii) {
		return nil, fmt.Errorf("mismatched inputs: len(x)=%d len(y)=%d len(radii)=%d", len(x), len(y), len(radii))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}

	data := make([]opts.ScatterData, 0, len(x))
	maxAbs := 0.0
	maxRadius := 0.0
	for i := range x {
		if math.Abs(x[i]) > maxAbs {
			maxAbs = math.Abs(x[i])
		}
		if math.Abs(y[i]) > maxAbs {
			maxAbs = math.Abs(y[i])
		}
		if radii[i] > maxRadius {
			maxRadius = radii[i]
		}
		data = append(data, opts.ScatterData{Value: []interface{}{x[i], y[i], radii[i]}})
	}

	// Pad so edge points stay visible, and force symmetric square ranges.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxRadius == 0 {
		maxRadius = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Trajectory Radius Map", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Trajectory", Subtitle: fmt.Sprintf("points=%d", len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxRadius),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	scatter.AddSeries("trajectory", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return scatter, nil
}

// LocalRadiusChart builds a line chart of the interior of the local radius
// profile against point index, with the mean radius in the subtitle.
func LocalRadiusChart(radii []float64, window int) (*charts.Line, error) {
	h := window / 2
	if window < 2 || 2*h+1 > len(radii) {
		return nil, fmt.Errorf("window %d does not fit %d profile slots", window, len(radii))
	}

	interior := radii[h : len(radii)-h]
	labels := make([]string, len(interior))
	data := make([]opts.LineData, len(interior))
	for i, r := range interior {
		labels[i] = fmt.Sprintf("%d", h+i)
		data[i] = opts.LineData{Value: r}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Local Radius Profile", Theme: "dark", Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Local Radius Profile",
			Subtitle: fmt.Sprintf("w=%d mean=%.3f", window, stat.Mean(interior, nil)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Index", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Radius", NameLocation: "middle", NameGap: 30}),
	)
	line.SetXAxis(labels).
		AddSeries("radius", data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)
	return line, nil
}

// RenderHTML renders the charts into a single HTML page written to w.
func RenderHTML(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}
