// Package viz renders trajectories, circle fits, and local-radius profiles
// as static PNG plots and interactive HTML charts.
package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/circlefit"
)

// circleSegments is the number of line segments used to draw a circle.
const circleSegments = 256

// Overlay renders the trajectory points with the fitted circle drawn over
// them. Axis ranges are padded and kept square so the circle is not
// distorted by unequal scales.
func Overlay(x, y []float64, fit circlefit.CircleFit) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched trajectory: len(x)=%d len(y)=%d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Circle Fit - r=%.3f RMSE=%.4g", fit.Radius, fit.RMSE)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	sc, err := plotter.NewScatter(xyPoints(x, y))
	if err != nil {
		return nil, fmt.Errorf("trajectory scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)
	p.Legend.Add("trajectory", sc)

	ring, err := plotter.NewLine(circlePoints(fit.Circle))
	if err != nil {
		return nil, fmt.Errorf("fit circle line: %w", err)
	}
	ring.Color = color.RGBA{R: 255, G: 82, B: 82, A: 255}
	ring.Width = vg.Points(1)
	p.Add(ring)
	p.Legend.Add("fit", ring)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	squareRanges(p, x, y, []circlefit.Circle{fit.Circle})
	return p, nil
}

// WindowOverlay renders the trajectory with a sample of its local window
// fits drawn as circles, one color per window. At most maxCircles windows
// are drawn, evenly spaced along the trajectory; degenerate (straight)
// windows are skipped.
func WindowOverlay(x, y []float64, window, maxCircles int) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched trajectory: len(x)=%d len(y)=%d", len(x), len(y))
	}
	if maxCircles < 1 {
		return nil, fmt.Errorf("maxCircles %d, want at least 1", maxCircles)
	}
	h := window / 2
	if window < 2 || 2*h+1 > len(x) {
		return nil, fmt.Errorf("window %d does not fit %d points", window, len(x))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Local Window Fits - w=%d", window)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	sc, err := plotter.NewScatter(xyPoints(x, y))
	if err != nil {
		return nil, fmt.Errorf("trajectory scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)
	p.Legend.Add("trajectory", sc)

	// Pick up to maxCircles window centers, evenly strided.
	centers := make([]int, 0, maxCircles)
	span := len(x) - 2*h
	stride := (span + maxCircles - 1) / maxCircles
	if stride < 1 {
		stride = 1
	}
	for i := h; i < len(x)-h; i += stride {
		centers = append(centers, i)
	}

	colors := generateColors(len(centers))
	var circles []circlefit.Circle
	for ci, i := range centers {
		fit, err := circlefit.FitCircle(x[i-h:i+h+1], y[i-h:i+h+1])
		if err != nil {
			// Straight stretches have no circle to draw.
			continue
		}
		ln, err := plotter.NewLine(circlePoints(fit.Circle))
		if err != nil {
			return nil, fmt.Errorf("window %d circle line: %w", i, err)
		}
		ln.Color = colors[ci]
		ln.Width = vg.Points(1)
		p.Add(ln)
		p.Legend.Add(fmt.Sprintf("i=%d r=%.2f", i, fit.Radius), ln)
		circles = append(circles, fit.Circle)
	}
	if len(circles) == 0 {
		return nil, fmt.Errorf("no window produced a circle fit")
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	squareRanges(p, x, y, circles)
	return p, nil
}

// SaveOverlayPNG fits a circle to the trajectory and writes the overlay
// image to path. The extension chooses the format; .png is typical.
func SaveOverlayPNG(path string, x, y []float64) error {
	fit, err := circlefit.FitCircle(x, y)
	if err != nil {
		return fmt.Errorf("fit for overlay: %w", err)
	}
	p, err := Overlay(x, y, fit)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

func circlePoints(c circlefit.Circle) plotter.XYs {
	pts := make(plotter.XYs, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(circleSegments)
		pts[i] = plotter.XY{
			X: c.CenterX + c.Radius*math.Cos(theta),
			Y: c.CenterY + c.Radius*math.Sin(theta),
		}
	}
	return pts
}

// squareRanges pads the axis ranges 5% beyond the data and circles and makes
// them equal in extent, keeping circles round on screen.
func squareRanges(p *plot.Plot, x, y []float64, circles []circlefit.Circle) {
	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := range x {
		minX = math.Min(minX, x[i])
		maxX = math.Max(maxX, x[i])
		minY = math.Min(minY, y[i])
		maxY = math.Max(maxY, y[i])
	}
	for _, c := range circles {
		minX = math.Min(minX, c.CenterX-c.Radius)
		maxX = math.Max(maxX, c.CenterX+c.Radius)
		minY = math.Min(minY, c.CenterY-c.Radius)
		maxY = math.Max(maxY, c.CenterY+c.Radius)
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := math.Max(maxX-minX, maxY-minY) / 2 * 1.05
	if half == 0 {
		half = 1
	}
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

// generateColors creates a palette of distinct colors for the window fits.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
