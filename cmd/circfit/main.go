// Package main provides a circle-fit analysis tool for 2-D trajectories.
// It reads a trajectory from CSV (or generates a synthetic one), fits a
// circle, reports curvature and windowed radius statistics, and optionally
// renders plot and chart files.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/circlefit"
	"github.com/banshee-data/circlefit/internal/trajio"
	"github.com/banshee-data/circlefit/viz"
)

// Config holds configuration for one analysis run.
type Config struct {
	Input   string
	Demo    string
	DemoN   int
	DemoR   float64
	Noise   float64
	Seed    int64
	SaveCSV string

	Window     int
	CandRadius float64
	CandX      float64
	CandY      float64

	OutputJSON  string
	PlotFile    string
	WindowsFile string
	ChartFile   string
	MaxCircles  int
	Verbose     bool
}

// Report holds the results of one analysis run.
type Report struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`
	Source      string `json:"source"`
	Points      int    `json:"points"`

	Collinear     bool     `json:"collinear"`
	Curvature     float64  `json:"curvature"`
	CurvatureRMSE *float64 `json:"curvature_rmse,omitempty"`

	Fit        *FitReport       `json:"fit,omitempty"`
	Window     int              `json:"window,omitempty"`
	MeanRadius *float64         `json:"mean_radius,omitempty"`
	Candidate  *CandidateReport `json:"candidate,omitempty"`
}

// FitReport holds the fitted circle.
type FitReport struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius"`
	RMSE    float64 `json:"rmse"`
}

// CandidateReport holds the score of a caller-supplied candidate circle.
type CandidateReport struct {
	Radius  float64 `json:"radius"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	RMSE    float64 `json:"rmse"`
}

func main() {
	cfg := parseFlags()

	if cfg.Input == "" && cfg.Demo == "" {
		log.Fatal("either -input or -demo is required")
	}
	if cfg.Input != "" && cfg.Input != "-" {
		if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
			log.Fatalf("Input file not found: %s", cfg.Input)
		}
	}

	report, err := run(cfg)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printReport(report)

	if cfg.OutputJSON != "" {
		if err := exportJSON(report, cfg.OutputJSON); err != nil {
			log.Printf("Warning: failed to export JSON: %v", err)
		} else {
			log.Printf("Report exported to: %s", cfg.OutputJSON)
		}
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Input, "input", "", "Path to x,y CSV trajectory (- for stdin)")
	flag.StringVar(&cfg.Demo, "demo", "", "Generate a demo trajectory: circle, arc, spiral, line")
	flag.IntVar(&cfg.DemoN, "n", 100, "Demo trajectory point count")
	flag.Float64Var(&cfg.DemoR, "r", 5, "Demo trajectory radius (start radius for spiral)")
	flag.Float64Var(&cfg.Noise, "noise", 0, "Uniform noise amplitude added to demo points")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Noise seed")
	flag.StringVar(&cfg.SaveCSV, "save", "", "Write the analyzed trajectory to this CSV path")

	flag.IntVar(&cfg.Window, "window", 5, "Window width for local radius estimation (0 to skip)")
	flag.Float64Var(&cfg.CandRadius, "radius", -1, "Candidate radius to score with RMSE (-1 to skip)")
	flag.Float64Var(&cfg.CandX, "cx", 0, "Candidate circle center X")
	flag.Float64Var(&cfg.CandY, "cy", 0, "Candidate circle center Y")

	flag.StringVar(&cfg.OutputJSON, "json", "", "Output JSON report path")
	flag.StringVar(&cfg.PlotFile, "plot", "", "Output PNG path for the fit overlay")
	flag.StringVar(&cfg.WindowsFile, "windows-plot", "", "Output PNG path for local window fits")
	flag.StringVar(&cfg.ChartFile, "chart", "", "Output HTML path for interactive charts")
	flag.IntVar(&cfg.MaxCircles, "max-circles", 10, "Maximum window circles drawn in -windows-plot")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")

	flag.Parse()

	return cfg
}

func run(cfg Config) (*Report, error) {
	x, y, source, err := loadTrajectory(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.Printf("Loaded %d points from %s", len(x), source)
	}

	if cfg.SaveCSV != "" {
		if err := trajio.WriteCSVFile(cfg.SaveCSV, x, y); err != nil {
			return nil, fmt.Errorf("save trajectory: %w", err)
		}
		if cfg.Verbose {
			log.Printf("Trajectory written to: %s", cfg.SaveCSV)
		}
	}

	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      source,
		Points:      len(x),
	}

	collinear, err := circlefit.Collinear(x, y)
	if err != nil {
		return nil, fmt.Errorf("collinearity check: %w", err)
	}
	report.Collinear = collinear

	res, err := circlefit.CurvatureFit(x, y)
	if err != nil {
		return nil, fmt.Errorf("curvature fit: %w", err)
	}
	report.Curvature = res.Curvature
	if !res.Degenerate() {
		rmse := res.RMSE
		report.CurvatureRMSE = &rmse
	}

	fit, err := circlefit.FitCircle(x, y)
	switch {
	case err == nil:
		report.Fit = &FitReport{
			CenterX: fit.CenterX,
			CenterY: fit.CenterY,
			Radius:  fit.Radius,
			RMSE:    fit.RMSE,
		}
	case errors.Is(err, circlefit.ErrCollinear):
		// Straight trajectories have curvature zero and no circle; the
		// report carries the collinear flag instead of a fit.
	default:
		return nil, fmt.Errorf("circle fit: %w", err)
	}

	if cfg.Window >= 2 {
		report.Window = cfg.Window
		mean, err := circlefit.MeanFitRadius(x, y, cfg.Window)
		switch {
		case err == nil:
			report.MeanRadius = &mean
		case errors.Is(err, circlefit.ErrCollinear) || errors.Is(err, circlefit.ErrInvalidParam):
			log.Printf("Warning: windowed radius skipped: %v", err)
		default:
			return nil, fmt.Errorf("windowed radius: %w", err)
		}
	}

	if cfg.CandRadius >= 0 {
		rmse, err := circlefit.CircleRMSEAt(x, y, cfg.CandRadius, cfg.CandX, cfg.CandY)
		switch {
		case err == nil:
			report.Candidate = &CandidateReport{
				Radius:  cfg.CandRadius,
				CenterX: cfg.CandX,
				CenterY: cfg.CandY,
				RMSE:    rmse,
			}
		case errors.Is(err, circlefit.ErrCollinear):
			log.Printf("Warning: candidate score skipped: %v", err)
		default:
			return nil, fmt.Errorf("candidate score: %w", err)
		}
	}

	if err := renderOutputs(cfg, report, x, y); err != nil {
		return nil, err
	}

	return report, nil
}

func loadTrajectory(cfg Config) (x, y []float64, source string, err error) {
	if cfg.Input == "-" {
		x, y, err = trajio.ReadCSV(os.Stdin)
		if err != nil {
			return nil, nil, "", fmt.Errorf("stdin: %w", err)
		}
		return x, y, "stdin", nil
	}
	if cfg.Input != "" {
		x, y, err = trajio.ReadCSVFile(cfg.Input)
		if err != nil {
			return nil, nil, "", err
		}
		return x, y, cfg.Input, nil
	}

	switch cfg.Demo {
	case "circle":
		x, y = trajio.Circle(cfg.DemoN, cfg.DemoR, 0, 0)
	case "arc":
		x, y = trajio.Arc(cfg.DemoN, cfg.DemoR, 0, 0, 0, math.Pi)
	case "spiral":
		x, y = trajio.Spiral(cfg.DemoN, cfg.DemoR, 3*cfg.DemoR, 2)
	case "line":
		x, y = trajio.Line(cfg.DemoN, 0, 0, 1, 0.5)
	default:
		return nil, nil, "", fmt.Errorf("unknown demo shape %q (want circle, arc, spiral, or line)", cfg.Demo)
	}
	if cfg.Noise > 0 {
		x, y = trajio.Noisy(x, y, cfg.Noise, cfg.Seed)
	}
	return x, y, "demo:" + cfg.Demo, nil
}

func renderOutputs(cfg Config, report *Report, x, y []float64) error {
	if cfg.PlotFile != "" {
		if report.Fit == nil {
			log.Printf("Warning: -plot skipped: no circle fit for this trajectory")
		} else if err := viz.SaveOverlayPNG(cfg.PlotFile, x, y); err != nil {
			return fmt.Errorf("overlay plot: %w", err)
		} else if cfg.Verbose {
			log.Printf("Overlay written to: %s", cfg.PlotFile)
		}
	}

	if cfg.WindowsFile != "" {
		p, err := viz.WindowOverlay(x, y, cfg.Window, cfg.MaxCircles)
		if err != nil {
			log.Printf("Warning: -windows-plot skipped: %v", err)
		} else if err := p.Save(8*vg.Inch, 8*vg.Inch, cfg.WindowsFile); err != nil {
			return fmt.Errorf("window plot: %w", err)
		} else if cfg.Verbose {
			log.Printf("Window overlay written to: %s", cfg.WindowsFile)
		}
	}

	if cfg.ChartFile != "" {
		if err := writeCharts(cfg, x, y); err != nil {
			log.Printf("Warning: -chart skipped: %v", err)
		} else if cfg.Verbose {
			log.Printf("Charts written to: %s", cfg.ChartFile)
		}
	}

	return nil
}

func writeCharts(cfg Config, x, y []float64) error {
	if cfg.Window < 2 {
		return fmt.Errorf("charts need -window >= 2")
	}
	radii, err := circlefit.LocalRadii(x, y, cfg.Window)
	if err != nil {
		return err
	}

	scatter, err := viz.TrajectoryChart(x, y, radii)
	if err != nil {
		return err
	}
	line, err := viz.LocalRadiusChart(radii, cfg.Window)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.ChartFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return viz.RenderHTML(f, scatter, line)
}

func printReport(report *Report) {
	fmt.Println("\n=== Circle Fit Report ===")
	fmt.Printf("Run ID: %s\n", report.RunID)
	fmt.Printf("Source: %s\n", report.Source)
	fmt.Printf("Points: %d\n", report.Points)
	fmt.Printf("Collinear: %v\n", report.Collinear)

	fmt.Println("\n--- Curvature ---")
	fmt.Printf("Curvature: %.6g\n", report.Curvature)
	if report.CurvatureRMSE != nil {
		fmt.Printf("Curvature RMSE: %.6g\n", *report.CurvatureRMSE)
	} else {
		fmt.Println("Curvature RMSE: undefined (straight trajectory)")
	}

	if report.Fit != nil {
		fmt.Println("\n--- Fitted Circle ---")
		fmt.Printf("Center: (%.6g, %.6g)\n", report.Fit.CenterX, report.Fit.CenterY)
		fmt.Printf("Radius: %.6g\n", report.Fit.Radius)
		fmt.Printf("RMSE: %.6g\n", report.Fit.RMSE)
	}

	if report.MeanRadius != nil {
		fmt.Println("\n--- Windowed Radius ---")
		fmt.Printf("Window: %d\n", report.Window)
		fmt.Printf("Mean local radius: %.6g\n", *report.MeanRadius)
	}

	if report.Candidate != nil {
		fmt.Println("\n--- Candidate Circle ---")
		fmt.Printf("Candidate: r=%.6g at (%.6g, %.6g)\n",
			report.Candidate.Radius, report.Candidate.CenterX, report.Candidate.CenterY)
		fmt.Printf("RMSE: %.6g\n", report.Candidate.RMSE)
	}
}

func exportJSON(report *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
