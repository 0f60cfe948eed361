package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/calanor/fieldrig/internal/analysis"
	"github.com/calanor/fieldrig/internal/config"
	"github.com/calanor/fieldrig/internal/diag"
	"github.com/calanor/fieldrig/internal/export"
	"github.com/calanor/fieldrig/internal/logging"
	"github.com/calanor/fieldrig/internal/physics"
	"github.com/calanor/fieldrig/internal/pusher"
	"github.com/calanor/fieldrig/internal/sim"
	"github.com/calanor/fieldrig/internal/viz"
)

var (
	configFile    string
	frameRate     int
	stepsPerFrame int
	column        int
	plotHeight    int
	phaseWidth    int
	phaseHeight   int
	svgPath       string
	sampleDt      float64
	presetName    string
	force         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldrig",
		Short: "plane-wave particle pusher rig",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a configured simulation to completion",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVarP(&configFile, "config", "c", "fieldrig.toml", "run file (yaml or toml)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVarP(&configFile, "config", "c", "fieldrig.toml", "run file (yaml or toml)")
	liveCmd.Flags().IntVar(&frameRate, "fps", viz.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", viz.DefaultStepsPerFrame, "clock steps per frame")

	plotCmd := &cobra.Command{
		Use:   "plot [file.csv]",
		Short: "plot a recorded diagnostic column",
		Args:  cobra.ExactArgs(1),
		RunE:  plotFile,
	}
	plotCmd.Flags().IntVar(&column, "column", 1, "column index")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file.csv]",
		Short: "frequency analysis of a recorded column",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeFile,
	}
	analyzeCmd.Flags().IntVar(&column, "column", 1, "column index")
	analyzeCmd.Flags().Float64Var(&sampleDt, "dt", 1.0, "sample interval")

	phaseCmd := &cobra.Command{
		Use:   "phase [x.csv] [y.csv]",
		Short: "phase portrait of two recorded columns",
		Args:  cobra.ExactArgs(2),
		RunE:  phasePortrait,
	}
	phaseCmd.Flags().IntVar(&column, "column", 1, "column index")
	phaseCmd.Flags().IntVar(&phaseWidth, "width", 60, "portrait width")
	phaseCmd.Flags().IntVar(&phaseHeight, "height", 20, "portrait height")
	phaseCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG file instead of ASCII")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter run file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeStarter,
	}
	initCmd.Flags().StringVar(&presetName, "preset", "wave", "preset to write")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	modulesCmd := &cobra.Command{
		Use:   "modules",
		Short: "list registered component types",
		RunE:  listTypes,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, analyzeCmd, phaseCmd, initCmd, modulesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultRegistry() (*sim.Registry, error) {
	r := sim.NewRegistry()
	if err := physics.Register(r); err != nil {
		return nil, err
	}
	if err := pusher.Register(r); err != nil {
		return nil, err
	}
	if err := diag.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

func newSimulation() (*sim.Simulation, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	reg, err := defaultRegistry()
	if err != nil {
		return nil, err
	}
	return sim.New(cfg, reg, logging.Init("fieldrig"))
}

func runSimulation(cmd *cobra.Command, args []string) error {
	s, err := newSimulation()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.Run(context.Background()); err != nil {
		return err
	}

	fmt.Printf("completed %d steps in %v\n", s.Clock().NumSteps(), time.Since(start))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := newSimulation()
	if err != nil {
		return err
	}
	if err := s.Prepare(); err != nil {
		return err
	}

	m := viz.NewModel(s, frameRate, stepsPerFrame)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}

func readColumn(path string, col int) ([]float64, error) {
	rows, err := diag.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data in %s", path)
	}
	data := make([]float64, len(rows))
	for i, row := range rows {
		if col < 0 || col >= len(row) {
			return nil, fmt.Errorf("row %d has no column %d", i, col)
		}
		data[i] = row[col]
	}
	return data, nil
}

func plotFile(cmd *cobra.Command, args []string) error {
	data, err := readColumn(args[0], column)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s column %d", args[0], column)),
	)
	fmt.Println(graph)
	fmt.Printf("\nsamples: %d\n", len(data))
	return nil
}

func analyzeFile(cmd *cobra.Command, args []string) error {
	data, err := readColumn(args[0], column)
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(data)
	if len(ps) > 1 {
		graph := asciigraph.Plot(ps,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (column %d)", column)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	freq := analysis.DominantFrequency(data, sampleDt)
	fmt.Printf("dominant frequency: %.6g cycles per unit time\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.6g\n", 1.0/freq)
	}
	return nil
}

func phasePortrait(cmd *cobra.Command, args []string) error {
	xs, err := readColumn(args[0], column)
	if err != nil {
		return err
	}
	ys, err := readColumn(args[1], column)
	if err != nil {
		return err
	}

	if svgPath != "" {
		doc := export.Trajectory(xs, ys, 800, 600, "#00ff88")
		if doc == "" {
			return fmt.Errorf("not enough samples for a portrait")
		}
		if err := os.WriteFile(svgPath, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	portrait := analysis.PhasePortrait(xs, ys, phaseWidth, phaseHeight)
	if portrait == "" {
		return fmt.Errorf("not enough samples for a portrait")
	}
	fmt.Print(portrait)
	fmt.Printf("\n%s vs %s, column %d, %d samples\n", args[0], args[1], column, len(xs))
	return nil
}

func writeStarter(cmd *cobra.Command, args []string) error {
	path := "fieldrig.toml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteExample(path, presetName, force); err != nil {
		return err
	}
	fmt.Printf("wrote %s (preset %s)\n", path, presetName)
	return nil
}

func listTypes(cmd *cobra.Command, args []string) error {
	reg, err := defaultRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tTYPE")
	for _, name := range reg.ModuleTypes() {
		fmt.Fprintf(w, "module\t%s\n", name)
	}
	for _, name := range reg.ToolTypes() {
		fmt.Fprintf(w, "tool\t%s\n", name)
	}
	for _, name := range reg.DiagnosticTypes() {
		fmt.Fprintf(w, "diagnostic\t%s\n", name)
	}
	if len(config.PresetNames()) > 0 {
		fmt.Fprintf(w, "\nPRESETS\t%v\n", config.PresetNames())
	}
	return w.Flush()
}
