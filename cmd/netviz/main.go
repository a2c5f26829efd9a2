// SPDX-License-Identifier: MIT

// Package main provides the netviz CLI: generate, build, and render
// undirected weighted graphs.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netviz/config"
	"github.com/katalvlaran/netviz/core"
	"github.com/katalvlaran/netviz/render"
)

// Version is the current netviz CLI version
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:               "netviz",
	Short:             "netviz - random undirected weighted graphs and their pictures",
	Long:              `netviz builds undirected weighted graphs from YAML run files or random generation requests and renders them as SVG, DOT, JSON or plain text.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRun:  setupLogging,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random graph with no isolated nodes and render it",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the graph described by a YAML run file and render it",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the node list, edge list and statistics of a run file's graph",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the netviz version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "netviz %s\n", Version)
	},
}

var (
	debugFlag bool

	genNodes        int
	genEdges        int
	genSeed         int64
	genStrictBound  bool
	genRemoveRandom int
	genSave         string

	runFile string

	outFormat string
	outPath   string
	outWidth  float64
	outHeight float64
	outJitter float64
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log with file:line and microsecond timestamps")

	generateCmd.Flags().IntVarP(&genNodes, "nodes", "n", 8, "Number of nodes to generate")
	generateCmd.Flags().IntVarP(&genEdges, "edges", "e", 10, "Number of random edges before isolated nodes are linked")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (default: current time)")
	generateCmd.Flags().BoolVar(&genStrictBound, "strict-bound", false, "Reject edge counts above n(n-1)/2 instead of n(n-1)")
	generateCmd.Flags().IntVar(&genRemoveRandom, "remove-random", 0, "Remove this many random nodes after generation")
	generateCmd.Flags().StringVar(&genSave, "save", "", "Also write the generated graph as a YAML run file")
	addOutputFlags(generateCmd)

	buildCmd.Flags().StringVarP(&runFile, "file", "f", "", "YAML run file")
	_ = buildCmd.MarkFlagRequired("file")
	addOutputFlags(buildCmd)

	dumpCmd.Flags().StringVarP(&runFile, "file", "f", "", "YAML run file")
	_ = dumpCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(generateCmd, buildCmd, dumpCmd, versionCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outFormat, "format", "", "Output format: svg, dot, json or text (default text, or the run file's)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().Float64Var(&outWidth, "width", 0, "Canvas width in pixels")
	cmd.Flags().Float64Var(&outHeight, "height", 0, "Canvas height in pixels")
	cmd.Flags().Float64Var(&outJitter, "jitter", 0, "Simplex-noise displacement of the circular layout, in pixels")
}

func setupLogging(cmd *cobra.Command, args []string) {
	log.SetOutput(cmd.ErrOrStderr())
	if debugFlag {
		log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
		log.Println("Debug mode enabled")
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := genSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	run := &config.Run{
		Generate: &config.GenerateSpec{
			Nodes:           genNodes,
			Edges:           genEdges,
			Seed:            &seed,
			UndirectedBound: genStrictBound,
		},
		RemoveRandom: genRemoveRandom,
	}
	if err := run.Validate(); err != nil {
		return err
	}
	if debugFlag {
		log.Printf("generate: nodes=%d edges=%d seed=%d strict=%v", genNodes, genEdges, seed, genStrictBound)
	}

	g, res, err := run.NewGraph()
	if err != nil {
		return err
	}
	reportRemoved(res)

	snap := g.PrintAll()
	if genSave != "" {
		if err := config.FromSnapshot(snap).Save(genSave); err != nil {
			return err
		}
		log.Printf("Saved run file %s", genSave)
	}

	return emit(cmd, snap, run.OutputOptions())
}

func runBuild(cmd *cobra.Command, args []string) error {
	run, err := config.Load(runFile)
	if err != nil {
		return err
	}
	g, res, err := run.NewGraph()
	if err != nil {
		return fmt.Errorf("%s: %w", runFile, err)
	}
	reportRemoved(res)

	return emit(cmd, g.PrintAll(), run.OutputOptions())
}

func runDump(cmd *cobra.Command, args []string) error {
	run, err := config.Load(runFile)
	if err != nil {
		return err
	}
	g, res, err := run.NewGraph()
	if err != nil {
		return fmt.Errorf("%s: %w", runFile, err)
	}
	reportRemoved(res)

	w := cmd.OutOrStdout()
	fmt.Fprint(w, g.PrintAll())
	writeStats(w, g.Stats())

	return nil
}

// emit applies output flag overrides to opts and writes the rendered
// snapshot to --out or stdout.
func emit(cmd *cobra.Command, snap core.Snapshot, opts *render.OutputOptions) error {
	if outFormat != "" {
		opts.Format = outFormat
	}
	if outWidth > 0 {
		opts.Width = outWidth
	}
	if outHeight > 0 {
		opts.Height = outHeight
	}
	if outJitter > 0 {
		opts.Jitter = outJitter
	}

	data, err := render.Render(snap, opts)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Printf("Wrote %s (%d nodes, %d edges) to %s", opts.Format, len(snap.Nodes), len(snap.Edges), outPath)

	return nil
}

func reportRemoved(res config.Result) {
	for _, label := range res.Removed {
		log.Printf("Removed random node %s", label)
	}
}

func writeStats(w io.Writer, s core.GraphStats) {
	fmt.Fprintf(w, "Stats: nodes=%d edges=%d isolated=%d max_degree=%d total_weight=%s\n",
		s.NodeCount, s.EdgeCount, s.IsolatedCount, s.MaxDegree, core.FormatWeight(s.TotalWeight))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
