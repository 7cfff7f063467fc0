package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Becheler/orca/internal/buildinfo"
	"github.com/Becheler/orca/orbit"
	"github.com/Becheler/orca/orcaerr"
	"github.com/Becheler/orca/parse"
	"github.com/Becheler/orca/report"
)

var (
	outPath string
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:     "orca [input file]",
	Short:   "Compute graphlet degree vectors for an undirected simple graph",
	Version: buildinfo.String(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrca(args[0], outPath, quiet)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "", "output file path (default: input path with its extension replaced by _gdvs.out)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress info-level logging (only warnings and errors are logged)")
}

// run executes the CLI and returns the process exit code. An
// orbit.Session invariant panic is recovered exactly once here,
// converting it into a logged error and a non-zero exit rather than a
// crash — mirroring orcaerr's documented recovery contract.
func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*orcaerr.InvariantError); ok {
				slog.Error("invariant violation", "op", ie.Op, "err", ie.Error())
				code = 1
				return
			}
			panic(r)
		}
	}()

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		slog.Error("run failed", "kind", orcaerr.Classify(err).String(), "err", err)
		return 1
	}
	return 0
}

func runOrca(inputPath, out string, quiet bool) error {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in, err := os.Open(inputPath)
	if err != nil {
		return orcaerr.Wrapf("cmd/orca.runOrca", "opening %q: %v", orcaerr.ErrCannotOpenInput, inputPath, err)
	}
	defer in.Close()

	logger.Info("parsing input", "path", inputPath)
	g, err := parse.Parse(in)
	if err != nil {
		return err
	}
	logger.Info("parsed graph", "nodes", g.N, "edges", g.M)

	sess := &orbit.Session{
		Progress: func(stage string, pct int) {
			logger.Debug("stage progress", "stage", stage, "percent", pct)
		},
	}

	orbits, err := sess.Count(g)
	if err != nil {
		return err
	}

	dest := out
	if dest == "" {
		dest = defaultOutputPath(inputPath)
	}

	outFile, err := os.Create(dest)
	if err != nil {
		return orcaerr.Wrapf("cmd/orca.runOrca", "creating %q: %v", orcaerr.ErrCannotWriteOutput, dest, err)
	}
	defer outFile.Close()

	if err := report.Write(outFile, orbits); err != nil {
		return err
	}
	logger.Info("wrote output", "path", dest)
	return nil
}

// defaultOutputPath replaces the final extension (everything after the
// last '.') of inputPath with "_gdvs.out". A path with no extension gets
// the suffix appended.
func defaultOutputPath(inputPath string) string {
	dot := strings.LastIndex(inputPath, ".")
	slash := strings.LastIndexAny(inputPath, "/\\")
	if dot <= slash {
		return inputPath + "_gdvs.out"
	}
	return inputPath[:dot] + "_gdvs.out"
}
