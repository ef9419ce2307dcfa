package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"ruffle/internal/diag"
	"ruffle/internal/diagfmt"
	"ruffle/internal/driver"
	"ruffle/internal/observ"
	"ruffle/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.rf|dir]",
	Short: "Tokenize ruffle source files",
	Long: `Tokenize breaks ruffle source files into their constituent tokens.

With a file argument it tokenizes that file. With a directory argument it
tokenizes every *.rf file inside, in parallel. With no argument it reads the
nearest ruffle.toml and tokenizes its [run].main target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|plain)")
	tokenizeCmd.Flags().Int("jobs", runtime.NumCPU(), "parallel workers for directory mode")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
	tokenizeCmd.Flags().Bool("progress", false, "show interactive progress in directory mode")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "plain":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	target, err := resolveTokenizeTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	timer := observ.NewTimer()

	if info.IsDir() {
		err = runTokenizeDir(cmd, target, format, maxDiagnostics, timer)
	} else {
		err = runTokenizeFile(cmd, target, format, maxDiagnostics, timer)
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return err
}

func resolveTokenizeTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noRuffleTomlMessage)
	}
	return resolveProjectTarget(manifest)
}

func runTokenizeFile(cmd *cobra.Command, path, format string, maxDiagnostics int, timer *observ.Timer) error {
	useCache, _ := cmd.Flags().GetBool("cache")
	var cache *driver.DiskCache
	if useCache {
		var err error
		cache, err = driver.OpenDiskCache("ruffle")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
	}

	phase := timer.Begin("tokenize")
	result, err := driver.TokenizeWithCache(path, maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d tokens", len(result.Results)))

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		printDiagnostics(cmd, result.Bag, result.FileSet)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Results, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Results)
	default:
		return diagfmt.FormatTokensPlain(os.Stdout, result.Results, result.File)
	}
}

func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int, timer *observ.Timer) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	withProgress, _ := cmd.Flags().GetBool("progress")

	phase := timer.Begin("tokenize-dir")
	var (
		fs      *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	if withProgress && isTerminal(os.Stdout) {
		fs, results, err = runTokenizeDirWithUI(cmd.Context(), "tokenize "+dir, dir, maxDiagnostics, jobs)
	} else {
		fs, results, err = driver.TokenizeDir(cmd.Context(), dir, maxDiagnostics, jobs, nil)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	for _, fileResult := range results {
		if fileResult.Bag.HasErrors() || fileResult.Bag.HasWarnings() {
			printDiagnostics(cmd, fileResult.Bag, fs)
		}
	}

	for _, fileResult := range results {
		fmt.Fprintf(os.Stdout, "%s:\n", fileResult.Path)
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, fileResult.Results, fs); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, fileResult.Results); err != nil {
				return err
			}
		default:
			file := fs.Get(fileResult.FileID)
			if err := diagfmt.FormatTokensPlain(os.Stdout, fileResult.Results, file); err != nil {
				return err
			}
		}
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
