package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doctldr"
	"github.com/fwojciec/doctldr/charset"
	"github.com/fwojciec/doctldr/goldmark"
	"github.com/fwojciec/doctldr/goquery"
	"github.com/fwojciec/doctldr/openai"
	"github.com/fwojciec/doctldr/output"
	dslog "github.com/fwojciec/doctldr/slog"
	"github.com/fwojciec/doctldr/walk"
	"github.com/fwojciec/doctldr/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// APIBase overrides the summarization endpoint. Set before calling
	// Run(); empty means the provider default.
	APIBase string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doctldr"),
		kong.Description("Summarize directories of documentation files with an LLM."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input directories specified. Run 'doctldr --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Load configuration and overlay CLI flags.
	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Model != "" {
		cfg.Default.Model = cli.Model
	}
	if cli.MaxTokens > 0 {
		cfg.Default.MaxTokens = cli.MaxTokens
	}
	if cli.Format != "" {
		cfg.Default.Format = cli.Format
	}
	cfg.Default.Verbose = cli.Verbose

	logger := newLogger(stderr, cfg.Default.Verbose, cli.Debug)

	// Select the output formatter up front so an unsupported format
	// fails before any processing starts.
	formatter, err := output.NewFormatter(cfg.Default.Format, cfg.Output.IncludeMetadata)
	if err != nil {
		return err
	}

	reg := doctldr.NewRegistry(&doctldr.Passthrough{})
	reg.Register(doctldr.FormatMarkdown, goldmark.NewExtractor())
	reg.Register(doctldr.FormatHTML, goquery.NewExtractor())

	wp := walk.NewProcessor(cfg.Processing, charset.NewDecoder(), reg)
	wp.Logger = logger

	var processor doctldr.Processor = wp
	if cfg.Default.Verbose || cli.Debug {
		processor = dslog.NewProcessor(processor, logger)
	}

	// The credential is required at startup even when --dry-run means
	// no request will be made.
	apiKey := os.Getenv(cfg.API.KeyEnv)
	if apiKey == "" {
		fmt.Fprintf(stderr, "Hint: export %s or add it to a .env file\n", cfg.API.KeyEnv)
		return doctldr.Errorf(doctldr.EINVALID, "environment variable %s not set", cfg.API.KeyEnv)
	}

	var summarizer doctldr.Summarizer
	if !cli.DryRun {
		oa := openai.NewSummarizer(apiKey, cfg.Default.Model, cfg.Default.MaxTokens)
		if m.APIBase != "" {
			oa.BaseURL = m.APIBase
		}
		summarizer = oa
		if cfg.Default.Verbose || cli.Debug {
			summarizer = dslog.NewSummarizer(summarizer, logger)
		}
	}

	// Sequential pipeline: one directory, one file, one summarization
	// request at a time. A failing file is skipped by the processor; a
	// failing summarization aborts the run.
	var summaries []*doctldr.Summary
	for _, dir := range cli.Dirs {
		docs, err := processor.ProcessDirectory(ctx, dir)
		if err != nil {
			return fmt.Errorf("failed to process directory %q: %w", dir, err)
		}

		for _, doc := range docs {
			if cli.DryRun {
				fmt.Fprintf(stdout, "Would process: %s\n", doc.Path)
				continue
			}

			text, err := summarizer.Summarize(ctx, doc.Content)
			if err != nil {
				return fmt.Errorf("failed to summarize %q: %w", doc.Path, err)
			}
			summaries = append(summaries, doctldr.NewSummary(doc, text))
		}
	}

	if cli.DryRun {
		return nil
	}

	return output.NewWriter(formatter).Write(summaries, cli.Output, stdout)
}

// newLogger builds the stderr logger. Warnings only by default, INFO
// with verbose, DEBUG with debug.
func newLogger(stderr io.Writer, verbose, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
