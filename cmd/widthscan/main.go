package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/younsl/widthscan/internal/models"
	"github.com/younsl/widthscan/internal/version"
	"github.com/younsl/widthscan/pkg/aws"
	"github.com/younsl/widthscan/pkg/formatter"
	"github.com/younsl/widthscan/pkg/report"
	"github.com/younsl/widthscan/pkg/samples"
	"github.com/younsl/widthscan/pkg/source"
	"github.com/younsl/widthscan/pkg/utils"
)

type options struct {
	files         bool
	output        string
	useSamples    bool
	region        string
	maxObjectSize int64
	noColor       bool
	sortByWidth   bool
	showVersion   bool
}

// startLoadSpinner creates and starts a spinner for the input loading phase
func startLoadSpinner(w io.Writer, count int) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = fmt.Sprintf(" Loading %d inputs ...", count)
	s.Start()
	return s
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "widthscan [text|-|file:path|s3://bucket/key ...]",
		Short: "CLI tool to analyze character composition and display width of text",
		Long: `widthscan counts ASCII, CJK, emoji and other Unicode characters in
multilingual text and estimates how many terminal columns it occupies.

CJK characters and emoji count as 2 columns, a tab as 4 and everything else
as 1. This is an approximation, not an East Asian Width implementation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdin, stdout, stderr)
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVarP(&opts.files, "files", "f", false, "Treat arguments as file paths")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", formatter.OutputTable,
		fmt.Sprintf("Output format (%s, %s, %s)", formatter.OutputTable, formatter.OutputJSON, formatter.OutputAligned))
	rootCmd.Flags().BoolVar(&opts.useSamples, "samples", false, "Analyze the built-in multilingual samples")
	rootCmd.Flags().StringVarP(&opts.region, "region", "r", utils.GetDefaultRegion(), "AWS region for s3:// inputs")
	rootCmd.Flags().Int64Var(&opts.maxObjectSize, "max-object-size", aws.DefaultMaxObjectSize,
		"Largest S3 object to read in bytes")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&opts.sortByWidth, "sort", false, "Sort results by display width, widest first")

	return rootCmd
}

func run(ctx context.Context, opts *options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Get())
		return nil
	}

	if !formatter.IsValidOutput(opts.output) {
		return fmt.Errorf("unknown output format %q", opts.output)
	}
	if opts.noColor {
		color.NoColor = true
	}

	if len(args) == 0 && !opts.useSamples {
		return fmt.Errorf("no input given, pass text, a file with --files, - for stdin, or --samples")
	}

	loader := &source.Loader{Stdin: stdin, FilePaths: opts.files}
	if source.NeedsS3(args) {
		if !utils.IsValidRegion(opts.region) {
			fmt.Fprintf(stderr, "Warning: Unknown region '%s', passing it to AWS as is\n", opts.region)
		}
		client, err := aws.NewS3Client(ctx, opts.region)
		if err != nil {
			fmt.Fprintf(stderr, "Error initializing S3 client: %v\n", err)
		} else {
			client.SetMaxObjectSize(opts.maxObjectSize)
			loader.S3 = client
		}
	}

	scanStartTime := time.Now()
	reports := collectReports(ctx, loader, opts, args, stderr)
	scanDuration := time.Since(scanStartTime)

	if len(reports) == 0 {
		return fmt.Errorf("no input could be loaded")
	}
	if opts.sortByWidth {
		report.SortByWidth(reports)
	}

	switch opts.output {
	case formatter.OutputJSON:
		return formatter.PrintReportJSON(stdout, reports)
	case formatter.OutputAligned:
		formatter.PrintReportAligned(stdout, reports)
		if opts.useSamples {
			fmt.Fprintln(stdout)
			printPeopleTable(stdout)
		}
	default:
		formatter.PrintReportTable(stdout, reports, scanStartTime, scanDuration)
		formatter.PrintReportSummary(stdout, reports)
	}
	return nil
}

// collectReports loads every input and analyzes it. Failed inputs are
// reported on stderr and skipped.
func collectReports(ctx context.Context, loader *source.Loader, opts *options, args []string, stderr io.Writer) []models.TextReport {
	var reports []models.TextReport

	if opts.useSamples {
		for _, s := range samples.All() {
			reports = append(reports, report.New(s.Name, source.KindSample, s.Text))
		}
	}

	if len(args) == 0 {
		return reports
	}

	loadStart := time.Now()
	s := startLoadSpinner(stderr, len(args))
	results := loader.Load(ctx, args)

	loaded := 0
	for _, r := range results {
		if r.Err == nil {
			loaded++
		}
	}
	s.FinalMSG = fmt.Sprintf("✓ [%d of %d inputs loaded] Completed in %s\n",
		loaded, len(args), utils.FormatDuration(time.Since(loadStart)))
	s.Stop()

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "Error loading %s: %v\n", r.Spec, r.Err)
			continue
		}
		reports = append(reports, report.New(r.Input.Label, r.Input.Source, r.Input.Text))
	}
	return reports
}

// printPeopleTable renders the multilingual sample table with width-aware padding
func printPeopleTable(w io.Writer) {
	people := samples.People()
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{p.Name, fmt.Sprint(p.Age), p.City, p.Status})
	}

	formatter.PrintAlignedRows(w, strings.Split(samples.TableHeader, " | "), rows)
}

func main() {
	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
