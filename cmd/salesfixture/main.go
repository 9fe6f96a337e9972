// Package main provides the CLI entry point for salesfixture.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maxixo/dataworld/internal/config"
	"github.com/maxixo/dataworld/internal/logging"
	"github.com/maxixo/dataworld/pkg/salesgen"
	"github.com/spf13/cobra"
)

const defaultOutput = "test_data_sales.xlsx"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		return 1
	}
	return 0
}

// flags shared by the generate and verify commands.
type commonFlags struct {
	rows        int
	sheet       string
	catalogPath string
	logLevel    string
}

func (c *commonFlags) register(cmd *cobra.Command) {
	def := salesgen.DefaultOptions()
	cmd.Flags().IntVarP(&c.rows, "rows", "n", def.Rows, "Number of data rows")
	cmd.Flags().StringVar(&c.sheet, "sheet", def.SheetName, "Worksheet name")
	cmd.Flags().StringVar(&c.catalogPath, "catalog", "", "YAML catalog replacing the built-in value tables")
	cmd.Flags().StringVar(&c.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

// options builds generator options and a logger from the flags.
func (c *commonFlags) options(stderr io.Writer, name string) (salesgen.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return salesgen.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	settings := cfg.WithLogLevel(c.logLevel)

	opts := salesgen.DefaultOptions()
	opts.Rows = c.rows
	opts.SheetName = c.sheet
	opts.Logger = logging.NewLogger(logging.Options{
		Name:   name,
		Level:  settings.LogLevel,
		JSON:   settings.JSONLog,
		Output: stderr,
	})

	if c.catalogPath != "" {
		cat, err := salesgen.LoadCatalog(c.catalogPath)
		if err != nil {
			return salesgen.Options{}, err
		}
		opts.Catalog = cat
		opts.Logger.Debug("catalog loaded", "path", c.catalogPath, "categories", len(cat.Categories))
	}
	return opts, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		common commonFlags
		seed   int64
		format string
	)

	rootCmd := &cobra.Command{
		Use:   "salesfixture [output.xlsx]",
		Short: "Generate a spreadsheet of synthetic sales orders",
		Long: `salesfixture writes a test workbook with a styled header row and
randomly generated sales orders (50 by default). Use --seed for repeatable output.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := defaultOutput
			if len(args) == 1 {
				outputPath = args[0]
			}

			opts, err := common.options(stderr, "salesfixture")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				opts = opts.WithSeed(seed)
			}

			opts.Format = salesgen.FormatFromPath(outputPath)
			if format != "" {
				if opts.Format, err = salesgen.ParseFormat(format); err != nil {
					return err
				}
			}

			report, err := salesgen.Create(outputPath, opts)
			if err != nil {
				return err
			}
			printReport(stdout, report)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	common.register(rootCmd)
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for repeatable output (default: random)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: xlsx, csv (default: from file extension)")

	rootCmd.AddCommand(newVerifyCmd(stdout, stderr))
	return rootCmd
}

func newVerifyCmd(stdout, stderr io.Writer) *cobra.Command {
	var common commonFlags

	verifyCmd := &cobra.Command{
		Use:   "verify <fixture.xlsx>",
		Short: "Check a generated workbook against the fixture invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := common.options(stderr, "salesfixture.verify")
			if err != nil {
				return err
			}

			res, err := salesgen.Verify(args[0], opts)
			if errors.Is(err, salesgen.ErrFixtureInvalid) {
				for _, v := range res.Violations {
					fmt.Fprintf(stderr, "  - %s\n", v)
				}
				return fmt.Errorf("%s: %d violation(s)", args[0], len(res.Violations))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "✓ %s: %d rows x %d columns, all checks passed\n", args[0], res.Rows, res.Columns)
			return nil
		},
	}
	common.register(verifyCmd)
	return verifyCmd
}

func kindName(f salesgen.Format) string {
	if f == salesgen.FormatCSV {
		return "CSV"
	}
	return "Excel"
}

func printReport(w io.Writer, r *salesgen.Report) {
	fmt.Fprintf(w, "✓ Test %s file created: %s\n", kindName(r.Format), r.Path)
	fmt.Fprintf(w, "  - %d columns\n", r.Columns)
	fmt.Fprintf(w, "  - %d rows of sample data\n", r.Rows)
	fmt.Fprintf(w, "  - File location: %s\n", r.AbsPath)
	fmt.Fprintf(w, "  - Revenue: %.2f (mean %.2f, median %.2f)\n", r.Summary.Revenue, r.Summary.MeanOrder, r.Summary.MedianOrder)
}
