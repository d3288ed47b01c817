package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	apiadapter "gorandtest/adapters/api"
	"gorandtest/adapters/excel"
	"gorandtest/adapters/report"
	statsrand "gorandtest/adapters/stats/randomness"
	"gorandtest/app"
	"gorandtest/domain/randomness"
	"gorandtest/internal"
	"gorandtest/internal/config"
	"gorandtest/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gorandtest",
		Short:         "Randomness test battery for sequences of samples in [0,1)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newFetchCmd(),
		newTestsCmd(),
	)
	return rootCmd
}

// runFlags are shared by every command that runs the battery
type runFlags struct {
	alpha     float64
	intervals int
	tests     string
	format    string
	output    string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "Significance level (default from ALPHA, 0.05)")
	cmd.Flags().IntVar(&f.intervals, "intervals", 0, "Interval count for the uniformity and KS tests (default from INTERVALS, 10)")
	cmd.Flags().StringVar(&f.tests, "tests", "", "Comma-separated test names (default: all)")
	cmd.Flags().StringVar(&f.format, "format", "text", "Report format: text, json, markdown or html")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the report to a file instead of stdout")
}

func newRunCmd() *cobra.Command {
	var flags runFlags
	var column, sheet string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run the battery over a column of an .xlsx or .csv file",
		Long: `Run the randomness battery over one column of a spreadsheet.

The first numeric column of the first sheet is used unless --column or
--sheet select another. Blank and NaN cells are dropped. Without an argument
the file named by INPUT_FILE is read.

Example: gorandtest run samples.xlsx --alpha 0.01 --format markdown -o report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			file := cfg.Input.File
			if len(args) == 1 {
				file = args[0]
			}
			if file == "" {
				return fmt.Errorf("no input file: pass one or set INPUT_FILE")
			}

			excelCfg := excel.DefaultExcelConfig()
			excelCfg.FilePath = file
			excelCfg.Sheet = firstNonEmpty(sheet, cfg.Input.Sheet)
			excelCfg.Column = firstNonEmpty(column, cfg.Input.Column)
			excelCfg.MaxSamples = cfg.Input.MaxSamples

			return runBattery(cmd.Context(), cmd.OutOrStdout(), cfg, excel.NewDataReader(excelCfg), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&column, "column", "", "Column header to read (default: first numeric column)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for .xlsx files (default: first sheet)")
	return cmd
}

func newFetchCmd() *cobra.Command {
	var flags runFlags
	var path, token, auth string

	cmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "Run the battery over samples from a remote JSON document",
		Long: `Fetch a JSON document and run the battery over the array at --path.

Paths use gjson syntax, e.g. "data.samples" or "rows.#.value" to collect one
field from an array of objects. Array elements may be numbers or numeric
strings. Without an argument the document at INPUT_URL is fetched.

Example: gorandtest fetch https://example.org/rng.json --path data --token $TOKEN`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			url := cfg.Input.URL
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				return fmt.Errorf("no input URL: pass one or set INPUT_URL")
			}

			source := &apiadapter.APIDataSource{
				Name:       url,
				BaseURL:    url,
				DataPath:   firstNonEmpty(path, cfg.Input.JSONPath),
				AuthToken:  firstNonEmpty(token, cfg.Input.Token),
				AuthMethod: auth,
			}
			if source.AuthToken != "" && source.AuthMethod == "" {
				source.AuthMethod = "bearer"
			}

			limits := apiadapter.DefaultAPIAdapterConfig()
			limits.MaxSamples = cfg.Input.MaxSamples

			return runBattery(cmd.Context(), cmd.OutOrStdout(), cfg, apiadapter.NewAPIReader(source, limits), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&path, "path", "", "gjson path of the samples array (default: document root)")
	cmd.Flags().StringVar(&token, "token", "", "Credential sent with the request")
	cmd.Flags().StringVar(&auth, "auth", "", "Auth method: bearer or api_key (default bearer when a token is set)")
	return cmd
}

func newTestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "List the available tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tDESCRIPTION")
			for _, entry := range statsrand.Catalog() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Name, entry.Title, entry.Description)
			}
			return tw.Flush()
		},
	}
}

func runBattery(ctx context.Context, stdout io.Writer, cfg *config.Config, source ports.SampleSource, flags runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	req := app.RunRequest{Alpha: flags.alpha, Intervals: flags.intervals}
	if flags.tests != "" {
		req.Tests, err = config.ParseTests(flags.tests)
		if err != nil {
			return err
		}
	}

	service := app.NewBatteryService(app.ServiceConfig{
		Alpha:         cfg.Battery.Alpha,
		Intervals:     cfg.Battery.Intervals,
		Tests:         cfg.Battery.Tests,
		MaxConcurrent: int64(cfg.Battery.MaxConcurrent),
		MaxSamples:    cfg.Input.MaxSamples,
	}, nil, tracerFor(cfg.LogLevel))

	rep, err := service.Run(ctx, source, req)
	if err != nil {
		return err
	}

	out := stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := report.Render(out, rep, format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if flags.output != "" {
		log.Printf("Report written to %s (%d of %d tests rejected)", flags.output, rep.Rejected(), len(rep.Entries))
	}
	return nil
}

// tracerFor enables per-test tracing at DEBUG and TRACE levels
func tracerFor(level string) randomness.Tracer {
	lvl := internal.ParseLevel(level)
	if lvl < internal.LogLevelDebug {
		return nil
	}
	return statsrand.NewLogTracer(internal.NewLogger(lvl))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
