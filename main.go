package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"land-acreage/config"
	"land-acreage/gazetteer"
	"land-acreage/services"
	"land-acreage/storage"
	"land-acreage/utils"
)

func main() {
	cfg := config.Load()

	rootCmd := createRootCmd(cfg)
	rootCmd.AddCommand(createInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createRootCmd processes a listings CSV end to end.
func createRootCmd(cfg *config.Config) *cobra.Command {
	var noPrepass bool

	cmd := &cobra.Command{
		Use:   "acreage",
		Short: "Extract land size and price per acre from listing text",
		Long: `Reads a land listings CSV, finds the size phrase in each listing's text,
converts it to acres and derives the price per acre. Listings without a
usable size are dropped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noPrepass {
				cfg.FractionPrepass = false
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.InputCSVPath, "input", "i", cfg.InputCSVPath, "listings CSV to read")
	f.StringVarP(&cfg.OutputCSVPath, "output", "o", cfg.OutputCSVPath, "processed CSV to write")
	f.BoolVar(&cfg.ExtractLocations, "locations", cfg.ExtractLocations, "resolve county, density and years on Jiji")
	f.BoolVar(&noPrepass, "no-prepass", false, "skip the fraction canonicalisation pass")
	f.BoolVar(&cfg.PrintReport, "report", cfg.PrintReport, "print the insight report")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "info or debug")
	return cmd
}

func run(cfg *config.Config) error {
	logger := utils.NewLoggerWithOptions(utils.LogOptions{
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Debug:      cfg.Debug(),
	})
	defer logger.Close()

	logger.Info("=== Land acreage extraction starting ===")
	logger.Info("Config — input: %s | output: %s | prepass: %t | locations: %t",
		cfg.InputCSVPath, cfg.OutputCSVPath, cfg.FractionPrepass, cfg.ExtractLocations)

	table, err := storage.NewCSVReader(cfg.InputCSVPath).Read()
	if err != nil {
		logger.Error("Failed to load listings: %v", err)
		return err
	}
	logger.Info("Loaded %d listings with %d columns", len(table.Rows), len(table.Columns))

	processor := services.NewProcessor(logger, gazetteer.New(), services.Options{
		FractionPrepass:  cfg.FractionPrepass,
		ExtractLocations: cfg.ExtractLocations,
	})
	processed, err := processor.Process(table)
	if err != nil {
		return err
	}

	if len(processed.Rows) == 0 {
		logger.Warn("All listings were dropped during extraction")
	}

	var out storage.TableWriter
	out, err = storage.NewCSVWriter(cfg.OutputCSVPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		return err
	}
	if err := out.Write(processed); err != nil {
		_ = out.Close()
		logger.Error("CSV write failed: %v", err)
		return err
	}
	if err := out.Close(); err != nil {
		logger.Error("CSV close failed: %v", err)
		return err
	}
	logger.Info("Processed listings saved to %s", cfg.OutputCSVPath)

	if cfg.PrintReport {
		insightSvc := services.NewInsightService(logger)
		insightSvc.Print(insightSvc.Generate(processed.Rows))
	}
	return nil
}

// createInspectCmd shows how a single piece of text is read.
func createInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [text]",
		Short: "Show the size phrase and acreage found in text",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			in := services.Inspect(args[0])
			w := cmd.OutOrStdout()
			if in.Phrase == "" {
				fmt.Fprintln(w, "no size phrase found")
				return
			}
			fmt.Fprintf(w, "phrase    : %q\n", in.Phrase)
			fmt.Fprintf(w, "category  : %s\n", in.Category)
			if in.Canonical != "" {
				fmt.Fprintf(w, "canonical : %q\n", in.Canonical)
			}
			if !in.Found {
				fmt.Fprintln(w, "acreage   : no acreage")
				return
			}
			fmt.Fprintf(w, "rule      : %s\n", in.Rule)
			fmt.Fprintf(w, "acreage   : %g\n", in.Acreage)
		},
	}
}
