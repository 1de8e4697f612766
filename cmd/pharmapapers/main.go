// Package main provides the pharmapapers CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skoglund/pharmapapers/internal/config"
	"github.com/skoglund/pharmapapers/internal/export"
	"github.com/skoglund/pharmapapers/internal/filter"
	"github.com/skoglund/pharmapapers/internal/logger"
	"github.com/skoglund/pharmapapers/internal/pubmed"
)

// Version is set at build time via ldflags
var Version = "0.1.0"

var (
	outputFile string
	debugMode  bool
	maxResults int
	flagEmail  string
	flagAPIKey string
)

var rootCmd = &cobra.Command{
	Use:   "pharmapapers <query>",
	Short: "Fetch PubMed papers with pharma/biotech company affiliations",
	Long: `pharmapapers queries PubMed for papers matching a search term,
classifies each author's affiliation, and exports the papers that have at
least one pharmaceutical or biotech company author as CSV.

The query supports full PubMed syntax and is passed to the API verbatim.

Examples:
  pharmapapers "cancer AND drug discovery"
  pharmapapers "covid-19 AND vaccine" -f results.csv
  pharmapapers "diabetes AND insulin" --debug --max-results 50`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Write results to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "Print debug information during execution")
	rootCmd.Flags().IntVar(&maxResults, "max-results", pubmed.DefaultMaxResults, "Maximum number of results to fetch")
	rootCmd.Flags().StringVar(&flagEmail, "email", "", "Email address for NCBI API identification (recommended)")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "NCBI API key for increased rate limits")
	rootCmd.Version = Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debugMode {
		logger.SetLevel(logger.LevelDebug)
	}

	query := args[0]
	logger.Info("Starting PubMed search for query: %s", query)

	email, apiKey, err := config.Resolve(flagEmail, flagAPIKey)
	if err != nil {
		return err
	}

	var opts []pubmed.ClientOption
	if email != "" {
		opts = append(opts, pubmed.WithEmail(email))
	}
	if apiKey != "" {
		opts = append(opts, pubmed.WithAPIKey(apiKey))
	}
	client := pubmed.NewClient(opts...)

	logger.Info("Fetching papers from PubMed...")
	allPapers, err := client.Search(cmd.Context(), query, maxResults)
	if err != nil {
		return fmt.Errorf("searching PubMed: %w", err)
	}
	if len(allPapers) == 0 {
		return fmt.Errorf("no papers found for the given query")
	}
	logger.Info("Found %d total papers", len(allPapers))

	logger.Info("Filtering papers with pharmaceutical/biotech affiliations...")
	filtered := filter.PharmaPapers(allPapers)
	if len(filtered) == 0 {
		return fmt.Errorf("no papers found with pharmaceutical/biotech affiliations")
	}

	if debugMode {
		stats := filter.Summarize(filtered)
		logger.Debug("Paper statistics: %+v", stats)
	}

	if outputFile != "" {
		logger.Info("Writing results to file: %s", outputFile)
		if err := export.WriteFile(outputFile, filtered); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", outputFile)
	} else {
		out, err := export.String(filtered)
		if err != nil {
			return err
		}
		fmt.Print(out)
	}

	logger.Info("Process completed successfully")
	return nil
}
