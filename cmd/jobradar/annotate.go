package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wingkam/jobradar/internal/annotate"
	"github.com/wingkam/jobradar/internal/ingestion"
	"github.com/wingkam/jobradar/internal/observability"
	"github.com/wingkam/jobradar/internal/types"
)

var (
	annotateFile    string
	annotateJSON    bool
	annotateGeneric bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate a job description from a text file",
	Long:  `Run the extraction rules against a single job description and print the resulting annotation. Useful for tuning patterns without a database.`,
	RunE:  runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateFile, "file", "f", "", "Path to text file containing the job description (required)")
	annotateCmd.Flags().BoolVar(&annotateJSON, "json", false, "Print the annotation as JSON")
	annotateCmd.Flags().BoolVar(&annotateGeneric, "generic", false, "Skip the regional profile and use generic rules only")

	annotateCmd.MarkFlagRequired("file") //nolint:errcheck

	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(annotateFile)
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	description := ingestion.CleanDescription(string(data))

	var ann types.Annotation
	if annotateGeneric {
		ann = annotate.GenericProfile().Annotate(description)
	} else {
		ann = annotate.Compose(description, annotate.HongKongProfile())
	}

	if annotateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ann)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnnotation(&types.Job{Title: annotateFile, Annotation: ann})
	return nil
}
