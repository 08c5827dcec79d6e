package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/cover-letter-assistant/internal/bootstrap"
	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords <file>...",
	Short: "Print the ranked keywords of PDF or DOCX files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	textExtractor, keywordExtractor, err := bootstrap.NewExtraction(ctx, config.LoadExtractionConfig(), newLogger())
	if err != nil {
		return err
	}

	for _, path := range args {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		text, err := textExtractor.Extract(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", doc.Filename, strings.Join(keywordExtractor.Extract(text), ", "))
	}
	return nil
}
