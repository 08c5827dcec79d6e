package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/bootstrap"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter",
	Long:  "Generate a cover letter from a résumé and a job posting. The letter is printed to stdout; --docx also writes and stores a DOCX export.",
	RunE:  runGenerate,
}

var (
	genCVFile     string
	genJobFile    string
	genName       string
	genCompany    string
	genStrengths  string
	genWeaknesses string
	genTone       string
	genDocxOut    string
)

func init() {
	generateCmd.Flags().StringVar(&genCVFile, "cv", "", "Path to the résumé (PDF or DOCX)")
	generateCmd.Flags().StringVar(&genJobFile, "job", "", "Path to the job posting (PDF)")
	generateCmd.Flags().StringVar(&genName, "name", "Max Mustermann", "Applicant name")
	generateCmd.Flags().StringVar(&genCompany, "company", "Beispiel GmbH", "Company name")
	generateCmd.Flags().StringVar(&genStrengths, "strengths", "", "Strengths, free text")
	generateCmd.Flags().StringVar(&genWeaknesses, "weaknesses", "", "Weaknesses, free text")
	generateCmd.Flags().StringVar(&genTone, "tone", model.DefaultTone, "Tone: "+strings.Join(model.Tones, ", "))
	generateCmd.Flags().StringVarP(&genDocxOut, "docx", "o", "", "Also write the letter as DOCX to this path")
	_ = generateCmd.MarkFlagRequired("cv")
	_ = generateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger()

	app, err := bootstrap.New(ctx, logger)
	if err != nil {
		return err
	}

	cv, err := readDocument(genCVFile)
	if err != nil {
		return err
	}
	job, err := readDocument(genJobFile)
	if err != nil {
		return err
	}
	if job.MediaType != model.MediaTypePDF {
		return apperr.New(apperr.KindUnsupportedFormat, fmt.Sprintf("Ungültiges Stellenprofil-Format: %s. Nur PDF erlaubt.", job.MediaType))
	}

	letter, err := app.Usecase.Generate(ctx, cv, job, model.ApplicantProfile{
		Name:       genName,
		Company:    genCompany,
		Strengths:  genStrengths,
		Weaknesses: genWeaknesses,
		Tone:       genTone,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schlüsselwörter (Lebenslauf): %s\n", strings.Join(letter.CVKeywords, ", "))
	fmt.Fprintf(out, "Schlüsselwörter (Stellenprofil): %s\n\n", strings.Join(letter.JobKeywords, ", "))
	fmt.Fprintln(out, letter.Text)

	if genDocxOut == "" {
		return nil
	}
	doc, err := app.Usecase.Export(ctx, letter.Text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genDocxOut, doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", genDocxOut, err)
	}
	logger.WithField("key", doc.Key).Infof("wrote %s", genDocxOut)
	return nil
}
