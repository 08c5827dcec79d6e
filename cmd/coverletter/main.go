// Command coverletter runs the cover letter pipeline from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/fadilmartias/cover-letter-assistant/internal/util"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "coverletter",
	Short: "Generate German cover letters from a résumé and a job posting",
	Long: "coverletter extracts text from a résumé (PDF or DOCX) and a job posting (PDF), " +
		"ranks their keywords and asks the configured language model for a cover letter.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func newLogger() *logrus.Logger {
	cfg := config.LoadAppConfig()
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger := util.NewLogger(cfg.Env, level)
	logger.SetOutput(os.Stderr)
	return logger
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
