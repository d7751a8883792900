package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"writeassess/models"
	"writeassess/services"
)

var inputFile string

// submitCmd grades one text
var submitCmd = &cobra.Command{
	Use:   "submit [text]",
	Short: "Grade a text and print the rubric scores",
	Long: `Grades text read from --file (use - for stdin) or given as the argument.

Examples:
  grade submit --type lab-report --file report.txt
  cat memo.txt | grade submit --type progress-report --file -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&textType, "type", "t", "", "text type: lab-report, instructions or progress-report")
	submitCmd.Flags().StringVarP(&inputFile, "file", "f", "", "file holding the text, - for stdin")
}

func readSubmission(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case inputFile == "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	case inputFile != "":
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", inputFile, err)
		}
		return string(raw), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", nil
	}
}

func runSubmit(cmd *cobra.Command, args []string) error {
	tt, err := parseTextTypeFlag()
	if err != nil {
		return err
	}
	text, err := readSubmission(cmd, args)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := newClient(log)
	if err != nil {
		return err
	}

	words := services.CountWords(text)
	if strings.TrimSpace(text) != "" && words < models.MinWordCount {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: %d words, below the recommended minimum of %d.\n", words, models.MinWordCount)
	}

	assessment := services.NewAssessment(client, log, nil)
	result, err := assessment.Grade(cmd.Context(), resolveAPIKey(), tt, text)
	if err != nil {
		return err
	}

	if plain {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), services.FormatResultsAsText(result))
		return err
	}
	return render(cmd, services.FormatResultsAsMarkdown(result))
}
