// Command grade grades technical writing from the terminal against the
// GTS302 rubric.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"writeassess/config"
	"writeassess/internal/logger"
	"writeassess/models"
	"writeassess/services"
)

var (
	apiKey     string
	configPath string
	plain      bool
	verbose    bool
	textType   string
)

var rootCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade technical writing against the GTS302 rubric",
	Long: `grade sends a Science Lab Report, Instructions or Progress Report to an
OpenAI-compatible model and prints the rubric scores with feedback.

The API key is read from --api-key or OPENAI_API_KEY.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "OpenAI API key (default $OPENAI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print plain text instead of rendered markdown")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(submitCmd, topicCmd, rubricCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveAPIKey prefers the flag over the environment
func resolveAPIKey() string {
	if apiKey != "" {
		return apiKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

func newLogger() (*logger.Logger, error) {
	if !verbose {
		return logger.Nop(), nil
	}
	return logger.New("development")
}

// newClient builds the model client from config and environment
func newClient(log *logger.Logger) (*services.ChatGPT, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return services.NewChatGPT(cfg.Openai.BaseURL, cfg.Openai.Model, timeout, log), nil
}

func parseTextTypeFlag() (models.TextType, error) {
	if textType == "" {
		return models.DefaultTextType, nil
	}
	return models.ParseTextType(textType)
}

// render prints markdown through glamour unless --plain is set
func render(cmd *cobra.Command, markdown string) error {
	if plain {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
