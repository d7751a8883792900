package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"writeassess/models"
	"writeassess/services"
)

// topicCmd prints a practice topic
var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Get a practice topic for a text type",
	Long: `Lab reports and progress reports get a topic written by the model.
Instructions get a video exercise: watch it twice, take notes, then write.`,
	Args: cobra.NoArgs,
	RunE: runTopic,
}

func init() {
	topicCmd.Flags().StringVarP(&textType, "type", "t", "", "text type: lab-report, instructions or progress-report")
}

func runTopic(cmd *cobra.Command, _ []string) error {
	tt, err := parseTextTypeFlag()
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

	practice := services.NewPractice(client, log, nil, nil)
	topic, err := practice.NewTopic(cmd.Context(), resolveAPIKey(), tt)
	if err != nil {
		return err
	}
	return render(cmd, topicMarkdown(topic))
}

func topicMarkdown(topic *models.PracticeTopic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", topic.Title, topic.Description)
	if topic.Context != "" {
		fmt.Fprintf(&b, "\n**Context:** %s\n", topic.Context)
	}
	if topic.Video != nil {
		fmt.Fprintf(&b, "\n**Video:** [%s](%s) (%s)\n", topic.Video.Title, topic.Video.EmbedURL(), topic.Video.Duration)
	}
	if len(topic.Requirements) > 0 {
		b.WriteString("\n## Requirements\n\n")
		for _, r := range topic.Requirements {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	return b.String()
}
