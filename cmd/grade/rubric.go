package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"writeassess/catalog"
	"writeassess/models"
)

// rubricCmd prints the rubric, and the structure rules when --type is given
var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Show the GTS302 rubric and text type structure",
	Args:  cobra.NoArgs,
	RunE:  runRubric,
}

func init() {
	rubricCmd.Flags().StringVarP(&textType, "type", "t", "", "also show the structure of this text type")
}

func runRubric(cmd *cobra.Command, _ []string) error {
	var b strings.Builder
	b.WriteString(rubricMarkdown())
	if textType != "" {
		tt, err := models.ParseTextType(textType)
		if err != nil {
			return err
		}
		b.WriteString("\n")
		b.WriteString(structureMarkdown(catalog.Structure(tt)))
	}
	return render(cmd, b.String())
}

func rubricMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# GTS302 Rubric\n\nThree categories scored %d-%d, total out of %d. Minimum length %d words.\n",
		models.MinCategoryScore, models.MaxCategoryScore, models.MaxTotalScore, models.MinWordCount)
	for _, info := range catalog.Categories() {
		fmt.Fprintf(&b, "\n## %s\n\n", info.Category)
		for _, c := range info.Criteria {
			fmt.Fprintf(&b, "- **%s**: %s\n", c.Name, c.Description)
		}
		b.WriteString("\n")
		for i := len(info.Descriptors) - 1; i >= 0; i-- {
			d := info.Descriptors[i]
			fmt.Fprintf(&b, "%d. **%s**", d.Score, d.Title)
			if d.Description != "" {
				fmt.Fprintf(&b, ": %s", d.Description)
			}
			b.WriteString("\n")
			for _, a := range d.Aspects {
				fmt.Fprintf(&b, "   - *%s*: %s\n", a.Criterion, a.Description)
			}
		}
	}
	return b.String()
}

func structureMarkdown(s models.TextTypeStructure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s structure\n", s.TextType)
	if s.Mnemonic != "" {
		fmt.Fprintf(&b, "\nMnemonic: **%s**\n", s.Mnemonic)
	}
	if s.Format != "" {
		fmt.Fprintf(&b, "\nFormat: %s\n", s.Format)
	}
	if len(s.MemoHeader) > 0 {
		fmt.Fprintf(&b, "\nMemo header: %s\n", strings.Join(s.MemoHeader, ", "))
	}
	writeSections(&b, "Primary structure", s.Primary)
	writeSections(&b, "Secondary structure", s.SecondarySections)
	writeList(&b, "Secondary structure notes", s.SecondaryNotes)
	if s.Recipe != nil {
		writeList(&b, "Recipes: required", s.Recipe.Required)
		writeList(&b, "Recipes: optional", s.Recipe.Optional)
	}
	writeList(&b, "Style tips", s.StyleTips)
	writeList(&b, "Common mistakes", s.CommonMistakes)
	return b.String()
}

func writeSections(b *strings.Builder, heading string, sections []models.StructureSection) {
	if len(sections) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n", heading)
	for _, sec := range sections {
		marker := ""
		if !sec.Required {
			marker = " (optional)"
		}
		fmt.Fprintf(b, "\n### %s%s\n\n", sec.Name, marker)
		for _, r := range sec.Requirements {
			fmt.Fprintf(b, "- %s\n", r)
		}
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
