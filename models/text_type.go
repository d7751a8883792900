package models

import (
	"fmt"
	"strings"
)

// TextType selects the structural rubric and prompt variant used for grading
type TextType string

const (
	LabReport      TextType = "Science Lab Report"
	Instructions   TextType = "Instructions"
	ProgressReport TextType = "Progress Report"
)

// DefaultTextType is the text type a new session starts with
const DefaultTextType = LabReport

// TextTypes lists every supported text type in display order
var TextTypes = []TextType{LabReport, Instructions, ProgressReport}

var textTypeSlugs = map[TextType]string{
	LabReport:      "lab-report",
	Instructions:   "instructions",
	ProgressReport: "progress-report",
}

// Slug returns the URL-friendly identifier of the text type
func (t TextType) Slug() string {
	return textTypeSlugs[t]
}

// Valid reports whether t is one of the supported text types
func (t TextType) Valid() bool {
	_, ok := textTypeSlugs[t]
	return ok
}

// ParseTextType accepts either the display name or the slug, ignoring case
func ParseTextType(raw string) (TextType, error) {
	value := strings.TrimSpace(raw)
	for _, t := range TextTypes {
		if strings.EqualFold(value, string(t)) || strings.EqualFold(value, t.Slug()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown text type %q", raw)
}

// TextTypeInfo is the JSON view of a text type
type TextTypeInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Info returns the JSON view of the text type
func (t TextType) Info() TextTypeInfo {
	return TextTypeInfo{Name: string(t), Slug: t.Slug()}
}
