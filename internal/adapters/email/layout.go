package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"recruitmail/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var layoutTemplate = template.Must(template.ParseFS(templateFS, "templates/layout.html"))

type layoutData struct {
	Subject    string
	Paragraphs [][]string
}

// htmlLayout implements domain.EmailLayout using the embedded layout.html.
type htmlLayout struct {
	tmpl *template.Template
}

// NewHTMLLayout returns an EmailLayout that renders text into the embedded HTML layout.
// Blank lines separate paragraphs; single newlines become <br>. All text is escaped.
func NewHTMLLayout() domain.EmailLayout {
	return &htmlLayout{tmpl: layoutTemplate}
}

func (l *htmlLayout) HTML(subject, text string) (string, error) {
	data := layoutData{Subject: subject, Paragraphs: splitParagraphs(text)}
	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html layout: %w", err)
	}
	return buf.String(), nil
}

func splitParagraphs(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out [][]string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		out = append(out, strings.Split(block, "\n"))
	}
	return out
}
