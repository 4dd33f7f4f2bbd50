package markdown

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var tableClassRegex = regexp.MustCompile(`^spec-table$`)

// TextProcessor renders the free-text equipment fields (description,
// specifications, requirements) written by staff in markdown.
type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
		goldmark.WithExtensions(extension.Table, extension.Strikethrough, extension.Linkify),
	)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(tableClassRegex).OnElements("table")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{md: md, policy: p, strict: bluemonday.StrictPolicy()}
}

// Render converts markdown to sanitized HTML. Raw HTML in the input is left
// to the sanitizer. Tables get the spec-table class for the spec sheet style.
func (tp *TextProcessor) Render(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	rendered := strings.ReplaceAll(buf.String(), "<table>", `<table class="spec-table">`)
	return template.HTML(strings.TrimSpace(tp.policy.Sanitize(rendered)))
}

// Plain strips every tag, for text that comes from the backend but is shown
// as plain text (error messages in notifications).
func (tp *TextProcessor) Plain(text string) string {
	return strings.TrimSpace(tp.strict.Sanitize(text))
}
