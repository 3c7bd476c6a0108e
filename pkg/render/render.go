// Package render turns Markdown reply bodies into the HTML subset Telegram accepts.
package render

import (
	"bytes"
	"strings"

	"github.com/russross/blackfriday"
)

const extensions = blackfriday.EXTENSION_NO_INTRA_EMPHASIS |
	blackfriday.EXTENSION_STRIKETHROUGH

// telegramRenderer drops the tags Telegram rejects (<p>) and uses <b>/<i>
// for emphasis. Everything else is left to the stock HTML renderer.
type telegramRenderer struct {
	blackfriday.Renderer
}

func (r *telegramRenderer) Paragraph(out *bytes.Buffer, text func() bool) {
	marker := out.Len()
	if marker > 0 {
		out.WriteString("\n\n")
	}
	if !text() {
		out.Truncate(marker)
	}
}

func (r *telegramRenderer) DoubleEmphasis(out *bytes.Buffer, text []byte) {
	out.WriteString("<b>")
	out.Write(text)
	out.WriteString("</b>")
}

func (r *telegramRenderer) Emphasis(out *bytes.Buffer, text []byte) {
	if len(text) == 0 {
		return
	}
	out.WriteString("<i>")
	out.Write(text)
	out.WriteString("</i>")
}

func (r *telegramRenderer) StrikeThrough(out *bytes.Buffer, text []byte) {
	out.WriteString("<s>")
	out.Write(text)
	out.WriteString("</s>")
}

// ToHTML renders Markdown into Telegram-compatible HTML. Raw HTML in the
// input is skipped.
func ToHTML(markdown string) string {
	renderer := &telegramRenderer{
		Renderer: blackfriday.HtmlRenderer(blackfriday.HTML_SKIP_HTML, "", ""),
	}
	output := blackfriday.Markdown([]byte(markdown), renderer, extensions)
	return strings.TrimSpace(string(output))
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`&`, `\&`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`~`, `\~`,
	`<`, `\<`,
	`>`, `\>`,
)

// EscapeMarkdown makes arbitrary text (user names) safe to embed in Markdown.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Bold wraps escaped text in Markdown strong emphasis.
func Bold(s string) string {
	if s == "" {
		return ""
	}
	return "**" + EscapeMarkdown(s) + "**"
}
