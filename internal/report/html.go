package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/SscSPs/cash_book_app/internal/utils/format"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageStyle = `body{font-family:sans-serif;margin:2em}table{border-collapse:collapse;width:100%;margin-bottom:1.5em}` +
	`th,td{border:1px solid #999;padding:4px 8px}@media print{body{margin:0}}`

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// MarkdownToHTML converts a Markdown report into a standalone printable page.
// Urdu pages are laid out right to left.
func MarkdownToHTML(markdown string, title string, lang format.Lang) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	dir := "ltr"
	if lang == format.Urdu {
		dir = "rtl"
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html lang=%q dir=%q>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		string(lang), dir, html.EscapeString(title), pageStyle)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
