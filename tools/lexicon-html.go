package tools

import (
	"fmt"
	"html"
	"io"

	"github.com/rsklar/caspar/lexicon"

	md "github.com/russross/blackfriday/v2"
)

// RenderLexiconHTML renders the lexicon Source as an HTML fragment.
//
// Doc strings are treated as Markdown.
func RenderLexiconHTML(s *lexicon.Source, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="lexiconDoc doc">%s</div>`, md.Run([]byte(s.Doc)))

	f(`<div class="words"><table>`)
	for word, requests := range s.Words {
		f(`<tr class="word"><td><span id="%s" class="wordName">%s</span></td><td>`,
			html.EscapeString(word), html.EscapeString(word))
		renderPacket(f, requests)
		f(`</td></tr>`)
	}
	f(`</table></div>`)

	return nil
}

func renderPacket(f func(string, ...interface{}), requests []lexicon.RequestSource) {
	f(`<table class="packet">`)
	for i, r := range requests {
		f(`<tr><td><div class="requestNum">%d</div></td><td>`, i)
		f(`<table>`)
		if r.Doc != "" {
			f(`<tr><td></td><td colspan="2"><div class="requestDoc doc">%s</div></td></tr>`,
				md.Run([]byte(r.Doc)))
		}
		if r.Test != "" {
			f(`<tr><td></td><td>test</td><td><code>%s</code></td></tr>`,
				html.EscapeString(r.Test))
		}
		for _, a := range r.Assign {
			f(`<tr><td></td><td>assign</td><td><code>%s</code> &larr; <code>%s</code></td></tr>`,
				html.EscapeString(a.Slot), html.EscapeString(a.Expr))
		}
		for _, next := range r.Next {
			f(`<tr><td></td><td>next</td><td>`)
			renderPacket(f, next)
			f(`</td></tr>`)
		}
		f(`</table>`)
		f(`</td></tr>`)
	}
	f(`</table>`)
}

// RenderLexiconPage renders a complete HTML page for the lexicon
// Source.
func RenderLexiconPage(s *lexicon.Source, out io.Writer, cssFiles []string) error {
	if cssFiles == nil {
		cssFiles = []string{"/static/lexicon-html.css"}
	}

	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	name := s.Name
	if name == "" {
		name = "lexicon"
	}

	f(`<!DOCTYPE html>`)
	f(`<html lang="en">`)
	f(`<head>`)
	f(`<meta charset="utf-8">`)
	f(`<title>%s</title>`, html.EscapeString(name))
	for _, css := range cssFiles {
		f(`<link rel="stylesheet" href="%s">`, css)
	}
	f(`</head>`)
	f(`<body>`)
	f(`<h1>%s</h1>`, html.EscapeString(name))
	if err := RenderLexiconHTML(s, out); err != nil {
		return err
	}
	f(`</body>`)
	f(`</html>`)

	return nil
}

// ReadAndRenderLexiconPage reads a YAML lexicon from the file and
// renders a complete HTML page.
func ReadAndRenderLexiconPage(filename string, cssFiles []string, out io.Writer) error {
	s, err := lexicon.LoadFile(filename)
	if err != nil {
		return err
	}
	return RenderLexiconPage(s, out, cssFiles)
}
