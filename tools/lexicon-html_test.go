package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rsklar/caspar/lexicon"
)

func TestRenderLexiconPage(t *testing.T) {
	src, err := lexicon.Load([]byte(`
name: basic-english
doc: |
  Markdown *emphasis* here.
words:
  store:
    - doc: a noun phrase
      assign:
        - slot: cdForm
          expr: "(store)"
        - slot: partOfSpeech
          expr: noun-phrase
  went:
    - test: "(eq ?currentWord went)"
      assign:
        - slot: partOfSpeech
          expr: verb
      next:
        - - test: "(eq ?partOfSpeech noun-phrase)"
            assign:
              - slot: toLoc
                expr: "?cdForm"
`))
	if err != nil {
		t.Fatal(err)
	}

	out := bytes.NewBuffer(make([]byte, 0, 1024*16))
	if err := RenderLexiconPage(src, out, []string{"lexicon.css"}); err != nil {
		t.Fatal(err)
	}

	rendered := out.String()
	for _, want := range []string{
		"<em>emphasis</em>",
		"wordName",
		"(eq ?currentWord went)",
		"lexicon.css",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered page lacks %q", want)
		}
	}
}
