package lexicon

import (
	"context"
	"strings"
	"testing"

	"github.com/rsklar/caspar/core"
)

var basicEnglishYAML = `
name: basic-english
doc: |
  Just enough English for errands.
words:
  jack:
    - assign:
        - slot: cdForm
          expr: "(person (name (jack)))"
        - slot: partOfSpeech
          expr: noun-phrase
  store:
    - assign:
        - slot: cdForm
          expr: "(store)"
        - slot: partOfSpeech
          expr: noun-phrase
  to:
    - assign:
        - slot: partOfSpeech
          expr: preposition
  went:
    - doc: ptrans with a pending to-expectation
      assign:
        - slot: subject
          expr: "?cdForm"
        - slot: partOfSpeech
          expr: verb
        - slot: concept
          expr: "(ptrans (actor ?subject) (object ?subject) (to ?toLoc) (from ?fromLoc))"
      next:
        - - test: "(eq ?currentWord to)"
            next:
              - - test: "(eq ?partOfSpeech noun-phrase)"
                  assign:
                    - slot: toLoc
                      expr: "?cdForm"
`

func TestLoadAndCompile(t *testing.T) {
	src, err := Load([]byte(basicEnglishYAML))
	if err != nil {
		t.Fatal(err)
	}
	if src.Name != "basic-english" {
		t.Fatalf("name == %s", src.Name)
	}
	lex, err := src.Compile()
	if err != nil {
		t.Fatal(err)
	}

	packet, have := lex.Lookup("went")
	if !have {
		t.Fatal("no packet for 'went'")
	}
	if len(packet) != 1 || len(packet[0].Next) != 1 {
		t.Fatalf("bad packet %#v", packet)
	}
	if _, have = lex.Lookup("the"); have {
		t.Fatal("'the' shouldn't be in the lexicon")
	}
}

func TestCompiledLexiconEndToEnd(t *testing.T) {
	src, err := Load([]byte(basicEnglishYAML))
	if err != nil {
		t.Fatal(err)
	}
	lex, err := src.Compile()
	if err != nil {
		t.Fatal(err)
	}

	a := core.NewAnalyzer(lex)
	p, err := a.Parse(context.Background(), strings.Fields("jack went to the store"))
	if err != nil {
		t.Fatal(err)
	}

	want := "(ptrans (actor (person (name (jack)))) (object (person (name (jack)))) (to (store)))"
	if got := p.Result.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	src, err := LoadFile("../lexicons/basic-english.yaml")
	if err != nil {
		t.Fatal(err)
	}
	lex, err := src.Compile()
	if err != nil {
		t.Fatal(err)
	}

	a := core.NewAnalyzer(lex)
	p, err := a.Parse(context.Background(), strings.Fields("jill went to the store from home"))
	if err != nil {
		t.Fatal(err)
	}

	want := "(ptrans (actor (person (name (jill)))) (object (person (name (jill)))) (to (store)) (from (house)))"
	if got := p.Result.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestCompileMalformed(t *testing.T) {
	for _, test := range []struct {
		name string
		yaml string
	}{
		{
			name: "no clauses",
			yaml: `
words:
  oops:
    - doc: just a doc
`,
		},
		{
			name: "assignment without a slot",
			yaml: `
words:
  oops:
    - assign:
        - expr: "(store)"
`,
		},
		{
			name: "assignment without an expression",
			yaml: `
words:
  oops:
    - assign:
        - slot: cdForm
`,
		},
		{
			name: "bad test expression",
			yaml: `
words:
  oops:
    - test: "(eq ?a"
`,
		},
		{
			name: "bad nested packet",
			yaml: `
words:
  oops:
    - test: "(eq ?a b)"
      next:
        - - doc: nothing here
`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			src, err := Load([]byte(test.yaml))
			if err != nil {
				t.Fatal(err)
			}
			if _, err = src.Compile(); err == nil {
				t.Fatal("expected a MalformedRequest")
			} else if _, is := err.(*core.MalformedRequest); !is {
				t.Fatalf("wanted a MalformedRequest, got %#v", err)
			}
		})
	}
}

func TestMalformedRequestError(t *testing.T) {
	err := &core.MalformedRequest{Word: "oops", Index: 2, Reason: "testing"}
	if !strings.Contains(err.Error(), `"oops"`) {
		t.Fatalf("unhelpful error %s", err.Error())
	}
}
