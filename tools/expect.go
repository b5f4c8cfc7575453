package tools

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/rsklar/caspar/core"
)

// Check is a specification for one sentence and the result that's
// expected.
type Check struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Sentence is the raw input; see Words for how it becomes a
	// word sequence.
	Sentence string `json:"sentence" yaml:"sentence"`

	// Want is the expected rendering of the parse result.  An
	// empty Want means the sentence should bind no concept.
	Want string `json:"want,omitempty" yaml:"want,omitempty"`

	// WantError means the parse should fail.
	WantError bool `json:"wantError,omitempty" yaml:"wantError,omitempty"`
}

// Session is mostly a sequence of Checks run against one lexicon.
type Session struct {
	// Doc is an opaque documentation string.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Checks is the sequence of Checks this session will run.
	Checks []Check `json:"checks" yaml:"checks"`

	// Verbose logs each sentence and result as it goes.
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Run processes all the Checks in the Session, each as an independent
// parse against the given lexicon.
//
// The first failing Check stops the session.
func (s *Session) Run(ctx context.Context, lex core.Lexicon) error {
	a := core.NewAnalyzer(lex)

	for _, check := range s.Checks {
		words := Words(check.Sentence)
		p, err := a.Parse(ctx, words)

		if s.Verbose {
			log.Printf("sentence %q", check.Sentence)
			if err != nil {
				log.Printf("   error %s", err)
			} else if p.Result != nil {
				log.Printf("   result %s", p.Result)
			}
		}

		if check.WantError {
			if err == nil {
				return errors.New(`wanted an error for "` + check.Sentence + `"`)
			}
			continue
		}
		if err != nil {
			return err
		}

		got := ""
		if p.Result != nil {
			got = p.Result.String()
		}
		if got != check.Want {
			return errors.New(`check failed for "` + check.Sentence +
				`": got "` + got + `", wanted "` + check.Want + `"`)
		}
	}

	return nil
}

// Words is the trivial tokenizer: lowercase, split on whitespace,
// strip surrounding punctuation.
func Words(sentence string) []string {
	fields := strings.Fields(strings.ToLower(sentence))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Trim(field, ".,;:!?()\"'")
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}
