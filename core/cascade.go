package core

import (
	"context"

	"github.com/rsklar/caspar/cd"
)

var (
	// TracesInitialCap is the initial capacity for Traces buffers.
	TracesInitialCap = 16

	// DefaultControl will be used by Analyzer.Parse if the
	// Analyzer's Control is nil.
	DefaultControl = &Control{
		Limit: 100,
	}
)

// Lexicon maps a word to its initial Packet.
//
// The content is pure data supplied by the caller; the engine only
// consumes it.  A word the Lexicon doesn't know contributes nothing
// to a parse (and the parse proceeds).
type Lexicon interface {
	Lookup(word string) (Packet, bool)
}

// MapLexicon is the trivial map-backed Lexicon.
type MapLexicon map[string]Packet

func (l MapLexicon) Lookup(word string) (Packet, bool) {
	p, have := l[word]
	return p, have
}

// Control bounds how much work a single parse may do.
type Control struct {
	// Limit is the maximum number of Requests one parse may fire.
	Limit int
}

// Traces holds trace messages: structured diagnostics that a driver
// can print.
type Traces struct {
	Messages []interface{} `json:"messages,omitempty" yaml:",omitempty"`
}

// NewTraces creates an initialized Traces.
func NewTraces() *Traces {
	return &Traces{
		Messages: make([]interface{}, 0, TracesInitialCap),
	}
}

func (ts *Traces) Add(xs ...interface{}) {
	ts.Messages = append(ts.Messages, xs...)
}

// Step records what one word contributed to a parse.
type Step struct {
	// Word is the word as given.
	Word string `json:"word"`

	// Unknown reports that the Lexicon had no entry for the word.
	Unknown bool `json:"unknown,omitempty"`

	// Fired is the number of Requests that fired during this
	// word's cascade.
	Fired int `json:"fired"`
}

// Parsed is the output of one parse: the result tree plus per-word
// diagnostics.
type Parsed struct {
	// Result is the instantiated concept, or nil when the
	// sentence bound no concept.
	Result cd.Form `json:"-"`

	// Steps has one entry per input word, in order.
	Steps []*Step `json:"steps,omitempty"`

	// Traces gathers diagnostics emitted while parsing.
	Traces *Traces `json:"traces,omitempty"`
}

// Analyzer drives the per-word lookup, push, and cascade-resolution
// cycle, and owns the Stack and Env for each parse.
type Analyzer struct {
	// Lexicon supplies each word's initial Packet.
	Lexicon Lexicon

	// Control bounds the parse.  Defaults to DefaultControl.
	Control *Control
}

// NewAnalyzer makes an Analyzer over the given Lexicon.
func NewAnalyzer(lexicon Lexicon) *Analyzer {
	return &Analyzer{
		Lexicon: lexicon,
	}
}

// Parse analyzes one sentence.
//
// Every parse gets an entirely fresh Env and Stack.  (The historical
// behavior of this kind of analyzer cleared only the concept slot and
// the stack between sentences, leaving stale bindings behind; we
// deliberately do not reproduce that carry-over.)
//
// Words the Lexicon doesn't know are recorded in the returned Steps
// and otherwise skipped.  UnboundSlot and cd.CyclicBinding errors
// abort the parse; the partial Parsed is returned alongside the
// error for diagnostics.
func (a *Analyzer) Parse(ctx context.Context, words []string) (*Parsed, error) {
	c := a.Control
	if c == nil {
		c = DefaultControl
	}

	var (
		env   = NewEnv()
		stack = NewStack()
		fired = 0

		p = &Parsed{
			Steps:  make([]*Step, 0, len(words)),
			Traces: NewTraces(),
		}
	)

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return p, err
		}

		step := &Step{Word: word}
		p.Steps = append(p.Steps, step)

		env.Set("currentWord", cd.Atom(word))
		env.Set("remainingWords", remaining(words[i+1:]))

		packet, have := a.Lexicon.Lookup(word)
		if !have {
			step.Unknown = true
			p.Traces.Add(map[string]interface{}{
				"unknownWord": word,
			})
		}
		stack.Push(packet)

		// The cascade: several stacked packets can fire before
		// this word's boundary advances.
		triggered := make([]*Request, 0, 4)
		for !stack.Empty() {
			r, err := scan(stack.Peek(), env)
			if err != nil {
				return p, err
			}
			if r == nil {
				// The top packet persists as a live
				// expectation for future words.
				break
			}

			// The whole packet goes; the unselected
			// requests in it are discarded for good.
			stack.Pop()

			if fired++; c.Limit < fired {
				return p, Limited
			}
			if err := r.Fire(env); err != nil {
				return p, err
			}
			triggered = append(triggered, r)
			step.Fired++

			p.Traces.Add(map[string]interface{}{
				"word":  word,
				"fired": r.Doc,
				"depth": stack.Depth(),
			})
		}

		// Word boundary: packets from earlier-triggered
		// requests end up deeper; the most recently triggered
		// request's packets end on top.
		for _, r := range triggered {
			for _, next := range r.Next {
				stack.Push(next)
			}
		}
	}

	concept, _ := env.Get("concept")
	result, err := cd.Instantiate(concept, env)
	if err != nil {
		return p, err
	}
	p.Result = result

	return p, nil
}

// scan selects the first Request in the packet whose test is absent
// or satisfied, or nil if none is.
func scan(packet Packet, env *Env) (*Request, error) {
	for _, r := range packet {
		ok, err := r.Triggered(env)
		if err != nil {
			return nil, err
		}
		if ok {
			return r, nil
		}
	}
	return nil, nil
}

func remaining(words []string) cd.Form {
	if len(words) == 0 {
		return nil
	}
	acc := make(cd.List, len(words))
	for i, w := range words {
		acc[i] = cd.Atom(w)
	}
	return acc
}
