package lexicon

import (
	"io/ioutil"

	"github.com/rsklar/caspar/core"

	"gopkg.in/yaml.v2"
)

// Source is a lexicon as written: a YAML document mapping each word
// to the requests of its initial packet.
//
// A Source gives only structure and text.  Compile turns the text of
// tests, assignments, and templates into the engine's closed
// expression representation.
type Source struct {
	// Name is the generic name for this lexicon.  Something like
	// "basic-english".
	Name string `json:"name,omitempty" yaml:",omitempty"`

	// Doc is general documentation about what this lexicon
	// covers.  Markdown.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Words maps a word to the ordered requests of its initial
	// packet.  Request order is first-match-wins priority.
	Words map[string][]RequestSource `json:"words" yaml:"words"`
}

// RequestSource can be compiled to a core.Request.
type RequestSource struct {
	// Doc is an opaque documentation string.  Markdown (see the
	// tools package).
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Test is an optional expression; see core.ParseExpr for the
	// syntax.  An absent Test always triggers.
	Test string `json:"test,omitempty" yaml:",omitempty"`

	// Assign is the ordered list of slot assignments.
	Assign []AssignSource `json:"assign,omitempty" yaml:",omitempty"`

	// Next holds packets (each an ordered list of requests) to
	// push when this request fires.
	Next [][]RequestSource `json:"next,omitempty" yaml:",omitempty"`
}

// AssignSource is one (slot, expression) pair.
type AssignSource struct {
	Slot string `json:"slot" yaml:"slot"`
	Expr string `json:"expr" yaml:"expr"`
}

// Lexicon is a compiled, map-backed core.Lexicon.
type Lexicon map[string]core.Packet

func (l Lexicon) Lookup(word string) (core.Packet, bool) {
	p, have := l[word]
	return p, have
}

// Load parses a YAML lexicon Source.
func Load(bs []byte) (*Source, error) {
	var s Source
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a YAML lexicon Source.
func LoadFile(filename string) (*Source, error) {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Load(bs)
}

// Compile compiles the Source into a Lexicon, checking structural
// shape as it goes.
//
// A request with none of the three recognized clause kinds, an
// assignment without a slot, or an embedded expression that doesn't
// parse is a core.MalformedRequest.  That is the only validation the
// engine gets; lexicon content is otherwise the author's problem.
func (s *Source) Compile() (Lexicon, error) {
	lex := make(Lexicon, len(s.Words))
	for word, rss := range s.Words {
		packet, err := compilePacket(word, rss)
		if err != nil {
			return nil, err
		}
		lex[word] = packet
	}
	return lex, nil
}

func compilePacket(word string, rss []RequestSource) (core.Packet, error) {
	packet := make(core.Packet, 0, len(rss))
	for i, rs := range rss {
		r, err := rs.compile(word, i)
		if err != nil {
			return nil, err
		}
		packet = append(packet, r)
	}
	return packet, nil
}

func (rs *RequestSource) compile(word string, index int) (*core.Request, error) {
	malformed := func(reason string) error {
		return &core.MalformedRequest{
			Word:   word,
			Index:  index,
			Reason: reason,
		}
	}

	if rs.Test == "" && len(rs.Assign) == 0 && len(rs.Next) == 0 {
		return nil, malformed("no test, assign, or next clause")
	}

	r := &core.Request{
		Doc: rs.Doc,
	}

	if rs.Test != "" {
		test, err := core.ParseExpr(rs.Test)
		if err != nil {
			return nil, malformed("bad test: " + err.Error())
		}
		r.Test = test
	}

	for _, as := range rs.Assign {
		if as.Slot == "" {
			return nil, malformed("assignment without a slot")
		}
		if as.Expr == "" {
			return nil, malformed(`assignment to "` + as.Slot + `" without an expression`)
		}
		expr, err := core.ParseExpr(as.Expr)
		if err != nil {
			return nil, malformed(`bad expression for "` + as.Slot + `": ` + err.Error())
		}
		r.Assigns = append(r.Assigns, core.Assign{Slot: as.Slot, Expr: expr})
	}

	for _, nss := range rs.Next {
		packet, err := compilePacket(word, nss)
		if err != nil {
			return nil, err
		}
		r.Next = append(r.Next, packet)
	}

	return r, nil
}
