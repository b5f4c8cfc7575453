package core

import (
	"github.com/rsklar/caspar/cd"
)

// BasicEnglishLexicon makes an example Lexicon that's useful to have
// around.
//
// It knows just enough English for "jack went to the store": "jack"
// and "store" are noun phrases, "went" contributes a ptrans template
// and a pending expectation for a "to" destination, and "to" arms
// that expectation.  "the" is deliberately absent.
func BasicEnglishLexicon() Lexicon {

	form := func(src string) cd.Form {
		f, err := cd.Parse(src)
		if err != nil {
			panic(err)
		}
		return f
	}
	expr := func(src string) Expr {
		e, err := ParseExpr(src)
		if err != nil {
			panic(err)
		}
		return e
	}

	nounPhrase := func(cdForm string) Packet {
		return Packet{
			{
				Assigns: []Assign{
					{Slot: "cdForm", Expr: &Lit{Form: form(cdForm)}},
					{Slot: "partOfSpeech", Expr: &Lit{Form: cd.Atom("noun-phrase")}},
				},
			},
		}
	}

	// Fires once a noun phrase follows; fills the destination.
	toLocation := Packet{
		{
			Doc:  "fill toLoc from the next noun phrase",
			Test: expr("(eq ?partOfSpeech noun-phrase)"),
			Assigns: []Assign{
				{Slot: "toLoc", Expr: &Slot{Name: "cdForm"}},
			},
		},
	}

	return MapLexicon{
		"jack":  nounPhrase("(person (name (jack)))"),
		"store": nounPhrase("(store)"),

		"went": {
			{
				Doc: "ptrans with pending to-expectation",
				Assigns: []Assign{
					{Slot: "subject", Expr: &Slot{Name: "cdForm"}},
					{Slot: "partOfSpeech", Expr: &Lit{Form: cd.Atom("verb")}},
					{Slot: "concept", Expr: &Lit{Form: form(
						"(ptrans (actor ?subject) (object ?subject) (to ?toLoc) (from ?fromLoc))",
					)}},
				},
				Next: []Packet{
					{
						{
							Doc:  "wait for the destination marker",
							Test: expr("(eq ?currentWord to)"),
							Next: []Packet{toLocation},
						},
					},
				},
			},
		},

		"to": {
			{
				Assigns: []Assign{
					{Slot: "partOfSpeech", Expr: &Lit{Form: cd.Atom("preposition")}},
				},
			},
		},
	}
}
