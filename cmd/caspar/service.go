package main

import (
	"context"

	"github.com/rsklar/caspar/core"
	"github.com/rsklar/caspar/tools"
)

// Reply is the envelope that serve and listen emit for each sentence.
type Reply struct {
	Sentence string       `json:"sentence"`
	Result   string       `json:"result,omitempty"`
	Steps    []*core.Step `json:"steps,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// analyze parses one raw sentence and packages the outcome.
//
// Errors are conveyed in the Reply: a bad sentence is the client's
// problem, not the service's.
func analyze(ctx context.Context, a *core.Analyzer, sentence string) *Reply {
	reply := &Reply{
		Sentence: sentence,
	}

	p, err := a.Parse(ctx, tools.Words(sentence))
	if p != nil {
		reply.Steps = p.Steps
	}
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	if p.Result != nil {
		reply.Result = p.Result.String()
	}
	return reply
}
