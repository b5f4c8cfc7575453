// Package caspar provides expectation-driven conceptual sentence
// analysis.
//
// The engine is in package 'core', the tree model in 'cd', the YAML
// lexicon format in 'lexicon', and a command-line driver in `cmd`.
package caspar
