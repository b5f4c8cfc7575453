/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// caspar is a command-line driver for the expectation-driven sentence
// analyzer: parse sentences, poke at a lexicon interactively, render
// lexicon documentation, and serve parses over WebSockets or MQTT.
package main

import (
	"log"
	"os"

	"github.com/rsklar/caspar/core"
	"github.com/rsklar/caspar/lexicon"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "caspar",
	Short: "An expectation-driven conceptual sentence analyzer",
	Long: `caspar analyzes sentences with a lexicon of expectations.

Each word contributes a packet of pending requests; as later words
arrive, pending requests fire and build up a conceptual-dependency
tree, which is the output.`,
	SilenceUsage: true,
}

var lexiconFilename string

func init() {
	rootCmd.PersistentFlags().StringVarP(&lexiconFilename, "lexicon", "l", "",
		"lexicon filename (YAML); empty means the built-in example")
}

// loadLexicon gets the lexicon named by --lexicon, falling back to
// the built-in example lexicon.
func loadLexicon() (core.Lexicon, *lexicon.Source, error) {
	if lexiconFilename == "" {
		return core.BasicEnglishLexicon(), nil, nil
	}
	src, err := lexicon.LoadFile(lexiconFilename)
	if err != nil {
		return nil, nil, err
	}
	lex, err := src.Compile()
	if err != nil {
		return nil, nil, err
	}
	return lex, src, nil
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
