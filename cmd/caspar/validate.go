package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a lexicon loads and compiles",
	Long: `Loads the lexicon, compiles every request, and reports the first
structural problem (a request with no recognized clause, a bad
expression, and so on).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lexiconFilename == "" {
			return errors.New("validate needs --lexicon")
		}
		_, src, err := loadLexicon()
		if err != nil {
			return err
		}
		words := 0
		requests := 0
		for _, rss := range src.Words {
			words++
			requests += len(rss)
		}
		fmt.Printf("%s: %d words, %d top-level requests\n", lexiconFilename, words, requests)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
