package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/rsklar/caspar/tools"

	"github.com/jsccast/yaml"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a YAML expectation session against a lexicon",
	Long: `A session is a YAML file of checks: each gives a sentence and the
expected rendering of its conceptual tree.  See tools.Session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, _ := cmd.Flags().GetString("file")
		verbose, _ := cmd.Flags().GetBool("verbose")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if filename == "" {
			return errors.New("session needs --file")
		}

		bs, err := ioutil.ReadFile(filename)
		if err != nil {
			return err
		}
		var s tools.Session
		if err = yaml.Unmarshal(bs, &s); err != nil {
			return err
		}
		s.Verbose = s.Verbose || verbose

		lex, _, err := loadLexicon()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err = s.Run(ctx, lex); err != nil {
			return err
		}
		fmt.Printf("%s: %d checks passed\n", filename, len(s.Checks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().StringP("file", "f", "", "filename for the session (YAML)")
	sessionCmd.Flags().BoolP("verbose", "v", false, "log each sentence and result")
	sessionCmd.Flags().DurationP("timeout", "t", 10*time.Second, "session timeout")
}
