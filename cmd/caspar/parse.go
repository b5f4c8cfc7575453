package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rsklar/caspar/core"
	"github.com/rsklar/caspar/tools"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [sentence ...]",
	Short: "Parse sentences and print their conceptual trees",
	Long: `Parse each sentence given as an argument, or each line of stdin
when no arguments are given.  A sentence with no concept prints
nothing (use -d to see why).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		diag, _ := cmd.Flags().GetBool("diagnostics")

		lex, _, err := loadLexicon()
		if err != nil {
			return err
		}

		a := core.NewAnalyzer(lex)
		ctx := context.Background()

		emit := func(sentence string) error {
			p, err := a.Parse(ctx, tools.Words(sentence))
			if diag && p != nil {
				for _, step := range p.Steps {
					note := ""
					if step.Unknown {
						note = " (unknown)"
					}
					log.Printf("# %-12s fired %d%s", step.Word, step.Fired, note)
				}
			}
			if err != nil {
				return err
			}
			if p.Result != nil {
				fmt.Println(p.Result)
			}
			return nil
		}

		if 0 < len(args) {
			for _, sentence := range args {
				if err := emit(sentence); err != nil {
					return err
				}
			}
			return nil
		}

		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			if err := emit(in.Text()); err != nil {
				return err
			}
		}
		return in.Err()
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("diagnostics", "d", false, "print per-word diagnostics")
}
