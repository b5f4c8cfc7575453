package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rsklar/caspar/core"
	"github.com/rsklar/caspar/tools"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse sentences interactively",
	Long: `An interactive loop: type a sentence, see its conceptual tree.

Lines starting with '?' dump the per-word diagnostics for the
previous sentence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, _, err := loadLexicon()
		if err != nil {
			return err
		}

		cli := liner.NewLiner()
		defer cli.Close()
		cli.SetCtrlCAborts(true)

		history := filepath.Join(os.TempDir(), ".caspar_history")
		if f, err := os.Open(history); err == nil {
			cli.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				cli.WriteHistory(f)
				f.Close()
			}
		}()

		var (
			a    = core.NewAnalyzer(lex)
			ctx  = context.Background()
			last *core.Parsed
		)

		for {
			line, err := cli.Prompt("sentence> ")
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			cli.AppendHistory(line)

			if strings.HasPrefix(line, "?") {
				if last == nil {
					fmt.Println("nothing parsed yet")
					continue
				}
				for _, step := range last.Steps {
					note := ""
					if step.Unknown {
						note = " (unknown)"
					}
					fmt.Printf("# %-12s fired %d%s\n", step.Word, step.Fired, note)
				}
				continue
			}

			p, err := a.Parse(ctx, tools.Words(line))
			last = p
			if err != nil {
				log.Printf("error: %s", err)
				continue
			}
			if p.Result == nil {
				fmt.Println("(no concept)")
				continue
			}
			fmt.Println(p.Result)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
