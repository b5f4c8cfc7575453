package main

import (
	"errors"
	"os"

	"github.com/rsklar/caspar/tools"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Render a lexicon as an HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		if lexiconFilename == "" {
			return errors.New("doc needs --lexicon")
		}

		outFilename, _ := cmd.Flags().GetString("out")
		css, _ := cmd.Flags().GetStringSlice("css")

		out := os.Stdout
		if outFilename != "" {
			f, err := os.Create(outFilename)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return tools.ReadAndRenderLexiconPage(lexiconFilename, css, out)
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.Flags().StringP("out", "o", "", "output filename (default stdout)")
	docCmd.Flags().StringSlice("css", nil, "CSS files to reference")
}
