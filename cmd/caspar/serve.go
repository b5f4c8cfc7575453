package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/rsklar/caspar/core"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve parses over WebSockets",
	Long: `Each text message on the WebSocket is one sentence; the reply is a
JSON envelope with the rendered tree, per-word steps, and any error.

Every connection gets its own Analyzer, and every sentence is an
independent parse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		path, _ := cmd.Flags().GetString("path")

		lex, _, err := loadLexicon()
		if err != nil {
			return err
		}

		ctx := context.Background()

		var upgrader = websocket.Upgrader{} // use default options

		api := func(w http.ResponseWriter, r *http.Request) {
			c, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				log.Println("upgrade error", err)
				return
			}
			defer c.Close()

			log.Printf("connection from %s", c.RemoteAddr())

			a := core.NewAnalyzer(lex)

			for {
				mt, message, err := c.ReadMessage()
				if err != nil {
					log.Println("read error", err)
					break
				}

				reply := analyze(ctx, a, string(message))
				js, err := json.Marshal(reply)
				if err != nil {
					log.Printf("marshal error %v on %#v", err, reply)
					continue
				}
				if err = c.WriteMessage(mt, js); err != nil {
					log.Println("write error", err)
					break
				}
			}
		}

		http.HandleFunc(path, api)

		log.Printf("listening on %s%s", addr, path)
		return http.ListenAndServe(addr, nil)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("path", "/parse", "WebSocket endpoint path")
}
