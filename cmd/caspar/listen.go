package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/rsklar/caspar/core"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Serve parses over MQTT",
	Long: `Subscribes to a request topic; each message payload is one sentence.
The JSON reply envelope is published to the response topic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			broker, _    = cmd.Flags().GetString("broker")
			clientId, _  = cmd.Flags().GetString("id")
			userName, _  = cmd.Flags().GetString("user")
			password, _  = cmd.Flags().GetString("pass")
			inTopic, _   = cmd.Flags().GetString("topic")
			outTopic, _  = cmd.Flags().GetString("response-topic")
			qos, _       = cmd.Flags().GetInt("qos")
			quiesce, _   = cmd.Flags().GetInt("quiesce")
			keepAlive, _ = cmd.Flags().GetInt("keep-alive")
		)

		if inTopic == "" {
			return errors.New("listen needs --topic")
		}
		if outTopic == "" {
			outTopic = inTopic + "/replies"
		}

		lex, _, err := loadLexicon()
		if err != nil {
			return err
		}

		ctx := context.Background()
		a := core.NewAnalyzer(lex)

		opts := mqtt.NewClientOptions()
		opts.AddBroker(broker)
		opts.SetClientID(clientId)
		if userName != "" {
			opts.SetUsername(userName)
		}
		if password != "" {
			opts.SetPassword(password)
		}
		opts.SetKeepAlive(time.Duration(keepAlive) * time.Second)

		client := mqtt.NewClient(opts)
		if t := client.Connect(); t.Wait() && t.Error() != nil {
			return t.Error()
		}
		defer client.Disconnect(uint(quiesce))

		handler := func(client mqtt.Client, msg mqtt.Message) {
			reply := analyze(ctx, a, string(msg.Payload()))
			js, err := json.Marshal(reply)
			if err != nil {
				log.Printf("marshal error %v on %#v", err, reply)
				return
			}
			if t := client.Publish(outTopic, byte(qos), false, js); t.Wait() && t.Error() != nil {
				log.Printf("publish error %v", t.Error())
			}
		}

		if t := client.Subscribe(inTopic, byte(qos), handler); t.Wait() && t.Error() != nil {
			return t.Error()
		}

		log.Printf("listening on %s (replies to %s)", inTopic, outTopic)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().StringP("broker", "b", "tcp://localhost:1883", "broker URL")
	listenCmd.Flags().StringP("id", "i", "caspar", "client id")
	listenCmd.Flags().StringP("user", "u", "", "username")
	listenCmd.Flags().StringP("pass", "P", "", "password")
	listenCmd.Flags().StringP("topic", "t", "", "request topic")
	listenCmd.Flags().String("response-topic", "", "reply topic (default <topic>/replies)")
	listenCmd.Flags().Int("qos", 0, "QoS for subscribe and publish")
	listenCmd.Flags().Int("quiesce", 100, "disconnection quiescence (in milliseconds)")
	listenCmd.Flags().Int("keep-alive", 10, "keep-alive in seconds")
}
