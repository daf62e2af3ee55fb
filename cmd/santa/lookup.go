package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/santa"
	"github.com/arloliu/santa/publish"
)

func newLookupCmd() *cobra.Command {
	var (
		natsURL string
		drawID  string
		giver   string
		config  string
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Reveal the recipient of one giver from a published draw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(config)
			if err != nil {
				return err
			}

			nc, js, err := connect(natsURL)
			if err != nil {
				return err
			}
			defer nc.Close()

			pub, err := publish.NewKVPublisher(js, cfg.Publish)
			if err != nil {
				return err
			}

			rec, err := pub.Lookup(cmd.Context(), drawID, santa.Participant(giver))
			if errors.Is(err, santa.ErrRecordNotFound) {
				return fmt.Errorf("%s is not part of draw %q: %w", giver, drawID, err)
			}
			if err != nil {
				return err
			}

			printPair(cmd.OutOrStdout(), rec.Giver.String(), rec.Recipient.String())

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&natsURL, "nats-url", "", "NATS server holding the draw (required)")
	f.StringVar(&drawID, "draw-id", "", "name of the published draw (required)")
	f.StringVar(&giver, "giver", "", "your name (required)")
	f.StringVar(&config, "config", "", "YAML config file with a publish section")
	_ = cmd.MarkFlagRequired("nats-url")
	_ = cmd.MarkFlagRequired("draw-id")
	_ = cmd.MarkFlagRequired("giver")

	return cmd
}
