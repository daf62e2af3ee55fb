package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/santa"
	"github.com/arloliu/santa/internal/hash"
	"github.com/arloliu/santa/publish"
	"github.com/arloliu/santa/source"
)

type drawOptions struct {
	roster      string
	config      string
	seed        uint64
	seedPhrase  string
	maxAttempts int
	logLevel    string
	natsURL     string
	drawID      string
	hide        bool
	trace       bool
}

func newDrawCmd() *cobra.Command {
	o := &drawOptions{}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Resolve a draw from a roster file",
		Long: `Resolve a draw from a roster file and print who gives to whom.

With --nats-url and --draw-id the result is also published to NATS KV so every
giver can look up their own recipient with "santa lookup". Add --hide to keep
the pairs off the screen entirely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraw(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.roster, "roster", "", "YAML roster file (required)")
	f.StringVar(&o.config, "config", "", "YAML config file with resolver and publish sections")
	f.Uint64Var(&o.seed, "seed", 0, "fixed random seed (0 = random)")
	f.StringVar(&o.seedPhrase, "seed-phrase", "", "derive the random seed from a phrase")
	f.IntVar(&o.maxAttempts, "max-attempts", 0, "number of draws tried before giving up (default 1000)")
	f.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.StringVar(&o.natsURL, "nats-url", "", "publish the result to this NATS server")
	f.StringVar(&o.drawID, "draw-id", "", "name of the published draw")
	f.BoolVar(&o.hide, "hide", false, "do not print the pairs (requires --nats-url)")
	f.BoolVar(&o.trace, "trace", false, "narrate every draw on stderr")
	_ = cmd.MarkFlagRequired("roster")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-phrase")
	cmd.MarkFlagsRequiredTogether("nats-url", "draw-id")

	return cmd
}

func runDraw(cmd *cobra.Command, o *drawOptions) error {
	if o.hide && o.natsURL == "" {
		return errors.New("--hide requires --nats-url, otherwise nobody could see their recipient")
	}

	cfg, err := loadCLIConfig(o.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Resolver.Seed = o.seed
		cfg.Resolver.SeedPhrase = ""
	}
	if flags.Changed("seed-phrase") {
		cfg.Resolver.SeedPhrase = o.seedPhrase
		cfg.Resolver.Seed = 0
	}
	if flags.Changed("max-attempts") {
		cfg.Resolver.MaxAttempts = o.maxAttempts
	}

	logger, err := santa.NewTextLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}

	opts := []santa.Option{santa.WithLogger(logger)}
	if o.trace {
		opts = append(opts, santa.WithTracer(narrator(cmd.ErrOrStderr())))
	}

	ctx := cmd.Context()
	group, err := santa.NewGroupFromSource(ctx, &cfg.Resolver, source.NewFile(o.roster), opts...)
	if err != nil {
		return err
	}

	assignment, err := group.Assign()
	if err != nil {
		var rerr *santa.ResolutionError
		if errors.As(err, &rerr) {
			return fmt.Errorf("even after %d attempts, no assignment satisfied every constraint: %w",
				rerr.Attempts, err)
		}

		return err
	}

	out := cmd.OutOrStdout()

	if o.natsURL != "" {
		if err := publishDraw(ctx, o, cfg.Publish, logger, assignment); err != nil {
			return err
		}
	}

	if o.hide {
		printTitle(out, fmt.Sprintf("Names drawn for %d participants", assignment.Len()))
		for _, p := range assignment.Sorted() {
			fmt.Fprintf(out, "  %s\n", styles.Giver.Render(p.Giver.String()))
		}
		fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf(
			"Each giver runs: santa lookup --nats-url %s --draw-id %s --giver <name>", o.natsURL, o.drawID)))
	} else {
		printTitle(out, "Secret Santa")
		for _, p := range assignment.Sorted() {
			printPair(out, p.Giver.String(), p.Recipient.String())
		}
	}

	fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("attempt %d, fingerprint %x", assignment.Attempt, hash.Fingerprint(assignment))))
	if o.natsURL != "" {
		printSuccess(out, fmt.Sprintf("published draw %q", o.drawID))
	}
	printSuccess(out, "Happy gift-giving!")

	return nil
}

func publishDraw(ctx context.Context, o *drawOptions, cfg publish.Config, logger santa.Logger, a santa.Assignment) error {
	nc, js, err := connect(o.natsURL)
	if err != nil {
		return err
	}
	defer nc.Close()

	pub, err := publish.NewKVPublisher(js, cfg, publish.WithLogger(logger))
	if err != nil {
		return err
	}

	return pub.Publish(ctx, o.drawID, a)
}

// narrator returns a tracer that tells the story of the draw.
func narrator(w io.Writer) *santa.Tracer {
	return &santa.Tracer{
		OnAttemptStarted: func(attempt int, order []santa.Participant) {
			names := make([]string, len(order))
			for i, p := range order {
				names[i] = p.String()
			}
			fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("attempt %d: %s", attempt, strings.Join(names, ", "))))
		},
		OnDraw: func(_ int, giver santa.Participant, candidates []santa.Participant) {
			fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("  %s reaches into a basket of %d", giver, len(candidates))))
		},
		OnAttemptFailed: func(_ int, giver santa.Participant) {
			fmt.Fprintln(w, styles.Warning.Render(fmt.Sprintf("  %s has nobody left to draw, starting over", giver)))
		},
	}
}
