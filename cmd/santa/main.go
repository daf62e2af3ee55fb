// Command santa resolves Secret Santa draws from a roster file.
//
// Usage:
//
//	santa draw --roster roster.yaml
//	santa draw --roster roster.yaml --seed-phrase office-2026 --nats-url nats://localhost:4222 --draw-id office-2026 --hide
//	santa lookup --nats-url nats://localhost:4222 --draw-id office-2026 --giver Sheldon
//	santa validate --roster roster.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		printError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
