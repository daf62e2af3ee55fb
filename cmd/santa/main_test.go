package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa"
	santatest "github.com/arloliu/santa/testing"
)

const bigBangRoster = `participants: [Sheldon, Amy, Leonard, Penny, Rajesh]
mutualExclusions:
  - {a: Sheldon, b: Amy}
  - {a: Sheldon, b: Leonard}
  - {a: Leonard, b: Penny}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestDraw(t *testing.T) {
	roster := writeFile(t, "roster.yaml", bigBangRoster)

	t.Run("prints every giver", func(t *testing.T) {
		out, _, err := run(t, "draw", "--roster", roster, "--seed", "7")
		require.NoError(t, err)

		for _, name := range []string{"Sheldon", "Amy", "Leonard", "Penny", "Rajesh"} {
			require.Contains(t, out, name)
		}
		require.Contains(t, out, "Happy gift-giving!")
	})

	t.Run("same seed phrase gives the same output", func(t *testing.T) {
		out1, _, err := run(t, "draw", "--roster", roster, "--seed-phrase", "office-2026")
		require.NoError(t, err)
		out2, _, err := run(t, "draw", "--roster", roster, "--seed-phrase", "office-2026")
		require.NoError(t, err)
		require.Equal(t, out1, out2)
	})

	t.Run("trace narrates on stderr", func(t *testing.T) {
		_, errOut, err := run(t, "draw", "--roster", roster, "--seed", "1", "--trace")
		require.NoError(t, err)
		require.Contains(t, errOut, "attempt 1:")
		require.Contains(t, errOut, "reaches into a basket")
	})

	t.Run("missing roster flag", func(t *testing.T) {
		_, _, err := run(t, "draw")
		require.Error(t, err)
	})

	t.Run("seed and seed phrase are exclusive", func(t *testing.T) {
		_, _, err := run(t, "draw", "--roster", roster, "--seed", "1", "--seed-phrase", "x")
		require.Error(t, err)
	})

	t.Run("hide requires nats", func(t *testing.T) {
		_, _, err := run(t, "draw", "--roster", roster, "--hide")
		require.ErrorContains(t, err, "--hide requires --nats-url")
	})

	t.Run("unsolvable roster", func(t *testing.T) {
		impossible := writeFile(t, "impossible.yaml", "participants: [A, B]\nmutualExclusions:\n  - {a: A, b: B}\n")

		_, _, err := run(t, "draw", "--roster", impossible, "--max-attempts", "10")
		require.ErrorIs(t, err, santa.ErrResolutionFailed)
		require.ErrorContains(t, err, "even after 10 attempts")
	})

	t.Run("single participant", func(t *testing.T) {
		lonely := writeFile(t, "lonely.yaml", "participants: [A]\n")

		_, _, err := run(t, "draw", "--roster", lonely)
		require.ErrorIs(t, err, santa.ErrInsufficientParticipants)
	})

	t.Run("config file sets the resolver", func(t *testing.T) {
		impossible := writeFile(t, "impossible.yaml", "participants: [A, B]\ndirectedExclusions:\n  - {from: A, to: B}\n")
		cfg := writeFile(t, "santa.yaml", "resolver:\n  maxAttempts: 3\n")

		_, _, err := run(t, "draw", "--roster", impossible, "--config", cfg)
		require.ErrorContains(t, err, "even after 3 attempts")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := run(t, "draw", "--roster", roster, "--log-level", "loud")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("summarizes a valid roster", func(t *testing.T) {
		roster := writeFile(t, "roster.yaml", bigBangRoster+"directedExclusions:\n  - {from: Rajesh, to: Penny}\n")

		out, _, err := run(t, "validate", "--roster", roster)
		require.NoError(t, err)
		require.Contains(t, out, "5 participants, 3 mutual and 1 directed exclusions")
	})

	t.Run("rejects unknown participants", func(t *testing.T) {
		roster := writeFile(t, "roster.yaml", "participants: [A, B]\nmutualExclusions:\n  - {a: A, b: C}\n")

		_, _, err := run(t, "validate", "--roster", roster)
		require.ErrorIs(t, err, santa.ErrUnknownParticipant)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		roster := writeFile(t, "roster.yaml", "participants: [A, B]\nexclusions: []\n")

		_, _, err := run(t, "validate", "--roster", roster)
		require.ErrorIs(t, err, santa.ErrInvalidRoster)
	})

	t.Run("warns about tiny groups", func(t *testing.T) {
		roster := writeFile(t, "roster.yaml", "participants: [A]\n")

		out, _, err := run(t, "validate", "--roster", roster)
		require.NoError(t, err)
		require.Contains(t, out, "at least 2 participants")
	})
}

func TestPublishAndLookup(t *testing.T) {
	ns, _ := santatest.StartEmbeddedNATS(t)
	url := ns.ClientURL()
	roster := writeFile(t, "roster.yaml", bigBangRoster)

	out, _, err := run(t, "draw", "--roster", roster, "--seed", "3",
		"--nats-url", url, "--draw-id", "office-2026", "--hide")
	require.NoError(t, err)
	require.Contains(t, out, "Names drawn for 5 participants")
	require.Contains(t, out, `published draw "office-2026"`)
	require.NotContains(t, out, "→", "hidden draws do not print pairs")

	out, _, err = run(t, "lookup", "--nats-url", url, "--draw-id", "office-2026", "--giver", "Sheldon")
	require.NoError(t, err)
	require.Contains(t, out, "Sheldon")
	require.Contains(t, out, "→")
	for _, excluded := range []string{"Amy", "Leonard"} {
		require.False(t, strings.HasSuffix(strings.TrimSpace(out), excluded), "Sheldon may not draw %s", excluded)
	}

	_, _, err = run(t, "lookup", "--nats-url", url, "--draw-id", "office-2026", "--giver", "Howard")
	require.ErrorIs(t, err, santa.ErrRecordNotFound)
	require.ErrorContains(t, err, "Howard is not part of draw")

	_, _, err = run(t, "draw", "--roster", roster, "--nats-url", url)
	require.Error(t, err, "nats-url and draw-id go together")
}
