package publish

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseHex(t *testing.T, s string) uint64 {
	t.Helper()

	v, err := strconv.ParseUint(s, 16, 64)
	require.NoError(t, err)

	return v
}
