package natsutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/types"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "timeout", err: nats.ErrTimeout, want: true},
		{name: "wrapped no servers", err: fmt.Errorf("dial: %w", nats.ErrNoServers), want: true},
		{name: "connection closed", err: nats.ErrConnectionClosed, want: true},
		{name: "sentinel", err: types.ErrConnectivity, want: true},
		{name: "refused text", err: errors.New("dial tcp 127.0.0.1:4222: connect: connection refused"), want: true},
		{name: "application error", err: errors.New("bad input"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}

func TestMarkConnectivity(t *testing.T) {
	require.NoError(t, MarkConnectivity(nil))

	plain := errors.New("bad input")
	require.Same(t, plain, MarkConnectivity(plain))

	marked := MarkConnectivity(nats.ErrTimeout)
	require.ErrorIs(t, marked, types.ErrConnectivity)
	require.ErrorIs(t, marked, nats.ErrTimeout)

	require.Equal(t, marked, MarkConnectivity(marked), "already marked errors are returned as is")
}
