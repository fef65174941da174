// Package ethereum implements transferwatch.Blockchain for Ethereum nodes.
// Blocks and transactions are queried over HTTP JSON-RPC; pending
// transaction hashes arrive through a websocket eth_subscribe stream.
package ethereum

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/ethereum/go-ethereum/rpc"
)

// Dialer opens the streaming connection used for subscriptions.
type Dialer func(ctx context.Context) (*rpc.Client, error)

// DialWebsocket returns a Dialer connecting to the websocket endpoint url.
func DialWebsocket(url string) Dialer {
	return func(ctx context.Context) (*rpc.Client, error) {
		return rpc.DialContext(ctx, url)
	}
}

// client implements transferwatch.Blockchain.
type client struct {
	conn jsonrpc.Client // request/response calls
	dial Dialer         // subscriptions, one connection each
}

// Ensure client implements the transferwatch.Blockchain interface at compile time.
var _ transferwatch.Blockchain = (*client)(nil)

// NewClient returns a Blockchain that queries through conn and subscribes
// through connections opened by dial.
func NewClient(conn jsonrpc.Client, dial Dialer) *client {
	return &client{
		conn: conn,
		dial: dial,
	}
}

// transportError marks err as a failure to talk to the node.
func transportError(method string, err error) error {
	return fmt.Errorf("%w: %s: %w", transferwatch.ErrTransport, method, err)
}

// isNull reports whether a JSON-RPC result carries no value.
func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
