package ethereum

import (
	"context"
	"sync"

	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// pendingBuffer bounds how many hashes may wait between the node and the
// watcher.
const pendingBuffer = 256

// pendingSubscription adapts a geth client subscription to
// transferwatch.Subscription. It owns the connection it was opened on.
type pendingSubscription struct {
	conn *rpc.Client
	sub  *rpc.ClientSubscription
	in   <-chan common.Hash

	hashes chan string
	errs   chan error

	quit chan struct{}
	once sync.Once
}

// Compile-time check to ensure *pendingSubscription implements transferwatch.Subscription.
var _ transferwatch.Subscription = (*pendingSubscription)(nil)

// Hashes implements transferwatch.Subscription.
func (p *pendingSubscription) Hashes() <-chan string { return p.hashes }

// Err implements transferwatch.Subscription.
func (p *pendingSubscription) Err() <-chan error { return p.errs }

// Unsubscribe implements transferwatch.Subscription.
func (p *pendingSubscription) Unsubscribe() {
	p.once.Do(func() {
		close(p.quit)
		p.sub.Unsubscribe()
		p.conn.Close()
	})
}

// forward relays hashes until the upstream ends or Unsubscribe is called.
// A clean upstream end closes Hashes; a failure is sent on Err instead.
func (p *pendingSubscription) forward() {
	for {
		select {
		case <-p.quit:
			return
		case err, ok := <-p.sub.Err():
			if ok && err != nil {
				p.errs <- err
				return
			}
			p.drain()
			return
		case h := <-p.in:
			if !p.send(h) {
				return
			}
		}
	}
}

// send relays h unless Unsubscribe is called first.
func (p *pendingSubscription) send(h common.Hash) bool {
	select {
	case p.hashes <- h.Hex():
		return true
	case <-p.quit:
		return false
	}
}

// drain relays the hashes still buffered after a clean upstream end, then
// closes Hashes.
func (p *pendingSubscription) drain() {
	for {
		select {
		case h := <-p.in:
			if !p.send(h) {
				return
			}
		default:
			close(p.hashes)
			return
		}
	}
}

// SubscribePending implements transferwatch.Blockchain. Each call opens its
// own connection, released by Unsubscribe.
func (c *client) SubscribePending(ctx context.Context) (transferwatch.Subscription, error) {
	const method = "eth_subscribe"

	conn, err := c.dial(ctx)
	if err != nil {
		return nil, transportError(method, err)
	}

	in := make(chan common.Hash, pendingBuffer)
	sub, err := conn.EthSubscribe(ctx, in, "newPendingTransactions")
	if err != nil {
		conn.Close()
		return nil, transportError(method, err)
	}

	p := &pendingSubscription{
		conn:   conn,
		sub:    sub,
		in:     in,
		hashes: make(chan string, pendingBuffer),
		errs:   make(chan error, 1),
		quit:   make(chan struct{}),
	}
	go p.forward()

	return p, nil
}
