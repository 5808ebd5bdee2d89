// Package broadcast fans out state snapshots to any number of in-process subscribers.
//
// It is the reactive half of stateful UI components: an owner publishes the full state after
// every mutation and readers (SSE streams, renderers, tests) subscribe to the feed. Because
// each message is a complete snapshot, a reader that falls behind only needs the newest one,
// so a full subscriber buffer drops its oldest pending message instead of blocking the
// publisher.
//
// # Usage
//
//	feed := broadcast.NewMemoryBroadcaster[[]string](4, broadcast.WithReplay[[]string]())
//	defer feed.Close()
//
//	sub := feed.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = feed.Broadcast(ctx, broadcast.Message[[]string]{Data: []string{"a"}})
//	msg := <-sub.Receive(ctx)
//
// With replay enabled, a new subscriber immediately receives the last published message.
package broadcast
