package cpu

import (
	"context"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// worker is a single search goroutine. It owns its seed source and attempt
// counter and only talks to the coordinator through the events channel.
type worker struct {
	id        int
	batchSize int
	exact     bool
	seeds     generator.SeedSource
	deriver   generator.KeyDeriver
	matcher   *generator.Matcher
}

// run generates batches of candidates until shutdown. Shutdown is only
// observed between batches, so stop latency is bounded by one batch.
//
// Unless exact is set, a match resets the attempt counter: attempts made
// earlier in the same batch are never reported. The coordinator's total
// therefore undercounts batches that contain matches.
func (w *worker) run(ctx context.Context, events chan<- generator.Event, done <-chan struct{}) {
	var attempts uint64

	for {
		for i := 0; i < w.batchSize; i++ {
			seed, err := w.seeds.Next()
			if err != nil {
				if attempts > 0 {
					w.send(events, done, generator.ProgressEvent{WorkerID: w.id, Attempts: attempts})
				}
				w.send(events, done, generator.WorkerFailedEvent{WorkerID: w.id, Err: err})
				return
			}

			kp := w.deriver.Derive(seed)
			attempts++

			if term, ok := w.matcher.Match(kp.Address); ok {
				w.send(events, done, generator.MatchEvent{
					WorkerID:   w.id,
					Address:    kp.Address,
					PrivateKey: kp.PrivateKey,
					Term:       term,
				})
				if !w.exact {
					attempts = 0
				}
			}
		}

		w.send(events, done, generator.ProgressEvent{WorkerID: w.id, Attempts: attempts})
		attempts = 0

		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		default:
		}
	}
}

// send delivers an event unless the coordinator has already shut down.
func (w *worker) send(events chan<- generator.Event, done <-chan struct{}, ev generator.Event) {
	select {
	case events <- ev:
	case <-done:
	}
}
