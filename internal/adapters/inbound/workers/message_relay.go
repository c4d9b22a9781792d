package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/usecases"
)

// MessageRelay periodically publishes pending outbox events to Pub/Sub.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic relay of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.RelayOutbox.Execute(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: error relaying batch: %v", err)
			}
			if mr.workerExecutionChan != nil {
				select {
				case mr.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopped")
			return nil
		}
	}
}
