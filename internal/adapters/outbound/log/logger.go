package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the process-wide logger dependency.
// Components prefix their messages with their own name, e.g. "IndexRepository: ...".
type InitLogger struct {
	out io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.out
	if out == nil {
		out = os.Stdout
	}
	depend.Register(log.New(out, "", log.LstdFlags|log.LUTC|log.Lmsgprefix))
	return ctx, nil
}
