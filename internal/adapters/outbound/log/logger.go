package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Timestamps carry microseconds and are UTC unless LOG_UTC is false.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"catalog "`
	UTC    bool   `config:"LOG_UTC" default:"true"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, il.Prefix, il.flags()))
	return ctx, nil
}

func (il InitLogger) flags() int {
	flags := log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix
	if il.UTC {
		flags |= log.LUTC
	}
	return flags
}
