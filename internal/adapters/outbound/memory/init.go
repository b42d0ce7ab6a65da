package memory

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitStoreOpener registers an in-memory Database as the store opener when
// the memory driver is selected.
type InitStoreOpener struct {
	Logger *log.Logger `resolve:""`
	Driver string      `config:"STORE_DRIVER" default:"postgres"`
}

// Initialize registers the Database in the dependency container.
func (i InitStoreOpener) Initialize(ctx context.Context) (context.Context, error) {
	if i.Driver != "memory" {
		return ctx, nil
	}
	depend.Register[domain.StoreOpener](NewDatabase())
	i.Logger.Println("InitStoreOpener: using in-memory store")
	return ctx, nil
}
