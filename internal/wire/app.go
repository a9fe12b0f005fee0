package wire

import (
	"context"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/mithrel/readmekit/internal/config"
	"github.com/mithrel/readmekit/internal/store"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg *viper.Viper
	Log *log.Logger

	dbPath string
	store  *store.Store
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "readmekit ", log.LstdFlags)
	return &App{
		Cfg:    v,
		Log:    logger,
		dbPath: config.ResolveDBPath(v),
	}, nil
}

// Store opens the document library on first use so commands that never
// touch it don't create the database file.
func (a *App) Store(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := store.Open(ctx, a.dbPath)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// Close releases anything BuildApp or Store opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}
