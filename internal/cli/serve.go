package cli

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/plotplan/plotplan/internal/server"
	"github.com/plotplan/plotplan/pkg/session"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string        // listen address
	store      string        // session backend: "memory", "file", "redis"
	sessionDir string        // file backend directory
	sessionTTL time.Duration // session lifetime
	redisAddr  string        // redis backend address
	redisDB    int           // redis database number
	noCache    bool          // disable the render cache
	catalog    string        // catalog override file
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:       ":8080",
		store:      "memory",
		sessionTTL: session.DefaultTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for browser-based plan editing",
		Long: `Run the HTTP API for browser-based plan editing.

Each browser session holds a draft plan in the selected session store.
The memory backend suits local use, the file backend survives restarts,
and the redis backend supports multiple server instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.store, "store", opts.store, "session store: memory (default), file, redis")
	cmd.Flags().StringVar(&opts.sessionDir, "session-dir", "", "directory for the file session store")
	cmd.Flags().DurationVar(&opts.sessionTTL, "session-ttl", opts.sessionTTL, "session lifetime")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address for the redis session store")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "path to a catalog override file")

	return cmd
}

// runServe wires the session store, runner, and server together and blocks
// until the command context is cancelled.
func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	cat, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	store, err := newSessionStore(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(server.Config{
		Store:   store,
		Runner:  runner,
		Catalog: cat,
		Logger:  c.Logger,
		TTL:     opts.sessionTTL,
	})

	c.Logger.Info("session store ready", "backend", opts.store, "ttl", opts.sessionTTL)
	return srv.ListenAndServe(cmd.Context(), opts.addr)
}

// newSessionStore builds the session backend selected by --store.
func newSessionStore(opts *serveOpts) (session.Store, error) {
	switch opts.store {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore(opts.sessionDir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: opts.redisAddr,
			DB:   opts.redisDB,
		})
		return session.NewRedisStore(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown session store: %s (must be 'memory', 'file', or 'redis')", opts.store)
	}
}
