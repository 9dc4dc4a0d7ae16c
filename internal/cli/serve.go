package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// newServeCmd creates the serve command, a small static server for
// previewing rendered graphs in a browser.
func newServeCmd() *cobra.Command {
	var (
		addr string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered graphs over HTTP for browser preview",
		Long: `Serve rendered graphs over HTTP for browser preview.

The HTML artifacts load an external pan/zoom script, so opening them via
file:// is blocked by some browsers. This command serves a directory of
rendered output on localhost instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, dir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to serve")

	return cmd
}

// runServe blocks until the context is cancelled or the server fails.
func runServe(ctx context.Context, addr, dir string) error {
	logger := loggerFromContext(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("serve dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("serve dir: %s is not a directory", dir)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logAdapter{logger},
		NoColor: true,
	}))
	router.Handle("/*", http.FileServer(http.Dir(dir)))

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	printInfo("Serving %s on http://%s", dir, addr)
	printDetail("Press ctrl+c to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// logAdapter routes chi's request log lines through the CLI logger.
type logAdapter struct {
	logger interface{ Info(msg any, keyvals ...any) }
}

func (a logAdapter) Print(v ...any) {
	a.logger.Info(fmt.Sprint(v...))
}
