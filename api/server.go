package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Serve blocks until SIGINT or SIGTERM, then drains connections and runs
// the cleanup hooks in order.
func (app *Application) Serve(mux *http.ServeMux, cleanup ...func()) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	shutdownErr := make(chan error)

	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		s := <-shutdown
		fmt.Printf("shutting down picker server with signal %v\n", s)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(ctx)

		fmt.Println("stopping background tasks before shutting down...")
		for _, fn := range cleanup {
			fn()
		}
		shutdownErr <- err
	}()

	fmt.Printf("starting picker server on port %v\n", app.Config.HTTPPort)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErr
	if err != nil {
		return err
	}

	fmt.Printf("stopped picker server %v\n", app.Config.HTTPPort)

	return nil
}
