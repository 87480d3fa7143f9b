package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/cairnhq/cairn/http"
	"github.com/cairnhq/cairn/resource"
	"github.com/cairnhq/cairn/telemetry"
)

const name = "cairn"

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <IP> <PORT>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1]+":"+os.Args[2]); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}

	logger := telemetry.Logger(name)

	handlers := resource.NewHandlers(
		resource.DefaultTable(),
		resource.NewStore(resource.DefaultCapacity, resource.DefaultMaxContentSize),
		logger,
	)

	handler := handlers.Handler()
	for _, middleware := range []http.Middleware{
		http.LoggingMiddleware(logger),
		http.RequestIDMiddleware(),
		http.RecoverMiddleware(logger),
	} {
		handler = middleware(handler)
	}

	server := http.NewServer(name, handler, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		log.Printf("Listening and serving on: %s", addr)
		serverErrCh <- server.ListenAndServe(ctx, addr)
	}()

	select {
	case err := <-serverErrCh:
		return errors.Join(err, otelShutdown(context.Background()))
	case <-ctx.Done():
		stop()
	}

	return otelShutdown(context.Background())
}
