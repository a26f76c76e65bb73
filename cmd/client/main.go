package main

import (
	"context"
	"fmt"
	"hr-chat/domain"
	"hr-chat/infrastructure/http/client"
	"hr-chat/projection"
	"hr-chat/repositories"
	"hr-chat/runtime"
	"hr-chat/runtime/workers"
	"hr-chat/services"
	"hr-chat/ui"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the terminal client: persisted session, HTTP transport, transcript,
// OTP challenge and dispatcher, then reads stdin until /quit, EOF or a signal.
func run() (int, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	terminal := ui.NewTerminal(os.Stdout, config.Colors)
	transcript := projection.NewTranscript(terminal)
	otp := services.NewOtpChallenge(terminal, transcript, log)
	transport := services.NewChatTransport(client.NewChatClient(config.BackendURL, config.Timeout), log)
	store := repositories.NewSessionRepository(db, log)

	dispatcher := runtime.NewDispatcher(log, transport, store, transcript, otp, terminal, runtime.Options{
		Greeting:     domain.GreetingMessage,
		Examples:     domain.DefaultExamples,
		ConfirmReset: config.ConfirmReset,
		BufferSize:   config.BufferSize,
	})
	console := workers.NewConsoleWorker(log, os.Stdin, dispatcher, quit)

	log.Info("Starting client", "backend", config.BackendURL)
	workers.NewSupervisor(log).Add(dispatcher, console).Run(ctx)

	log.Info("Client stopped cleanly")
	return exitOK, nil
}
