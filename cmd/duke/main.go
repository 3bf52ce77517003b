// Package main is the entry point for the duke CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(containerFactory(cwd), version)
	return rootCmd.ExecuteContext(ctx)
}

// containerFactory builds the container for cwd once flags are parsed.
func containerFactory(cwd string) cli.ContainerFactory {
	return func(o app.Overrides) (*app.Container, error) {
		c, err := app.New(cwd, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize: %w", err)
		}
		return c, nil
	}
}
