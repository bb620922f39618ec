// Command server runs the study REST API.
//
// Usage:
//
//	server [--help]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/mnflash-backend/internal/app"
	"github.com/heartmarshall/mnflash-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\n", os.Args[0])
		if err := config.Usage(flag.CommandLine.Output()); err != nil {
			log.Printf("describe config: %v", err)
		}
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
