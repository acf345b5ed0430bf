// Package main starts the browser-facing marketing site.
//
// This process owns the landing pages, guides, and live-counter fragments; the
// notice wizard itself runs elsewhere and is only linked to.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/noticedesk/noticedesk.uk/internal/cmd/web"
	"github.com/noticedesk/noticedesk.uk/internal/platform/config"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
