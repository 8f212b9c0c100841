// Command preselect is an admin console for the preselection screen of a running ats-service.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/artem13815/ats/pkg/adminapi"
	"github.com/artem13815/ats/pkg/logger"
	"github.com/artem13815/ats/pkg/preselection"
)

func main() {
	baseURL := flag.String("url", envOr("ATS_URL", "http://localhost:8080"), "ats-service base URL")
	token := flag.String("token", os.Getenv("ATS_TOKEN"), "admin JWT (or ATS_TOKEN)")
	env := flag.String("env", envOr("APP_ENV", "development"), "logging mode")
	flag.Parse()

	zl, err := logger.New(*env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	if *token == "" {
		zl.Fatal("admin token is required: pass -token or set ATS_TOKEN")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := preselection.NewSession(adminapi.New(*baseURL, *token), zl)
	c := &console{s: s, out: os.Stdout}
	if err := s.Store.Load(ctx); err != nil {
		zl.Warn("initial load failed", zap.Error(err))
	}
	c.render()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		err := c.exec(ctx, in.Text())
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
