// ABOUTME: Standalone fixture backend for local console development
// ABOUTME: Serves the stub REST API with seeded data on a local port

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fatih/color"

	"github.com/atriumhq/atrium-console/internal/stub"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	secret := flag.String("secret", "atrium-dev-secret", "JWT signing secret (must match the console's auth.jwt_secret)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	server := stub.New([]byte(*secret))

	cyan := color.New(color.FgCyan)
	cyan.Printf("atrium-stub listening on %s\n", *addr)
	fmt.Println("  login: admin / admin123")

	logger.Info("starting stub backend", "addr", *addr)
	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}
