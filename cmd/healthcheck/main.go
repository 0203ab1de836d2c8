// Command healthcheck probes a running trade-journal server. It exits with
// status 1 when the server does not answer its health endpoint, which makes
// it usable as a container HEALTHCHECK.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/trade-journal/internal/adapter"
	"github.com/MKhiriev/trade-journal/internal/logger"
)

func main() {
	address := flag.String("a", "localhost:8080", "address of the trade-journal server")
	timeout := flag.Duration("timeout", 3*time.Second, "probe timeout")
	flag.Parse()

	log := logger.NewLogger("trade-journal-healthcheck")

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = client.HealthCheck(ctx); err != nil {
		log.Error().Err(err).Str("address", *address).Msg("server is unhealthy")
		cancel()
		os.Exit(1)
	}

	version, err := client.GetServerVersion(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("server is healthy but did not report its version")
		return
	}

	log.Info().Str("address", *address).Str("version", version).Msg("server is healthy")
}
