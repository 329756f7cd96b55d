package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/herbalogix/labelspec/internal/server"
	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/services"
	"github.com/herbalogix/labelspec/pkg/configuration"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()

	logger := conf.Logger()

	pool, err := pgxpool.New(context.Background(), conf.Database.Opts)
	if err != nil {
		logger.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatalf("failed to reach database: %v", err)
	}

	srv := server.Default(&server.DefaultOptions{
		Logger:   logger,
		Conf:     conf,
		Pool:     pool,
		Renderer: renderer(conf),
	})

	log.Printf("listening on %s", conf.SocketAddress)
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

// renderer points rendered exports at the external rendering service when one
// is configured. Without it, pdf/png exports are rejected by the service.
func renderer(conf *configuration.Configuration) services.Renderer {
	base := strings.TrimRight(conf.RendererBaseURL, "/")
	if base == "" {
		return nil
	}
	return services.RendererFunc(func(_ context.Context, format string, spec labelspec.SpecWithContent) (string, error) {
		return fmt.Sprintf("%s/render/%s.%s", base, spec.Spec.ID, format), nil
	})
}
