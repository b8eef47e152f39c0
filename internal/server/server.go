// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/handler"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	servers []Server
	logger  *logger.Logger
}

// NewServer creates a transport per configured address.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

// RunServer starts every transport and blocks until ctx is cancelled or one
// of them fails. The others are then shut down.
func (s *server) RunServer(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		g.Go(func() error {
			return srv.RunServer(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrShutdownIncomplete, errors.Join(errs...))
	}
	return nil
}
