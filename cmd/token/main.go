// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command token mints a bearer token for a platform user id with the
// server's signing key. It reads APP_TOKEN_SIGN_KEY, APP_TOKEN_ISSUER and
// APP_TOKEN_DURATION from the environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"github.com/caarlos0/env/v11"
)

func main() {
	log := logger.NewLogger("go-fee-sponsor-token")

	userID := flag.String("user", "", "Platform user id placed in the token subject")
	flag.Parse()

	app := config.App{TokenIssuer: "go-fee-sponsor", TokenDuration: 24 * time.Hour}
	if err := env.ParseWithOptions(&app, env.Options{Prefix: "APP_"}); err != nil {
		log.Fatal().Err(err).Msg("error reading env")
	}

	token, err := service.NewTokenService(app, log).CreateToken(context.Background(), *userID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.SignedString)
}
