// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// tokenService mints and verifies the bearer tokens of the HTTP API. The
// platform issues tokens for its users; the server only needs the shared
// key to trust their subject.
type tokenService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (t *tokenService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, ErrInvalidUserID
	}

	token, err := utils.GenerateJWTToken(t.issuer, userID, t.tokenDuration, t.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "tokenService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
