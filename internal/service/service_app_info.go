// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

type appInfoService struct {
	info models.ServiceInfo

	logger *logger.Logger
}

// NewAppInfoService serves the build version and the public part of the
// sponsorship policy. Both are fixed for the lifetime of the process.
func NewAppInfoService(app config.App, sponsor config.Sponsor, logger *logger.Logger) (AppInfoService, error) {
	if app.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	ops := slices.Clone(sponsor.AllowedOperationTypes)
	slices.Sort(ops)

	return &appInfoService{
		info: models.ServiceInfo{
			Version:               app.Version,
			AllowedOperationTypes: ops,
			MaxGasPerTransaction:  sponsor.MaxGasPerTransaction,
			DailyGasLimit:         sponsor.DailyGasLimit,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

// GetServiceInfo returns a copy; callers may modify it.
func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	info := s.info
	info.AllowedOperationTypes = slices.Clone(s.info.AllowedOperationTypes)
	return info
}
