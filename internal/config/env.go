// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// fileSuffix marks a variable holding the path of a file with the value,
// as mounted by Docker and Kubernetes secrets: CUSTODY_MASTER_SECRET_FILE
// supplies CUSTODY_MASTER_SECRET.
const fileSuffix = "_FILE"

// fileSecrets are the variables that may be supplied through fileSuffix.
var fileSecrets = []string{
	"APP_TOKEN_SIGN_KEY",
	"CUSTODY_MASTER_SECRET",
	"SPONSOR_PRIVATE_KEY",
	"STORAGE_DB_DATABASE_URI",
}

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	environ, err := environWithFiles(env.ToMap(os.Environ()))
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// environWithFiles resolves NAME_FILE into NAME for each of fileSecrets. A
// value set directly wins over the file.
func environWithFiles(environ map[string]string) (map[string]string, error) {
	for _, name := range fileSecrets {
		key := name + fileSuffix
		path := environ[key]
		if path == "" {
			continue
		}
		if _, set := environ[name]; set {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		environ[name] = strings.TrimRight(string(content), "\r\n")
	}
	return environ, nil
}
