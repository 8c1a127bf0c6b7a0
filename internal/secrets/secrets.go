// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the trimmed
// contents are the value.
//
// Supported key files: google-maps-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GoogleMapsKey is the file name holding the Google Maps Web Services key.
const GoogleMapsKey = "google-maps-api-key"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string, logger *zap.Logger) (map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// Resolve picks a secret value. An explicitly configured value wins, then
// the environment variable, then the file loaded from the secrets directory.
func Resolve(configured string, loaded map[string]string, key, envVar string) string {
	if v := strings.TrimSpace(configured); v != "" {
		return v
	}
	if envVar != "" {
		if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
			return v
		}
	}
	return loaded[key]
}
