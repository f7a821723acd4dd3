// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// files: the filename is the key name, the trimmed contents are the value.
// Deployments mount the directory; local runs keep a .secrets/ folder.
//
// Key files used by the bot: telegram-bot-token, search-api-key,
// search-engine-id, scoring-api-key, scoring-model, scoring-base-url.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every regular file in dir into a key/value map. A missing
// directory is not an error and yields an empty map, since all credentials
// may arrive via environment or config file instead. Dotfiles and empty
// values are skipped; an unreadable file is reported on stderr and
// skipped, never fatal.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}

	return out, nil
}
