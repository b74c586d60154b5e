package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"fairway/pkg/storage"
)

// openStore resolves the configured backend and path (flags win over the
// config file) and opens the round store.
func openStore() (storage.Store, error) {
	backend, _ := rootCmd.PersistentFlags().GetString("backend")
	if backend == "" {
		backend = viper.GetString("storage.backend")
	}
	path, _ := rootCmd.PersistentFlags().GetString("store")
	if path == "" {
		path = viper.GetString("storage.path")
	}

	switch backend {
	case "", "file":
		if path == "" {
			p, err := defaultStorePath("rounds.json")
			if err != nil {
				return nil, err
			}
			path = p
		}
		return storage.NewFileStore(path, viper.GetInt64("storage.capacity")), nil
	case "sqlite":
		if path == "" {
			p, err := defaultStorePath("rounds.sqlite")
			if err != nil {
				return nil, err
			}
			path = p
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		return storage.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", backend)
	}
}

func defaultStorePath(name string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fairway", name), nil
}
