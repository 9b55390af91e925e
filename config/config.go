package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// CatalogSettings configures the ticketing catalog API client.
type CatalogSettings struct {
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

// ContentSettings configures the content-store client.
type ContentSettings struct {
	ProjectID  string `json:"projectId"`
	Dataset    string `json:"dataset"`
	APIVersion string `json:"apiVersion"`
	BaseURL    string `json:"baseUrl,omitempty"` // overrides the derived URL when set
}

// StorageSettings locates the durable key/value store and the session cache.
type StorageSettings struct {
	DatabasePath string `json:"databasePath"`
	CachePath    string `json:"cachePath"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Addr string `json:"addr"`
}

// LogSettings configures rotated file logging. An empty path logs to stdout
// only.
type LogSettings struct {
	Path       string `json:"path,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMb,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
	MaxAgeDays int    `json:"maxAgeDays,omitempty"`
}

// Settings is the full application configuration.
type Settings struct {
	Catalog CatalogSettings `json:"catalog"`
	Content ContentSettings `json:"content"`
	Storage StorageSettings `json:"storage"`
	Server  ServerSettings  `json:"server"`
	Log     LogSettings     `json:"log"`
}

// Manager loads settings from an optional JSON file with environment
// overrides, caching the result.
type Manager struct {
	path string

	mu     sync.RWMutex
	cached *Settings
}

// NewManager returns a manager reading from path. An empty path means
// environment and defaults only.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load returns the current settings, reading them on first use.
func (m *Manager) Load() (*Settings, error) {
	m.mu.RLock()
	if m.cached != nil {
		defer m.mu.RUnlock()
		return m.cached, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cached != nil {
		return m.cached, nil
	}

	settings := defaults()

	if m.path != "" {
		data, err := os.ReadFile(m.path)
		switch {
		case os.IsNotExist(err):
			// No file is fine, environment and defaults carry the config.
		case err != nil:
			return nil, fmt.Errorf("read settings file: %w", err)
		default:
			if err := json.Unmarshal(data, settings); err != nil {
				return nil, fmt.Errorf("parse settings file %q: %w", m.path, err)
			}
		}
	}

	applyEnv(settings)

	if settings.Catalog.APIKey == "" {
		return nil, fmt.Errorf("catalog API key is not configured (set BILLETTLYST_CATALOG_API_KEY)")
	}

	m.cached = settings
	return settings, nil
}

func defaults() *Settings {
	return &Settings{
		Catalog: CatalogSettings{
			BaseURL:  "https://app.ticketmaster.com/discovery/v2",
			PageSize: 20,
		},
		Content: ContentSettings{
			ProjectID:  "quese9pr",
			Dataset:    "production",
			APIVersion: "2023-01-01",
		},
		Storage: StorageSettings{
			DatabasePath: "data/billettlyst.db",
			CachePath:    "data/session_cache.json",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
		Log: LogSettings{
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

func applyEnv(s *Settings) {
	setString(&s.Catalog.APIKey, "BILLETTLYST_CATALOG_API_KEY")
	setString(&s.Catalog.BaseURL, "BILLETTLYST_CATALOG_BASE_URL")
	setInt(&s.Catalog.PageSize, "BILLETTLYST_CATALOG_PAGE_SIZE")
	setString(&s.Content.ProjectID, "BILLETTLYST_CONTENT_PROJECT_ID")
	setString(&s.Content.Dataset, "BILLETTLYST_CONTENT_DATASET")
	setString(&s.Content.APIVersion, "BILLETTLYST_CONTENT_API_VERSION")
	setString(&s.Content.BaseURL, "BILLETTLYST_CONTENT_BASE_URL")
	setString(&s.Storage.DatabasePath, "BILLETTLYST_DB_PATH")
	setString(&s.Storage.CachePath, "BILLETTLYST_CACHE_PATH")
	setString(&s.Server.Addr, "BILLETTLYST_ADDR")
	setString(&s.Log.Path, "BILLETTLYST_LOG_PATH")
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
