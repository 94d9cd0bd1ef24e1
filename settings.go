package resalehub

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Theme selects the terminal rendering style.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme: %q (want light, dark or system)", s)
	}
}

// Currencies supported for display.
const (
	EUR = "EUR"
	USD = "USD"
	GBP = "GBP"
	CHF = "CHF"
)

// ParseCurrency parses a display currency code.
func ParseCurrency(s string) (string, error) {
	switch s {
	case EUR, USD, GBP, CHF:
		return s, nil
	default:
		return "", fmt.Errorf("unknown currency: %q (want EUR, USD, GBP or CHF)", s)
	}
}

// Settings holds the two display preferences. They live in their own
// persisted document, fully independent from the domain store.
type Settings struct {
	Theme    Theme  `json:"theme"`
	Currency string `json:"currency"`
}

// DefaultSettings returns the preferences used before any were saved.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, Currency: EUR}
}

// settingsDocument is the persisted layout of the preferences, with its own
// version tag, independent from the store document's.
type settingsDocument struct {
	Version int `json:"version"`
	Settings
}

// SettingsVersion tags the persisted settings document.
const SettingsVersion = 1

// EncodeSettings writes the settings as a versioned JSON document.
func EncodeSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(settingsDocument{Version: SettingsVersion, Settings: s}); err != nil {
		return fmt.Errorf("could not encode settings document: %w", err)
	}
	return nil
}

// DecodeSettings reads a settings document. A version mismatch falls back to
// the defaults without error.
func DecodeSettings(r io.Reader) (Settings, error) {
	var doc settingsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Settings{}, fmt.Errorf("could not decode settings document: %w", err)
	}
	if doc.Version != SettingsVersion {
		return DefaultSettings(), nil
	}
	return doc.Settings, nil
}

// LoadSettings reads the settings document from the storage directory,
// falling back to defaults when absent.
func LoadSettings(dir string) (Settings, error) {
	f, err := os.Open(documentPath(dir, SettingsKey))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("could not open settings document: %w", err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// SaveSettings writes the settings back to the storage directory.
func SaveSettings(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	f, err := os.Create(documentPath(dir, SettingsKey))
	if err != nil {
		return fmt.Errorf("could not open settings document for writing: %w", err)
	}
	defer f.Close()
	return EncodeSettings(f, s)
}
