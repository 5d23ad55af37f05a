package config

import (
	"fyne.io/fyne/v2"
)

// Reader themes
type ReaderTheme string

const (
	ThemeLight ReaderTheme = "light"
	ThemeDark  ReaderTheme = "dark"
	ThemeSepia ReaderTheme = "sepia"
)

// Settings keys for Fyne preferences
const (
	KeyReaderFontSize  = "reader_font_size"
	KeyReaderTheme     = "reader_theme"
	KeyLanguage        = "app_language"
	KeyLibraryPageSize = "library_page_size"
)

// Default values
const (
	DefaultReaderFontSize  = 16
	DefaultReaderTheme     = ThemeLight
	DefaultLanguage        = "system"
	DefaultLibraryPageSize = 20
)

// Settings manages user-facing application preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetReaderFontSize returns the configured reader font size
func (s *Settings) GetReaderFontSize() int {
	size := s.app.Preferences().Int(KeyReaderFontSize)
	if size <= 0 {
		s.SetReaderFontSize(DefaultReaderFontSize)
		return DefaultReaderFontSize
	}
	return size
}

// SetReaderFontSize sets the reader font size, clamped to a readable range
func (s *Settings) SetReaderFontSize(size int) {
	if size < 10 {
		size = 10
	}
	if size > 32 {
		size = 32
	}
	s.app.Preferences().SetInt(KeyReaderFontSize, size)
}

// GetReaderTheme returns the configured reader theme
func (s *Settings) GetReaderTheme() ReaderTheme {
	theme := s.app.Preferences().String(KeyReaderTheme)
	if theme == "" {
		s.SetReaderTheme(DefaultReaderTheme)
		return DefaultReaderTheme
	}
	return ReaderTheme(theme)
}

// SetReaderTheme sets the reader theme
func (s *Settings) SetReaderTheme(theme ReaderTheme) {
	s.app.Preferences().SetString(KeyReaderTheme, string(theme))
}

// GetReaderThemeOptions returns available reader theme options
func (s *Settings) GetReaderThemeOptions() []ReaderTheme {
	return []ReaderTheme{ThemeLight, ThemeDark, ThemeSepia}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLibraryPageSize returns the page size used by library/bookshelf views
func (s *Settings) GetLibraryPageSize() int {
	size := s.app.Preferences().Int(KeyLibraryPageSize)
	if size <= 0 {
		s.SetLibraryPageSize(DefaultLibraryPageSize)
		return DefaultLibraryPageSize
	}
	return size
}

// SetLibraryPageSize sets the library page size
func (s *Settings) SetLibraryPageSize(size int) {
	if size < 5 {
		size = 5
	}
	if size > 50 {
		size = 50
	}
	s.app.Preferences().SetInt(KeyLibraryPageSize, size)
}
