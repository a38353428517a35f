package config

import "fyne.io/fyne/v2"

// AppUpdateCheckEnabledKey is the key for the app update check enabled preference
const AppUpdateCheckEnabledKey = "app_update_check_enabled"

// AppThemeKey is the key for the app theme preference
const AppThemeKey = "app_theme"

// SmartPlacementKey is the key for the smart initial placement preference
const SmartPlacementKey = "editor_smart_placement"

// FaceModelPathKey is the key for the face detection model path preference
const FaceModelPathKey = "editor_face_model_path"

// LastOpenDirKey is the key for the directory the open dialog starts in
const LastOpenDirKey = "editor_last_open_dir"

// Theme names accepted by SetTheme
const (
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
)

// Themes lists the selectable theme names in display order.
var Themes = []string{ThemeSystem, ThemeLight, ThemeDark}

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// Preferences returns the underlying preference store.
func (c *AppConfig) Preferences() fyne.Preferences {
	return c.prefs
}

// GetUpdateCheckEnabled returns whether the application should check for updates
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(AppUpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(AppUpdateCheckEnabledKey, enabled)
}

// GetTheme returns the current application theme
func (c *AppConfig) GetTheme() string {
	return c.prefs.StringWithFallback(AppThemeKey, ThemeSystem)
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}

// GetSmartPlacement returns whether newly opened images are positioned on their focus point.
func (c *AppConfig) GetSmartPlacement() bool {
	return c.prefs.BoolWithFallback(SmartPlacementKey, false)
}

// SetSmartPlacement sets whether newly opened images are positioned on their focus point.
func (c *AppConfig) SetSmartPlacement(enabled bool) {
	c.prefs.SetBool(SmartPlacementKey, enabled)
}

// GetFaceModelPath returns the path of the pigo face finder cascade, empty if unset.
func (c *AppConfig) GetFaceModelPath() string {
	return c.prefs.StringWithFallback(FaceModelPathKey, "")
}

// SetFaceModelPath sets the path of the pigo face finder cascade.
func (c *AppConfig) SetFaceModelPath(path string) {
	c.prefs.SetString(FaceModelPathKey, path)
}

// GetLastOpenDir returns the directory of the last opened image.
func (c *AppConfig) GetLastOpenDir() string {
	return c.prefs.StringWithFallback(LastOpenDirKey, "")
}

// SetLastOpenDir remembers the directory of the last opened image.
func (c *AppConfig) SetLastOpenDir(dir string) {
	c.prefs.SetString(LastOpenDirKey, dir)
}
