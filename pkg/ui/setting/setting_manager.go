// Package setting describes the preference widgets the settings manager can
// build, so panels can declare settings without depending on the ui package.
package setting

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper builds the labels shared by every preferences panel.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label
	CreateSettingTitleLabel(desc string) *widget.Label
	CreateSettingDescriptionLabel(desc string) *widget.Label
}

// SelectConfig holds the configuration for a select widget.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int // index into Options
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(int)
	NeedsRefresh bool
}

// BoolConfig holds the configuration for a check widget.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	OnChanged    func(bool)
	ApplyFunc    func(bool)
	NeedsRefresh bool
}

// TextEntrySettingConfig holds the configuration for a text entry widget.
type TextEntrySettingConfig struct {
	Name              string
	InitialValue      string
	PlaceHolder       string
	Label             fyne.CanvasObject
	HelpContent       fyne.CanvasObject
	Validator         fyne.StringValidator
	PostValidateCheck func(string) error
	ApplyFunc         func(string)
	NeedsRefresh      bool
}

// ButtonWithConfirmationConfig holds the configuration for a button that
// asks before acting.
type ButtonWithConfirmationConfig struct {
	Name           string
	Label          fyne.CanvasObject
	HelpContent    fyne.CanvasObject
	ButtonText     string
	ConfirmTitle   string
	ConfirmMessage string
	OnPressed      func()
}

// IndexOf returns the position of value in options, or 0 when absent so a
// stale preference selects the first option.
func IndexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

// SettingsManager builds preference widgets and collects pending changes
// until the user applies them.
type SettingsManager interface {
	SettingsHelper

	CreateSelectSetting(cfg *SelectConfig, header *fyne.Container)
	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check
	CreateTextEntrySetting(cfg *TextEntrySettingConfig, header *fyne.Container)
	CreateButtonWithConfirmationSetting(cfg *ButtonWithConfirmationConfig, header *fyne.Container)

	GetApplySettingsButton() *widget.Button
	SetSettingChangedCallback(settingName string, callback func())
	RemoveSettingChangedCallback(settingName string)
	SetRefreshFlag(settingName string)
	UnsetRefreshFlag(settingName string)

	RegisterRefreshFunc(refreshFunc func()) // called after changes flagged NeedsRefresh are applied
	GetSettingsWindow() fyne.Window
	GetCheckAndEnableApplyFunc() func()
}
