package ui

import (
	"fmt"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/pkg/ui/setting"
	"github.com/dixieflatline76/Stencil/util/log"
)

// SettingsManager builds preference widgets and holds their pending changes
// until Apply is pressed.
type SettingsManager struct {
	chgPrefsCallbacks   map[string]func()
	refreshFlags        map[string]bool
	refreshFuncs        []func()
	checkAndEnableApply func()
	applyButton         *widget.Button
	prefsWindow         fyne.Window
}

// NewSettingsManager creates a settings manager for the preferences window.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		refreshFlags:      make(map[string]bool),
		prefsWindow:       window,
	}

	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Disable()
	sm.checkAndEnableApply = func() {
		if sm.HasPendingChanges() {
			sm.applyButton.Enable()
		} else {
			sm.applyButton.Disable()
		}
		sm.applyButton.Refresh()
	}
	return sm
}

var _ setting.SettingsManager = (*SettingsManager)(nil)

// apply runs pending callbacks in name order, then the refresh functions if
// any applied setting asked for one.
func (sm *SettingsManager) apply() {
	for _, name := range slices.Sorted(maps.Keys(sm.chgPrefsCallbacks)) {
		log.Debugf("settings: applying %s", name)
		sm.chgPrefsCallbacks[name]()
	}
	sm.chgPrefsCallbacks = make(map[string]func())

	if len(sm.refreshFlags) > 0 {
		for _, rf := range sm.refreshFuncs {
			rf()
		}
		sm.refreshFlags = make(map[string]bool)
	}
	sm.checkAndEnableApply()
}

// HasPendingChanges reports whether Apply has anything to do.
func (sm *SettingsManager) HasPendingChanges() bool {
	return len(sm.refreshFlags) > 0 || len(sm.chgPrefsCallbacks) > 0
}

// GetApplySettingsButton returns the Apply Changes button.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// track records or drops the pending change for name depending on whether
// the widget differs from its initial value.
func (sm *SettingsManager) track(name string, changed, needsRefresh bool, apply func()) {
	if changed {
		sm.SetSettingChangedCallback(name, apply)
		if needsRefresh {
			sm.SetRefreshFlag(name)
		}
	} else {
		sm.RemoveSettingChangedCallback(name)
		if needsRefresh {
			sm.UnsetRefreshFlag(name)
		}
	}
	sm.checkAndEnableApply()
}

// CreateSelectSetting adds a select row to header.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, selectWidget, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	selectWidget.OnChanged = func(string) {
		selected := selectWidget.SelectedIndex()
		sm.track(cfg.Name, selected != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(selected)
			cfg.InitialValue = selected
		})
	}
}

// CreateBoolSetting adds a check row to header.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, check, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		sm.track(cfg.Name, b != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(b)
			cfg.InitialValue = b
		})
		if cfg.OnChanged != nil {
			cfg.OnChanged(b)
		}
	}
	return check
}

// CreateTextEntrySetting adds a validated text entry row to header.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	entry.Validator = cfg.Validator

	statusLabel := widget.NewLabel("")

	header.Add(NewSplitRow(cfg.Label, entry, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(NewSplitRowWithAlignment(cfg.HelpContent, statusLabel, SplitProportion.TwoThirds, SplitAlign.Opposed))
	} else {
		header.Add(NewSplitRow(widget.NewLabel(""), statusLabel, SplitProportion.TwoThirds))
	}

	entry.OnChanged = func(s string) {
		var err error
		if cfg.Validator != nil {
			err = entry.Validate()
		}
		if err == nil && cfg.PostValidateCheck != nil {
			err = cfg.PostValidateCheck(s)
		}

		if err != nil {
			statusLabel.SetText(err.Error())
			statusLabel.Importance = widget.DangerImportance
			sm.track(cfg.Name, false, cfg.NeedsRefresh, nil)
		} else {
			statusLabel.SetText(fmt.Sprintf("%s OK", cfg.Name))
			statusLabel.Importance = widget.SuccessImportance
			sm.track(cfg.Name, s != cfg.InitialValue, cfg.NeedsRefresh, func() {
				cfg.ApplyFunc(s)
				cfg.InitialValue = s
			})
		}
		statusLabel.Refresh()
	}
}

// CreateButtonWithConfirmationSetting adds a button that confirms before
// calling OnPressed.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" {
			cfg.OnPressed()
			return
		}
		dialog.ShowConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(ok bool) {
			if ok {
				cfg.OnPressed()
			}
		}, sm.prefsWindow)
	})

	if cfg.Label != nil {
		header.Add(NewSplitRow(cfg.Label, button, SplitProportion.OneThird))
	} else {
		header.Add(button)
	}
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
}

// SetSettingChangedCallback sets the function run on Apply for settingName.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback drops the pending change for settingName.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// SetRefreshFlag marks settingName as needing the refresh functions.
func (sm *SettingsManager) SetRefreshFlag(settingName string) {
	sm.refreshFlags[settingName] = true
}

// UnsetRefreshFlag clears the refresh flag for settingName.
func (sm *SettingsManager) UnsetRefreshFlag(settingName string) {
	delete(sm.refreshFlags, settingName)
}

// RegisterRefreshFunc registers a function to run after flagged changes are applied.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the preferences window.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}

// GetCheckAndEnableApplyFunc returns the function that syncs the Apply button.
func (sm *SettingsManager) GetCheckAndEnableApplyFunc() func() {
	return sm.checkAndEnableApply
}
