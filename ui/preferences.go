package ui

import (
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/ui/setting"
)

// ShowPreferences opens the preferences window, reusing it if already open.
func (sa *StencilApp) ShowPreferences() {
	if sa.prefsWindow != nil {
		sa.prefsWindow.RequestFocus()
		return
	}
	w := sa.app.NewWindow("Preferences")
	sa.prefsWindow = w
	w.SetOnClosed(func() { sa.prefsWindow = nil })

	sm := NewSettingsManager(w)
	sm.RegisterRefreshFunc(sa.applyPlacement)

	w.SetContent(container.NewBorder(nil,
		container.NewCenter(sm.GetApplySettingsButton()),
		nil, nil,
		container.NewVScroll(sa.createPrefsPanel(sm)),
	))
	w.Resize(fyne.NewSize(640, 520))
	w.CenterOnScreen()
	w.Show()
}

// createPrefsPanel lays out every preference section.
func (sa *StencilApp) createPrefsPanel(sm setting.SettingsManager) *fyne.Container {
	panel := container.NewVBox()

	panel.Add(sm.CreateSectionTitleLabel("Appearance"))
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Theme",
		Options:      config.Themes,
		InitialValue: setting.IndexOf(config.Themes, sa.cfg.GetTheme()),
		Label:        sm.CreateSettingTitleLabel("Theme:"),
		ApplyFunc: func(i int) {
			sa.cfg.SetTheme(config.Themes[i])
			sa.app.Settings().SetTheme(themeFor(config.Themes[i]))
		},
	}, panel)

	panel.Add(widget.NewSeparator())
	panel.Add(sm.CreateSectionTitleLabel("Placement"))
	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "SmartPlacement",
		InitialValue: sa.cfg.GetSmartPlacement(),
		Label:        sm.CreateSettingTitleLabel("Smart initial placement:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Center newly opened images on their most interesting region instead of their middle."),
		ApplyFunc:    sa.cfg.SetSmartPlacement,
		NeedsRefresh: true,
	}, panel)
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:              "Face model",
		InitialValue:      sa.cfg.GetFaceModelPath(),
		PlaceHolder:       "Path to a pigo facefinder cascade (optional)",
		Label:             sm.CreateSettingTitleLabel("Face model:"),
		HelpContent:       sm.CreateSettingDescriptionLabel("With a model, faces take priority over other details."),
		PostValidateCheck: checkModelPath,
		ApplyFunc:         sa.cfg.SetFaceModelPath,
		NeedsRefresh:      true,
	}, panel)

	panel.Add(widget.NewSeparator())
	panel.Add(sm.CreateSectionTitleLabel("Updates"))
	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "UpdateCheck",
		InitialValue: sa.cfg.GetUpdateCheckEnabled(),
		Label:        sm.CreateSettingTitleLabel("Check for updates on start:"),
		ApplyFunc:    sa.cfg.SetUpdateCheckEnabled,
	}, panel)

	panel.Add(widget.NewSeparator())
	panel.Add(sm.CreateSectionTitleLabel("Stencil"))
	sm.CreateButtonWithConfirmationSetting(&setting.ButtonWithConfirmationConfig{
		Name:           "RestoreStencil",
		Label:          sm.CreateSettingTitleLabel("Canvas and stencil geometry:"),
		HelpContent:    sm.CreateSettingDescriptionLabel("Restores the 600x600 canvas with a 400x400 stencil. Takes effect on the next start."),
		ButtonText:     "Restore Defaults",
		ConfirmTitle:   "Restore Defaults",
		ConfirmMessage: "Reset the canvas and stencil geometry to the defaults?",
		OnPressed: func() {
			sa.cfg.SetEditorConfig(config.DefaultEditorConfig())
			dialog.ShowInformation("Restore Defaults", "Restart "+config.AppName+" to use the default stencil.", sm.GetSettingsWindow())
		},
	}, panel)

	return panel
}

// checkModelPath accepts an empty path or an existing regular file.
func checkModelPath(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}
