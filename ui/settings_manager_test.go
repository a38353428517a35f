package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/pkg/ui/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsManager(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Preferences")
	defer w.Close()

	t.Run("Bool setting", func(t *testing.T) {
		sm := NewSettingsManager(w)
		refreshed := 0
		sm.RegisterRefreshFunc(func() { refreshed++ })

		var applied []bool
		panel := container.NewVBox()
		check := sm.CreateBoolSetting(&setting.BoolConfig{
			Name:         "Smart",
			Label:        widget.NewLabel("Smart"),
			ApplyFunc:    func(b bool) { applied = append(applied, b) },
			NeedsRefresh: true,
		}, panel)
		apply := sm.GetApplySettingsButton()
		assert.True(t, apply.Disabled())

		test.Tap(check)
		assert.True(t, sm.HasPendingChanges())
		assert.False(t, apply.Disabled())

		// Toggling back to the initial value drops the pending change.
		test.Tap(check)
		assert.False(t, sm.HasPendingChanges())
		assert.True(t, apply.Disabled())

		test.Tap(check)
		test.Tap(apply)
		assert.Equal(t, []bool{true}, applied)
		assert.Equal(t, 1, refreshed)
		assert.True(t, apply.Disabled())
	})

	t.Run("Select setting", func(t *testing.T) {
		sm := NewSettingsManager(w)
		var applied []int
		panel := container.NewVBox()
		sm.CreateSelectSetting(&setting.SelectConfig{
			Name:         "Theme",
			Options:      []string{"System", "Light", "Dark"},
			InitialValue: 0,
			Label:        widget.NewLabel("Theme"),
			ApplyFunc:    func(i int) { applied = append(applied, i) },
		}, panel)

		sel := findSelect(t, panel)
		sel.SetSelectedIndex(2)
		test.Tap(sm.GetApplySettingsButton())
		assert.Equal(t, []int{2}, applied)
	})

	t.Run("Text entry validation", func(t *testing.T) {
		sm := NewSettingsManager(w)
		var applied []string
		panel := container.NewVBox()
		sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
			Name:  "Path",
			Label: widget.NewLabel("Path"),
			PostValidateCheck: func(s string) error {
				if s == "bad" {
					return assert.AnError
				}
				return nil
			},
			ApplyFunc: func(s string) { applied = append(applied, s) },
		}, panel)

		entry := findEntry(t, panel)
		entry.SetText("bad")
		assert.False(t, sm.HasPendingChanges())

		entry.SetText("good")
		assert.True(t, sm.HasPendingChanges())
		test.Tap(sm.GetApplySettingsButton())
		assert.Equal(t, []string{"good"}, applied)
	})
}

func findSelect(t *testing.T, panel *fyne.Container) *widget.Select {
	t.Helper()
	for _, row := range panel.Objects {
		if c, ok := row.(*fyne.Container); ok {
			for _, o := range c.Objects {
				if s, ok := o.(*widget.Select); ok {
					return s
				}
			}
		}
	}
	require.FailNow(t, "no select in panel")
	return nil
}

func findEntry(t *testing.T, panel *fyne.Container) *widget.Entry {
	t.Helper()
	for _, row := range panel.Objects {
		if c, ok := row.(*fyne.Container); ok {
			for _, o := range c.Objects {
				if e, ok := o.(*widget.Entry); ok {
					return e
				}
			}
		}
	}
	require.FailNow(t, "no entry in panel")
	return nil
}

func TestSplitLayout(t *testing.T) {
	left := widget.NewLabel("left")
	right := widget.NewLabel("right")
	row := NewSplitRowWithAlignment(left, right, SplitProportion.OneThird, SplitAlign.Opposed)
	row.Resize(fyne.NewSize(300, 40))

	assert.InDelta(t, 100, left.Size().Width, 0.01)
	assert.InDelta(t, 200, right.Size().Width, 0.01)
	assert.Equal(t, float32(0), left.Position().X)
	assert.InDelta(t, 100, right.Position().X, 0.01)
}
