package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/util"
	"github.com/dixieflatline76/Stencil/util/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// addVersionWatermark draws the app version in the bottom right corner of img.
func addVersionWatermark(img image.Image) image.Image {
	versionString := fmt.Sprintf("Version: %s", config.AppVersion)
	b := img.Bounds()

	watermark := imaging.New(b.Dx(), b.Dy(), color.Transparent)
	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  watermark,
		Src:  image.NewUniform(color.RGBA{100, 50, 0, 200}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Dx() - textWidth - 10),
			Y: fixed.I(b.Dy() - 10),
		},
	}
	d.DrawString(versionString)

	return imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
}

// ShowAbout shows the splash image, version and description.
func (sa *StencilApp) ShowAbout() {
	var items []fyne.CanvasObject
	if splash, err := sa.assetMgr.GetImage("splash.png"); err == nil {
		img := canvas.NewImageFromImage(addVersionWatermark(splash))
		img.FillMode = canvas.ImageFillOriginal
		items = append(items, img)
	}
	if text, err := sa.assetMgr.GetText("about.txt"); err == nil {
		label := widget.NewLabel(text)
		label.Wrapping = fyne.TextWrapWord
		items = append(items, label)
	}
	d := dialog.NewCustom("About "+config.AppName, "Close", container.NewVBox(items...), sa.window)
	d.Resize(fyne.NewSize(420, 480))
	d.Show()
}

// checkForUpdates looks for a newer release in the background. When quiet is
// set, only an available update is reported.
func (sa *StencilApp) checkForUpdates(quiet bool) {
	if !sa.updateCheck.TrySet() {
		return
	}
	go func() {
		defer sa.updateCheck.Set(false)

		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		info, err := util.CheckForUpdates(ctx, nil)
		fyne.Do(func() { sa.showUpdateResult(info, err, quiet) })
	}()
}

func (sa *StencilApp) showUpdateResult(info *util.UpdateInfo, err error, quiet bool) {
	switch {
	case err != nil:
		log.Printf("Update check failed: %v", err)
		if !quiet {
			dialog.ShowError(err, sa.window)
		}
	case info.Available:
		log.Printf("Update available: %s", info.LatestVersion)
		sa.addUpdateMenuItem(info)
		releaseURL, perr := url.Parse(info.ReleaseURL)
		content := []fyne.CanvasObject{
			widget.NewLabel(fmt.Sprintf("%s %s is available (you have %s).", config.AppName, info.LatestVersion, info.CurrentVersion)),
		}
		if perr == nil && info.ReleaseURL != "" {
			content = append(content, widget.NewHyperlink("Release notes", releaseURL))
		}
		dialog.ShowCustom("Update Available", "Close", container.NewVBox(content...), sa.window)
	case !quiet:
		dialog.ShowInformation("No Updates", fmt.Sprintf("%s %s is the latest version.", config.AppName, info.CurrentVersion), sa.window)
	}
}

// addUpdateMenuItem puts an "Update to vX" entry in the Help menu.
func (sa *StencilApp) addUpdateMenuItem(info *util.UpdateInfo) {
	if sa.helpMenu == nil {
		return
	}
	label := updateMenuItemPrefix + info.LatestVersion
	for _, item := range sa.helpMenu.Items {
		if item.Label == label {
			return
		}
	}
	item := fyne.NewMenuItem(label, func() {
		if u, err := url.Parse(info.ReleaseURL); err == nil {
			if err := sa.app.OpenURL(u); err != nil {
				log.Printf("Failed to open %s: %v", info.ReleaseURL, err)
			}
		}
	})
	sa.helpMenu.Items = append(sa.helpMenu.Items, fyne.NewMenuItemSeparator(), item)
	sa.refreshMenu()
}
