// Package ui is the Fyne front end: the main window with the editor view,
// toolbar and menus, the preferences window and the About box.
package ui

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/asset"
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/editor"
	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/dixieflatline76/Stencil/util"
	"github.com/dixieflatline76/Stencil/util/log"
)

// StencilApp is the desktop application.
type StencilApp struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.AppConfig
	assetMgr *asset.Manager

	editor  *editor.Editor
	view    *EditorWidget
	toolbar *Toolbar

	mainMenu  *fyne.MainMenu
	editItems []*fyne.MenuItem // disabled without an image
	helpMenu  *fyne.Menu

	prefsWindow fyne.Window
	updateCheck *util.SafeFlag
	cancel      context.CancelFunc
}

// NewStencilApp creates the application with its own fyne app.
func NewStencilApp() *StencilApp {
	return newStencilApp(app.NewWithID(config.AppID))
}

// newStencilApp builds the main window on top of a.
func newStencilApp(a fyne.App) *StencilApp {
	sa := &StencilApp{
		app:         a,
		cfg:         config.NewAppConfig(a.Preferences()),
		assetMgr:    asset.NewManager(),
		updateCheck: util.NewSafeBool(),
	}
	a.Settings().SetTheme(themeFor(sa.cfg.GetTheme()))
	if icon, err := sa.assetMgr.GetIcon("app.svg"); err == nil {
		a.SetIcon(icon)
	}

	sa.window = a.NewWindow(config.AppName)
	sa.editor = editor.New(sa.cfg.GetEditorConfig(),
		editor.WithPost(fyne.Do),
		editor.WithFinder(sa.buildFinder()),
		editor.WithErrorHandler(func(err error) { dialog.ShowError(err, sa.window) }),
	)

	sa.view = NewEditorWidget(sa.editor.Controller, sa.editor.Scene)
	sa.toolbar = NewToolbar(sa.editor.Intents, sa.ShowOpenDialog)
	sa.editor.Store.Subscribe(func(c editor.Change) {
		sa.toolbar.Refresh(c.Next)
		sa.refreshEditItems(c.Next)
	})

	header := widget.NewLabelWithStyle(headerText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sa.window.SetContent(container.NewBorder(
		container.NewVBox(header, container.NewCenter(sa.toolbar.Container())),
		nil, nil, nil,
		container.NewCenter(sa.view),
	))
	sa.window.SetMainMenu(sa.createMainMenu())
	sa.window.SetMaster()
	sa.window.SetOnClosed(sa.shutdown)
	return sa
}

// Start runs the application until the main window closes.
func (sa *StencilApp) Start() {
	var ctx context.Context
	ctx, sa.cancel = context.WithCancel(context.Background())
	go sa.editor.Run(ctx, fyne.Do)

	if sa.cfg.GetUpdateCheckEnabled() {
		sa.checkForUpdates(true)
	}
	sa.window.ShowAndRun()
}

func (sa *StencilApp) shutdown() {
	if sa.cancel != nil {
		sa.cancel()
	}
	sa.editor.Close()
	log.Println("Shutting down")
}

func (sa *StencilApp) createMainMenu() *fyne.MainMenu {
	zoomIn := fyne.NewMenuItem("Zoom In", zoomAction(sa.editor.Intents.ZoomIn))
	zoomOut := fyne.NewMenuItem("Zoom Out", zoomAction(sa.editor.Intents.ZoomOut))
	reset := fyne.NewMenuItem("Reset", sa.editor.Intents.Reset)
	clearImage := fyne.NewMenuItem("Clear", sa.editor.Intents.Clear)
	sa.editItems = []*fyne.MenuItem{zoomIn, zoomOut, reset, clearImage}
	for _, item := range sa.editItems {
		item.Disabled = true
	}
	open := fyne.NewMenuItem("Open Image...", sa.ShowOpenDialog)

	sa.bindShortcut(open, fyne.KeyO)

	file := fyne.NewMenu("File",
		open,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", sa.ShowPreferences),
	)
	edit := fyne.NewMenu("Edit", zoomIn, zoomOut, fyne.NewMenuItemSeparator(), reset, clearImage)
	sa.helpMenu = fyne.NewMenu("Help",
		fyne.NewMenuItem("Check for Updates", func() { sa.checkForUpdates(false) }),
		fyne.NewMenuItem("About "+config.AppName, sa.ShowAbout),
	)
	sa.mainMenu = fyne.NewMainMenu(file, edit, sa.helpMenu)
	return sa.mainMenu
}

// bindShortcut attaches a primary-modifier shortcut to item and the window.
func (sa *StencilApp) bindShortcut(item *fyne.MenuItem, key fyne.KeyName) {
	sc := &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
	item.Shortcut = sc
	sa.window.Canvas().AddShortcut(sc, func(fyne.Shortcut) {
		if !item.Disabled {
			item.Action()
		}
	})
}

func (sa *StencilApp) refreshEditItems(st editor.State) {
	changed := false
	for _, item := range sa.editItems {
		if item.Disabled == st.Ready() {
			item.Disabled = !st.Ready()
			changed = true
		}
	}
	if changed {
		sa.refreshMenu()
	}
}

func (sa *StencilApp) refreshMenu() {
	if sa.mainMenu != nil {
		sa.mainMenu.Refresh()
	}
}

// ShowOpenDialog lets the user pick an image. Cancelling is a no-op.
func (sa *StencilApp) ShowOpenDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Open dialog failed: %v", err)
			dialog.ShowError(err, sa.window)
			return
		}
		sa.openReader(reader)
	}, sa.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if dir := sa.cfg.GetLastOpenDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// openReader hands a picked file to the editor and remembers its directory.
func (sa *StencilApp) openReader(reader fyne.URIReadCloser) {
	if reader == nil {
		return
	}
	if path := reader.URI().Path(); path != "" {
		sa.cfg.SetLastOpenDir(filepath.Dir(path))
	}
	sa.editor.Intents.Open(reader.URI().Name(), reader)
}

// buildFinder returns the smart placement finder the preferences ask for,
// or nil when smart placement is off.
func (sa *StencilApp) buildFinder() focus.Finder {
	if !sa.cfg.GetSmartPlacement() {
		return nil
	}
	ec := sa.cfg.GetEditorConfig()
	saliency := focus.NewSaliencyFinder(int(ec.StencilWidth), int(ec.StencilHeight))

	path := sa.cfg.GetFaceModelPath()
	if path == "" {
		return focus.Combine(nil, saliency)
	}
	faces, err := focus.LoadFaceFinder(path)
	if err != nil {
		log.Printf("Face detection disabled: %v", err)
		return focus.Combine(nil, saliency)
	}
	return focus.Combine(faces, saliency)
}

// applyPlacement rebuilds the finder after the placement preferences change.
func (sa *StencilApp) applyPlacement() {
	sa.editor.Binding.SetFinder(sa.buildFinder())
}
