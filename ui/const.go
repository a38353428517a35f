package ui

import "time"

// headerText is shown above the editor.
const headerText = "Stencil Editor"

// updateCheckTimeout bounds the release lookup.
const updateCheckTimeout = 15 * time.Second

// updateMenuItemPrefix is the copy for the menu item shown when a newer release exists
const updateMenuItemPrefix = "Update to "

// imageExtensions are offered by the open dialog.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
