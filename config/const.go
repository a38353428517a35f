package config

import "strings"

// AppVersion is the version of the application.
var AppVersion = "0.1.0" // Overridden with -ldflags "-X" during release builds

// AppName is the name of the application.
const AppName = "Stencil"

// AppID is the unique fyne application ID, also used as the preferences namespace.
const AppID = "com.dixieflatline76." + AppName

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
