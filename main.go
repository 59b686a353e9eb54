package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/radial-progress/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.radial-progress"
	AppName = "Radial Progress"

	// DebugEnv enables debug logging of the progress widgets when set
	DebugEnv = "RADIAL_PROGRESS_DEBUG"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	level := slog.LevelInfo
	if os.Getenv(DebugEnv) != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	ui.NewRootUI(myWindow, myApp, ui.WithLogger(logger))

	myWindow.ShowAndRun()
}
