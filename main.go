// Package main provides the entry point for the POD Studio application.
package main

import (
	"log"
	"os"
	"time"

	"pod-studio/internal/app"
	"pod-studio/internal/version"
	"pod-studio/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appTitle = "POD Studio"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.podstudio.app")
	fyneApp.Settings().SetTheme(&app.StudioTheme{})

	appState := app.NewState()
	defer appState.Close()

	win := mainwindow.New(fyneApp, appState)

	if len(os.Args) > 1 {
		projectPath := os.Args[1]
		if err := appState.LoadProject(projectPath); err != nil {
			log.Printf("Failed to load project %s: %v", projectPath, err)
		}
	} else {
		win.RestoreLastProject()
	}

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary
// is recompiled during development.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if restart {
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win.Window)
	})

	reloader.Start()
}
