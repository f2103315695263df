package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"

	"progressring/internal/platform"
	"progressring/internal/storage"
	"progressring/internal/ui/animation"
	"progressring/internal/ui/dashboard"
	"progressring/internal/ui/preferences"
	"progressring/internal/ui/ring"
	"progressring/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appName  = "ProgressRing"
	iconSize = 64
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.progressring.app")
	if icon, err := ringIcon(settings, settings.MaxValue); err == nil {
		fyneApp.SetIcon(icon)
	} else {
		log.Printf("render icon: %v", err)
	}

	ringWidget := ring.NewWidgetWithScheduler(settings.RingOptions(), settings.NewScheduler())
	dashboardWindow := dashboard.New(fyneApp, settings, ringWidget)
	guard.SetOnActivate(func() {
		fyne.Do(dashboardWindow.Show)
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		dashboardWindow.ApplySettings(settings)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		dashboardWindow.Show()
		fyneApp.Run()
		return
	}

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShow:        dashboardWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnStepForward: dashboardWindow.StepForward,
		OnStepBack:    dashboardWindow.StepBack,
		OnReset:       dashboardWindow.Reset,
		OnFill:        dashboardWindow.Fill,
		OnQuit:        fyneApp.Quit,
	})

	dashboardWindow.SetCloseIntercept(dashboardWindow.Hide)
	dashboardWindow.SetOnProgress(func(target float64) {
		trayManager.SetStatus(formatTarget(target, settings.MaxValue))
	})
	dashboardWindow.SetOnStateChange(func(state animation.State) {
		trayManager.SetAnimating(state == animation.StateAnimating)
		if state != animation.StateIdle {
			return
		}
		icon, err := ringIcon(settings, ringWidget.Progress())
		if err != nil {
			log.Printf("render icon: %v", err)
			return
		}
		desktopApp.SetSystemTrayIcon(icon)
	})

	trayManager.SetStatus(formatTarget(dashboardWindow.Target(), settings.MaxValue))
	if icon, err := ringIcon(settings, ringWidget.Progress()); err == nil {
		desktopApp.SetSystemTrayIcon(icon)
	}

	dashboardWindow.Show()
	fyneApp.Run()
}

// ringIcon renders a small ring at value into a PNG resource.
func ringIcon(settings preferences.Settings, value float64) (fyne.Resource, error) {
	options := settings.RingOptions()
	options.InitialProgress = value
	options.Logf = nil

	iconRing := ring.New(options, nil, nil)
	iconRing.OnSizeChanged(settings.DefaultSize, settings.DefaultSize)
	img, err := iconRing.Render(iconSize, iconSize, iconSize/settings.DefaultSize)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return fyne.NewStaticResource(fmt.Sprintf("ring-%.0f.png", value), buffer.Bytes()), nil
}

func formatTarget(target, maxValue float64) string {
	if maxValue <= 0 {
		return ring.InvalidLabel
	}
	return fmt.Sprintf("%.2f%%", target/maxValue*100)
}
