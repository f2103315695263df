package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnStepForward func()
	OnStepBack    func()
	OnReset       func()
	OnFill        func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	callbacks   Callbacks
	animating   bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshStatus()

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetAnimating marks whether a transition is running.
func (manager *Manager) SetAnimating(animating bool) {
	manager.animating = animating
	manager.refreshStatus()
}

// Label returns the current status line.
func (manager *Manager) Label() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.animating {
		status = fmt.Sprintf("%s (animating)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Progress: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Progress Ring",
		manager.statusItem,
		fyne.NewMenuItem("Show", manager.callback(manager.callbacks.OnShow)),
		fyne.NewMenuItem("Preferences", manager.callback(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Step forward", manager.callback(manager.callbacks.OnStepForward)),
		fyne.NewMenuItem("Step back", manager.callback(manager.callbacks.OnStepBack)),
		fyne.NewMenuItem("Reset", manager.callback(manager.callbacks.OnReset)),
		fyne.NewMenuItem("Fill", manager.callback(manager.callbacks.OnFill)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", manager.callback(manager.callbacks.OnQuit)),
	))
}

func (manager *Manager) callback(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
