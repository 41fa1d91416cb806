package internal

import (
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// BackButtonConfig describes a hardware back control that bypasses SDL.
// Some target devices route their dedicated back button through a raw evdev
// node rather than the game controller, so the navigation surface watches
// the device directly and treats presses as back gestures.
type BackButtonConfig struct {
	DevicePath string        // evdev node, e.g. /dev/input/event1
	ButtonCode uint16        // key code reported for the back control
	CoolDown   time.Duration // minimum spacing between delivered presses
}

// BackButtonWatcher reads an evdev device and delivers debounced back
// presses on a channel. The render loop drains the channel once per frame
// and turns each press into an out-of-band surface pop.
type BackButtonWatcher struct {
	presses chan struct{}
	stopped *atomic.Bool
	device  *evdev.InputDevice
}

// WatchBackButton opens the configured device and starts the reader
// goroutine.
func WatchBackButton(cfg BackButtonConfig) (*BackButtonWatcher, error) {
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	w := &BackButtonWatcher{
		presses: make(chan struct{}, 4),
		stopped: atomic.NewBool(false),
		device:  device,
	}
	go w.read(cfg)
	return w, nil
}

func (w *BackButtonWatcher) read(cfg BackButtonConfig) {
	coolDown := cfg.CoolDown
	var lastPress time.Time

	for !w.stopped.Load() {
		event, err := w.device.ReadOne()
		if err != nil {
			if !w.stopped.Load() {
				GetFrameworkLogger().Error("Back button device read failed", "path", cfg.DevicePath, "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != evdev.EvCode(cfg.ButtonCode) || event.Value != 1 {
			continue
		}
		if coolDown > 0 && time.Since(lastPress) < coolDown {
			continue
		}
		lastPress = time.Now()

		select {
		case w.presses <- struct{}{}:
		default:
			// The render loop is behind; dropping beats queuing stale pops.
		}
	}
}

// Presses returns the channel back presses are delivered on.
func (w *BackButtonWatcher) Presses() <-chan struct{} {
	return w.presses
}

// Close stops the watcher and releases the device.
func (w *BackButtonWatcher) Close() {
	if w.stopped.CompareAndSwap(false, true) {
		w.device.Close()
	}
}
