package conductor

// SettlingWindow counts down the ticks after a resync during which the sync time is broadcast. A window of zero ticks
// stays open until it is cleared or armed again.
type SettlingWindow struct {
	ticks     int
	remaining int
	open      bool
}

// NewSettlingWindow creates a closed window that stays open for ticks ticks once armed.
func NewSettlingWindow(ticks int) *SettlingWindow {
	return &SettlingWindow{ticks: ticks}
}

// Arm opens the window, restarting the countdown.
func (w *SettlingWindow) Arm() {
	w.open = true
	w.remaining = w.ticks
}

// Clear closes the window.
func (w *SettlingWindow) Clear() {
	w.open = false
	w.remaining = 0
}

// Open reports whether the window is open.
func (w *SettlingWindow) Open() bool {
	return w.open
}

// Consume uses up one tick of the window and reports whether the window was open for it.
func (w *SettlingWindow) Consume() bool {
	if !w.open {
		return false
	}
	if w.ticks > 0 {
		w.remaining--
		if w.remaining <= 0 {
			w.open = false
		}
	}
	return true
}
