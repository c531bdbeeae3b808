package input

// Source is the raw key and cursor state of a window. *platform.Window
// satisfies it.
type Source interface {
	IsKeyPressed(key int) bool
	GetCursorPos() (float64, float64)
}

// FocusSource is a Source that also reports regaining input focus. The
// flag is cleared by the call.
type FocusSource interface {
	Source
	Refocused() bool
}

// Snapshot is the input state sampled once per frame.
type Snapshot struct {
	CursorX, CursorY float64
	// Refocused is set on the first snapshot after the window regains
	// focus; the cursor may have moved arbitrarily while it was away.
	Refocused bool

	keys     [keyCount]bool
	keysPrev [keyCount]bool
}

// Down reports whether key is held.
func (s *Snapshot) Down(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return s.keys[key]
}

// Pressed reports whether key went down since the previous snapshot.
func (s *Snapshot) Pressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return s.keys[key] && !s.keysPrev[key]
}

// Set marks key as held or released.
func (s *Snapshot) Set(key Key, down bool) {
	if key >= 0 && key < keyCount {
		s.keys[key] = down
	}
}

// Manager polls a Source for the bound keys.
type Manager struct {
	src  Source
	prev [keyCount]bool
}

func NewManager(src Source) *Manager {
	return &Manager{src: src}
}

// Poll samples the bound keys and the cursor position.
func (m *Manager) Poll() Snapshot {
	var s Snapshot
	s.CursorX, s.CursorY = m.src.GetCursorPos()
	if fs, ok := m.src.(FocusSource); ok {
		s.Refocused = fs.Refocused()
	}
	s.keysPrev = m.prev
	for _, k := range Bindings {
		s.keys[k] = m.src.IsKeyPressed(int(k))
	}
	m.prev = s.keys
	return s
}
