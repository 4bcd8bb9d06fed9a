// Package input maps physical keys and mouse events to the logical
// actions the viewer understands. The camera and scene never see GLFW
// key codes, only actions and accumulated cursor/scroll deltas.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleProjection
	ActionExit
	ActionCount // Sentinel value for array sizing
)

// Manager manages keyboard and mouse input state and maps physical
// keys to logical actions. Cursor and scroll deltas accumulate between
// frames and are drained once per tick.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Accumulated mouse state
	firstMouse   bool
	lastX, lastY float64
	cursorDX     float64
	cursorDY     float64
	scrollDY     float64
}

// NewManager creates a Manager with the default key bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		firstMouse:   true,
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyE, ActionMoveUp)
	m.BindKey(glfw.KeyQ, ActionMoveDown)
	m.BindKey(glfw.KeyP, ActionToggleProjection)
	m.BindKey(glfw.KeyEscape, ActionExit)

	return m
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// Called from the GLFW key callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, exists := m.keyToActions[key]
	m.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	m.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !m.currentState[act] {
				m.justPressed[act] = true
			}
			if !isPressed && m.currentState[act] {
				m.justReleased[act] = true
			}
			m.currentState[act] = isPressed
		}
	}
	m.mu.Unlock()
}

// HandleCursorPos accumulates cursor movement as a delta from the last
// position. The first event only seeds the position so the camera does
// not jump when the cursor enters the window.
func (m *Manager) HandleCursorPos(xpos, ypos float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.firstMouse {
		m.lastX = xpos
		m.lastY = ypos
		m.firstMouse = false
		return
	}

	m.cursorDX += xpos - m.lastX
	// y grows downward in screen space; invert so positive is "look up"
	m.cursorDY += m.lastY - ypos
	m.lastX = xpos
	m.lastY = ypos
}

// HandleScroll accumulates scroll wheel movement.
func (m *Manager) HandleScroll(yoffset float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scrollDY += yoffset
}

// Install wires this manager into the window's key, cursor, and scroll
// callbacks. Call once during initialization.
func (m *Manager) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		m.HandleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoffset, yoffset float64) {
		m.HandleScroll(yoffset)
	})
}

// DrainCursorDelta returns the accumulated cursor delta since the last
// drain and resets it.
func (m *Manager) DrainCursorDelta() (dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dx, dy = m.cursorDX, m.cursorDY
	m.cursorDX, m.cursorDY = 0, 0
	return dx, dy
}

// DrainScrollDelta returns the accumulated scroll delta since the last
// drain and resets it.
func (m *Manager) DrainScrollDelta() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	dy := m.scrollDY
	m.scrollDY = 0
	return dy
}

// PostUpdate must be called at the end of each frame to update edge
// detection states, after all input checks are done.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
