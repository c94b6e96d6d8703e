package game

// State is the phase of one session.
type State uint8

const (
	StateWaitingForTap State = iota // Initial; the message sprite asks for a tap
	StatePlaying                    // Ball in play, contacts are scored
	StateGameOver                   // Terminal for the session; a tap restarts the scene
	numStates
)

func (s State) String() string {
	switch s {
	case StateWaitingForTap:
		return "WaitingForTap"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Trigger is an event that may move the machine to another state.
type Trigger uint8

const (
	TriggerTap Trigger = iota
	TriggerWallContact
)

func (t Trigger) String() string {
	switch t {
	case TriggerTap:
		return "Tap"
	case TriggerWallContact:
		return "WallContact"
	default:
		return "Unknown"
	}
}

// Next returns the state reached from s on t.
// ok is false when t causes no transition from s.
func Next(s State, t Trigger) (next State, ok bool) {
	switch {
	case s == StateWaitingForTap && t == TriggerTap:
		return StatePlaying, true
	case s == StatePlaying && t == TriggerWallContact:
		return StateGameOver, true
	}
	return s, false
}

// Hooks are the actions attached to one state. Any of them may be nil.
type Hooks struct {
	OnEnter  func(from State)
	OnExit   func(to State)
	OnUpdate func(dt float64)
}

// Machine runs Next and the per-state hooks.
type Machine struct {
	state   State
	elapsed float64 // Seconds spent in the current state
	started bool
	hooks   [numStates]Hooks
}

// NewMachine returns a machine in StateWaitingForTap with no hooks bound.
func NewMachine() *Machine {
	return &Machine{state: StateWaitingForTap}
}

// Bind sets the hooks of state s, replacing earlier ones.
func (m *Machine) Bind(s State, h Hooks) {
	if s < numStates {
		m.hooks[s] = h
	}
}

// Start runs the initial state's enter hook. Only the first call has an effect.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	if h := m.hooks[m.state].OnEnter; h != nil {
		h(m.state)
	}
}

// Fire applies t. It returns false, running no hooks, when t is not a
// transition of the current state.
func (m *Machine) Fire(t Trigger) bool {
	next, ok := Next(m.state, t)
	if !ok {
		return false
	}

	from := m.state
	if h := m.hooks[from].OnExit; h != nil {
		h(next)
	}
	m.state = next
	m.elapsed = 0
	if h := m.hooks[next].OnEnter; h != nil {
		h(from)
	}
	return true
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Elapsed returns the seconds spent in the current state.
func (m *Machine) Elapsed() float64 {
	return m.elapsed
}

// Update advances the current state's clock by dt seconds.
func (m *Machine) Update(dt float64) {
	if dt > 0 {
		m.elapsed += dt
	}
	if h := m.hooks[m.state].OnUpdate; h != nil {
		h(dt)
	}
}
