package game

import (
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from    State
		trigger Trigger
		want    State
		ok      bool
	}{
		{StateWaitingForTap, TriggerTap, StatePlaying, true},
		{StateWaitingForTap, TriggerWallContact, StateWaitingForTap, false},
		{StatePlaying, TriggerTap, StatePlaying, false},
		{StatePlaying, TriggerWallContact, StateGameOver, true},
		{StateGameOver, TriggerTap, StateGameOver, false},
		{StateGameOver, TriggerWallContact, StateGameOver, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.trigger.String(), func(t *testing.T) {
			got, ok := Next(tt.from, tt.trigger)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Next() = (%v, %v), expected (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMachineHooks(t *testing.T) {
	var calls []string
	m := NewMachine()
	m.Bind(StateWaitingForTap, Hooks{
		OnEnter: func(from State) { calls = append(calls, "enter-waiting:"+from.String()) },
		OnExit:  func(to State) { calls = append(calls, "exit-waiting:"+to.String()) },
	})
	m.Bind(StatePlaying, Hooks{
		OnEnter: func(from State) { calls = append(calls, "enter-playing:"+from.String()) },
	})

	m.Start()
	m.Start()
	if !m.Fire(TriggerTap) {
		t.Fatal("Fire(Tap) = false, expected true")
	}
	if m.Fire(TriggerTap) {
		t.Error("Fire(Tap) while playing = true, expected false")
	}

	want := []string{
		"enter-waiting:WaitingForTap",
		"exit-waiting:Playing",
		"enter-playing:WaitingForTap",
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, expected %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, expected %q", i, calls[i], want[i])
		}
	}
}

func TestMachineUpdate(t *testing.T) {
	ticks := 0
	m := NewMachine()
	m.Bind(StatePlaying, Hooks{OnUpdate: func(float64) { ticks++ }})

	m.Update(0.5)
	if m.Elapsed() != 0.5 {
		t.Errorf("Elapsed() = %v, expected 0.5", m.Elapsed())
	}

	m.Fire(TriggerTap)
	if m.Elapsed() != 0 {
		t.Errorf("Elapsed() after transition = %v, expected 0", m.Elapsed())
	}
	m.Update(0.25)
	m.Update(0.25)
	if ticks != 2 {
		t.Errorf("OnUpdate calls = %d, expected 2", ticks)
	}
	if m.State() != StatePlaying {
		t.Errorf("State() = %v, expected Playing", m.State())
	}
}
