package input

import "testing"

func TestActionSet_HeldWithSet(t *testing.T) {
	var s ActionSet
	if s.Held(Fire) {
		t.Fatal("empty set must not hold anything")
	}
	s = s.With(Fire, MoveLeft)
	if !s.Held(Fire) || !s.Held(MoveLeft) || s.Held(MoveRight) || s.Held(TogglePause) {
		t.Errorf("unexpected set %s", s)
	}
	s.Set(Fire, false)
	s.Set(TogglePause, true)
	if s.Held(Fire) || !s.Held(TogglePause) {
		t.Errorf("unexpected set after Set: %s", s)
	}
	if got := s.String(); got != "[moveLeft togglePause]" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("jump"); err == nil {
		t.Error("expected error for unknown action")
	}
	if len(Actions()) != 4 {
		t.Errorf("expected 4 actions, got %d", len(Actions()))
	}
}

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector
	pause := ActionSet(0).With(TogglePause)

	if !d.Pressed(pause).Held(TogglePause) {
		t.Error("first press must be reported")
	}
	if d.Pressed(pause).Held(TogglePause) {
		t.Error("held key must not be reported again")
	}
	d.Pressed(0)
	if !d.Pressed(pause).Held(TogglePause) {
		t.Error("press after release must be reported")
	}
	d.Reset()
	if !d.Pressed(pause).Held(TogglePause) {
		t.Error("press after Reset must be reported")
	}
}

func TestInField(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 240, 320, true},
		{"top left corner", 0, 0, true},
		{"last field row", 479, 639, true},
		{"fire button in control band", 240, 680, false},
		{"left button in control band", 50, 660, false},
		{"band top edge", 100, 640, false},
		{"right of field", 480, 100, false},
		{"negative", -1, 10, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InField(tc.x, tc.y, 480, 640); got != tc.want {
				t.Errorf("InField(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
