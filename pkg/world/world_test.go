package world

import (
	"errors"
	"testing"

	"github.com/jwebster45206/tale-engine/pkg/attributes"
	"github.com/jwebster45206/tale-engine/pkg/event"
)

func newWorld(t *testing.T) *World {
	t.Helper()
	attrs, err := attributes.New("Health", map[string]int{"Health": 100})
	if err != nil {
		t.Fatalf("attributes.New() error = %v", err)
	}
	w, err := New(attrs)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func TestNew_RequiresAttributes(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoAttributes) {
		t.Errorf("New(nil) error = %v, want %v", err, ErrNoAttributes)
	}
}

func TestAddPlace_DefaultDescription(t *testing.T) {
	w := newWorld(t)
	p := w.AddPlace("Lounge", "")
	if p.Description != "You are in Lounge." {
		t.Errorf("Description = %q", p.Description)
	}
	if w.Place(p.ID()) != p {
		t.Error("Place(ID()) did not return the place")
	}
	if w.Place(PlaceID(5)) != nil || w.Place(PlaceID(-1)) != nil {
		t.Error("Place() with out-of-range ID should be nil")
	}
}

func TestConnect(t *testing.T) {
	w := newWorld(t)
	bridge := w.AddPlace("Bridge", "")
	lift := w.AddPlace("Lift", "")
	ready := w.AddPlace("Ready Room", "")

	err := w.Connect(bridge, true,
		Transition{To: ready.ID(), Direction: "east"},
		Transition{To: lift.ID()},
	)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if got := len(bridge.Transitions()); got != 2 {
		t.Fatalf("bridge has %d transitions, want 2", got)
	}
	back := ready.Transitions()
	if len(back) != 1 || back[0].To != bridge.ID() || back[0].Direction != "west" {
		t.Errorf("ready room reverse = %+v, want west to bridge", back)
	}
	back = lift.Transitions()
	if len(back) != 1 || back[0].To != bridge.ID() || back[0].Direction != "" {
		t.Errorf("lift reverse = %+v, want unlabelled to bridge", back)
	}
}

func TestConnect_DanglingTransition(t *testing.T) {
	w := newWorld(t)
	home := w.AddPlace("Home", "")
	err := w.Connect(home, false, Transition{To: PlaceID(42)})
	if !errors.Is(err, ErrUnknownPlace) {
		t.Errorf("Connect() error = %v, want %v", err, ErrUnknownPlace)
	}
	if len(home.Transitions()) != 0 {
		t.Error("dangling transition was added")
	}

	other := newWorld(t).AddPlace("Elsewhere", "")
	if err := w.Connect(other, false); !errors.Is(err, ErrUnknownPlace) {
		t.Errorf("Connect() from foreign place error = %v, want %v", err, ErrUnknownPlace)
	}
}

func TestTransition_Accessible(t *testing.T) {
	w := newWorld(t)
	home := w.AddPlace("Home", "")
	dorm := w.AddPlace("Dorm", "")
	key := NewItem("key", "A brass key.")
	if err := w.Start(home.ID()); err != nil {
		t.Fatal(err)
	}

	open := true
	tests := []struct {
		name       string
		transition Transition
		carryKey   bool
		want       bool
	}{
		{"ungated", Transition{To: dorm.ID()}, false, true},
		{"key missing", Transition{To: dorm.ID(), Key: key}, false, false},
		{"key carried", Transition{To: dorm.ID(), Key: key}, true, true},
		{"condition false", Transition{To: dorm.ID(), Condition: func(*World) bool { return false }}, true, false},
		{"condition true and key", Transition{To: dorm.ID(), Key: key, Condition: func(*World) bool { return open }}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.inventory = nil
			if tt.carryKey {
				w.Give(key)
			}
			if got := tt.transition.Accessible(w); got != tt.want {
				t.Errorf("Accessible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransition_ConditionEvaluatedEachTime(t *testing.T) {
	w := newWorld(t)
	home := w.AddPlace("Home", "")
	calls := 0
	tr := Transition{To: home.ID(), Condition: func(*World) bool {
		calls++
		return calls > 1
	}}
	if tr.Accessible(w) {
		t.Error("first Accessible() = true")
	}
	if !tr.Accessible(w) {
		t.Error("second Accessible() = false")
	}
}

func TestPickupAndPutDown_KeepItemInOneLocation(t *testing.T) {
	w := newWorld(t)
	key := NewItem("key", "")
	home := w.AddPlace("Home", "", key)
	hall := w.AddPlace("Hall", "")
	if err := w.Start(home.ID()); err != nil {
		t.Fatal(err)
	}

	if !w.Pickup(key) {
		t.Fatal("Pickup() = false")
	}
	if len(home.Items) != 0 || !w.Holds(key) {
		t.Fatalf("after pickup: home=%v holds=%v", ItemNames(home.Items), w.Holds(key))
	}
	if w.Pickup(key) {
		t.Error("second Pickup() = true; item would be duplicated")
	}

	if err := w.MoveTo(hall.ID()); err != nil {
		t.Fatal(err)
	}
	if !w.PutDown(key) {
		t.Fatal("PutDown() = false")
	}
	if w.Holds(key) || len(hall.Items) != 1 || len(home.Items) != 0 {
		t.Errorf("after putdown: hall=%v home=%v inventory=%v",
			ItemNames(hall.Items), ItemNames(home.Items), ItemNames(w.Inventory()))
	}
	if w.PutDown(key) {
		t.Error("second PutDown() = true")
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestStateView(t *testing.T) {
	w := newWorld(t)
	home := w.AddPlace("Home", "")
	school := w.AddPlace("School", "")
	w.AddPlace("Moon", "")
	if err := w.Start(home.ID()); err != nil {
		t.Fatal(err)
	}
	if err := w.MoveTo(school.ID()); err != nil {
		t.Fatal(err)
	}
	w.Give(NewItem("Spacesuit", ""))
	w.IncrementCounter("visits")

	if !w.HasVisited("home") || !w.HasVisited("School") || w.HasVisited("Moon") || w.HasVisited("Mars") {
		t.Error("HasVisited() reported wrong places")
	}
	if !w.Carrying("spacesuit") || w.Carrying("space") {
		t.Error("Carrying() should match whole names ignoring case")
	}
	if w.Counter("visits") != 1 || w.Counter("other") != 0 {
		t.Errorf("Counter() = %d, %d", w.Counter("visits"), w.Counter("other"))
	}
	if v, ok := w.Attribute("Health"); !ok || v != 100 {
		t.Errorf("Attribute(Health) = %d, %v", v, ok)
	}
}

func TestValidate(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		w := newWorld(t)
		w.AddPlace("Home", "")
		if err := w.Validate(); !errors.Is(err, ErrNotStarted) {
			t.Errorf("Validate() error = %v, want %v", err, ErrNotStarted)
		}
	})

	t.Run("item in two places", func(t *testing.T) {
		w := newWorld(t)
		key := NewItem("key", "")
		home := w.AddPlace("Home", "", key)
		w.AddPlace("Hall", "", key)
		_ = w.Start(home.ID())
		if err := w.Validate(); !errors.Is(err, ErrDuplicateItem) {
			t.Errorf("Validate() error = %v, want %v", err, ErrDuplicateItem)
		}
	})

	t.Run("item in place and inventory", func(t *testing.T) {
		w := newWorld(t)
		key := NewItem("key", "")
		home := w.AddPlace("Home", "", key)
		w.Give(key)
		_ = w.Start(home.ID())
		if err := w.Validate(); !errors.Is(err, ErrDuplicateItem) {
			t.Errorf("Validate() error = %v, want %v", err, ErrDuplicateItem)
		}
	})

	t.Run("bad event", func(t *testing.T) {
		w := newWorld(t)
		home := w.AddPlace("Home", "")
		home.AddEvents(event.New(3, "impossible", event.Scalar(0)))
		_ = w.Start(home.ID())
		if err := w.Validate(); err == nil {
			t.Error("Validate() error = nil for probability 3")
		}
	})
}

type namedCommand struct{ desc string }

func (c namedCommand) Description() string { return c.desc }
func (c namedCommand) Execute(*World) CommandResult { return CommandResult{} }

func TestPlace_SlotsSplitEventsAndCommands(t *testing.T) {
	w := newWorld(t)
	lounge := w.AddPlace("Lounge", "")
	relax := event.New(1, "relax", event.Scalar(10))
	chat := event.New(0.5, "chat", event.Scalar(1))
	lounge.AddEvents(relax)
	lounge.AddCommands(namedCommand{"Visit with some friends"}, namedCommand{""})
	lounge.AddEvents(chat)

	if got := len(lounge.Slots()); got != 4 {
		t.Fatalf("Slots() = %d, want 4", got)
	}
	events := lounge.Events()
	if len(events) != 2 || events[0] != relax || events[1] != chat {
		t.Errorf("Events() = %v", events)
	}
	cmds := lounge.SelectableCommands()
	if len(cmds) != 1 || cmds[0].Description() != "Visit with some friends" {
		t.Errorf("SelectableCommands() = %v", cmds)
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Private dorm room key", "KEY", true},
		{"Spacesuit", "suit", true},
		{"Straße", "STRASSE", true},
		{"Lounge", "bridge", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}
