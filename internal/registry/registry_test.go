package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

type stubPilot struct {
	id     string
	resets int
}

func (p *stubPilot) ID() string { return p.id }
func (p *stubPilot) Title() string { return "Stub " + p.id }
func (p *stubPilot) Reset(int64) { p.resets++ }
func (p *stubPilot) ShouldFlap(flappy.Frame) bool { return false }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-a", func() Pilot { return &stubPilot{id: "test-a"} })

	if !Exists("test-a") {
		t.Fatal("Exists(test-a) = false after Register")
	}

	p, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if p.ID() != "test-a" {
		t.Errorf("ID() = %q, expected test-a", p.ID())
	}

	// Every Create returns a fresh instance
	q, _ := Create("test-a")
	p.Reset(1)
	if q.(*stubPilot).resets != 0 {
		t.Error("Create() must not share instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-pilot")
	if err == nil {
		t.Fatal("expected error for unknown pilot")
	}
	if !strings.Contains(err.Error(), `unknown pilot "no-such-pilot"`) {
		t.Errorf("error = %q, expected unknown pilot message", err)
	}
	if Exists("no-such-pilot") {
		t.Error("Exists() = true for unknown pilot")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test-c", func() Pilot { return &stubPilot{id: "test-c"} })
	Register("test-b", func() Pilot { return &stubPilot{id: "test-b"} })

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}

	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Pilot { return &stubPilot{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Register")
		}
	}()
	Register("test-dup", func() Pilot { return &stubPilot{id: "test-dup"} })
}
