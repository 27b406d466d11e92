package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-lines/internal/core"
)

type stubGame struct {
	id   string
	desc string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Description() string                  { return g.desc }

type plainGame struct{ stubGame }

// Description is shadowed so plainGame does not satisfy Describer.
func (plainGame) Description(int) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", desc: "a stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create returned %q", g.ID())
	}

	info, ok := Info("zz_stub")
	if !ok {
		t.Fatal("Info should find the game")
	}
	if info.Title != "Stub zz_stub" || info.Description != "a stub" {
		t.Errorf("Info = %+v", info)
	}
}

func TestRegisterWithoutDescription(t *testing.T) {
	Register("zz_plain", func() Game { return &plainGame{stubGame{id: "zz_plain"}} })

	info, _ := Info("zz_plain")
	if info.Description != "" {
		t.Errorf("Description should be empty, got %q", info.Description)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists should be false for unknown games")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
