package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spacerocks/spacerocks/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	meta := RunMeta{
		GameID:     "rocks",
		Seed:       42,
		TickRate:   60,
		Difficulty: "hard",
		ConfigPath: "./my-rocks.yaml",
		Frames:     1800,
		FinalScore: 540,
	}
	inputs := []InputRecord{
		{Tick: 0, Actions: bitThrust},
		{Tick: 30, Actions: bitThrust | bitFire},
		{Tick: 90, Actions: bitTurnLeft},
	}

	id, err := store.SaveRun(meta, inputs)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("SaveRun() returned id %d, expected positive", id)
	}

	gotMeta, gotInputs, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if gotMeta.GameID != meta.GameID || gotMeta.Seed != meta.Seed ||
		gotMeta.TickRate != meta.TickRate || gotMeta.Difficulty != meta.Difficulty ||
		gotMeta.ConfigPath != meta.ConfigPath ||
		gotMeta.Frames != meta.Frames || gotMeta.FinalScore != meta.FinalScore {
		t.Errorf("LoadRun() meta = %+v, expected %+v", gotMeta, meta)
	}

	if len(gotInputs) != len(inputs) {
		t.Fatalf("LoadRun() returned %d inputs, expected %d", len(gotInputs), len(inputs))
	}
	for i := range inputs {
		if gotInputs[i] != inputs[i] {
			t.Errorf("input %d = %+v, expected %+v", i, gotInputs[i], inputs[i])
		}
	}
}

func TestLoadRunUnknownID(t *testing.T) {
	store := openTestStore(t)

	if _, _, err := store.LoadRun(9999); err == nil {
		t.Error("LoadRun() of an unknown id should fail")
	}
}

func TestListRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		meta := RunMeta{GameID: "rocks", Seed: int64(i), TickRate: 60, Frames: 100, FinalScore: i * 20}
		if _, err := store.SaveRun(meta, []InputRecord{{Tick: 0, Actions: bitFire}}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("ListRuns() returned %d runs, expected 5", len(runs))
	}

	// Newest first
	for i := 1; i < len(runs); i++ {
		if runs[i-1].ID < runs[i].ID {
			t.Errorf("runs not sorted newest first: %d before %d", runs[i-1].ID, runs[i].ID)
		}
	}

	limited, err := store.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, expected 2", len(limited))
	}
}

func TestEncodeDecodeActions(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionTurnLeft)
	in.Set(core.ActionThrust)
	in.Set(core.ActionFire)

	bits := EncodeActions(in)
	out := DecodeActions(bits)

	for _, a := range []core.Action{core.ActionTurnLeft, core.ActionThrust, core.ActionFire} {
		if !out.Has(a) {
			t.Errorf("round trip lost action %v", a)
		}
	}
	if out.Has(core.ActionTurnRight) || out.Has(core.ActionRestart) {
		t.Error("round trip invented actions")
	}
}

func TestEncodeActionsIgnoresPlatformKeys(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionQuit)
	in.Set(core.ActionConfirm)

	if bits := EncodeActions(in); bits != 0 {
		t.Errorf("platform actions should not be recorded, got bits %#x", bits)
	}
}

func TestEncodeActionsEmpty(t *testing.T) {
	if bits := EncodeActions(core.NewInputFrame()); bits != 0 {
		t.Errorf("empty frame should encode to 0, got %#x", bits)
	}
}
