package storage

import (
	"testing"

	"github.com/rgracey/simlab/internal/record"
)

func sampleResult() *record.Result {
	return &record.Result{
		Screen: "coulomb",
		Dt:     0.01,
		Names:  []string{"force_n", "separation_m"},
		Times:  []float64{0, 0.01, 0.02},
		Series: map[string][]float64{
			"force_n":      {1.5, 1.5, 2.5},
			"separation_m": {4, 4, 3},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save(sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Screen != "coulomb" {
		t.Errorf("expected screen coulomb, got %s", meta.Screen)
	}
	if len(meta.Probes) != 2 {
		t.Errorf("expected 2 probes, got %d", len(meta.Probes))
	}
	if meta.Final["separation_m"] != 3 {
		t.Errorf("expected final separation 3, got %f", meta.Final["separation_m"])
	}

	times, series, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(times) != 3 {
		t.Errorf("expected 3 rows, got %d", len(times))
	}
	if series["force_n"][2] != 2.5 {
		t.Errorf("expected force 2.5 in last row, got %f", series["force_n"][2])
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save(sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	store := New("/nonexistent/simlab-test")

	runs, err := store.List()
	if err != nil {
		t.Fatalf("expected empty list for missing dir, got error %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, _, err := store.LoadSeries("nope"); err == nil {
		t.Error("expected error for unknown run series")
	}
}
