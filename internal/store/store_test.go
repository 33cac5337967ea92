package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"weightlog/internal/domain"
	"weightlog/internal/store"
)

func TestDataset_SaveLoad_DerivesVariance(t *testing.T) {
	home := t.TempDir()
	var ds domain.DatasetStore = store.NewDatasetFileStore(home)

	in := domain.Dataset{
		StartDate:    "2025-01-01",
		StartWeight:  "82",
		TargetWeight: "75",
		Entries: []domain.Entry{
			{Date: "2025-01-01", Weight: "82"},
			{Date: "2025-01-02", Weight: "81.5", Notes: "walk"},
		},
	}
	if err := ds.SaveDataset(in); err != nil {
		t.Fatalf("save dataset: %v", err)
	}

	got, err := ds.LoadDataset()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if got.StartWeight != "82" || got.TargetWeight != "75" || len(got.Entries) != 2 {
		t.Fatalf("mismatch after load: %+v", got)
	}
	if v := got.Entries[1].Variance; v == nil || *v != -0.5 {
		t.Fatalf("variance not derived on load: %v", v)
	}
	if got.Entries[1].Notes != "walk" {
		t.Fatalf("notes lost: %+v", got.Entries[1])
	}
}

func TestDataset_Missing_IsEmpty(t *testing.T) {
	got, err := store.NewDatasetFileStore(t.TempDir()).LoadDataset()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if got.Entries == nil || len(got.Entries) != 0 {
		t.Fatalf("expected empty entries, got %#v", got.Entries)
	}
}

func TestDataset_Corrupt(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "dataset.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := store.NewDatasetFileStore(home).LoadDataset()
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("expected empty dataset on corrupt file, got %+v", got)
	}

	if _, err := os.Stat(filepath.Join(home, "dataset.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("corrupt file still in place: %v", err)
	}
	bad, err := filepath.Glob(filepath.Join(home, "dataset.json.bad-*"))
	if err != nil || len(bad) != 1 {
		t.Fatalf("moved-aside files = %v (%v), want 1", bad, err)
	}
	if b, _ := os.ReadFile(bad[0]); string(b) != "{nope" {
		t.Fatalf("moved-aside content = %q", b)
	}
}

func TestDataset_LegacyEntriesNotArray(t *testing.T) {
	home := t.TempDir()
	raw := `{"startDate":"2025-01-01","startWeight":"90","targetWeight":80,"entries":{"bad":true}}`
	if err := os.WriteFile(filepath.Join(home, "dataset.json"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := store.NewDatasetFileStore(home).LoadDataset()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if len(got.Entries) != 0 || got.TargetWeight != "80" {
		t.Fatalf("unexpected dataset: %+v", got)
	}
}

func TestPrefs_DefaultsAndRoundTrip(t *testing.T) {
	home := t.TempDir()
	ps := store.NewPrefsFileStore(home)

	p, err := ps.LoadPrefs()
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p != domain.DefaultPrefs() {
		t.Fatalf("prefs = %+v, want defaults", p)
	}

	want := domain.Prefs{ShowGuides: false, ShowTrend: true}
	if err := ps.SavePrefs(want); err != nil {
		t.Fatalf("save prefs: %v", err)
	}
	if p, _ = ps.LoadPrefs(); p != want {
		t.Fatalf("prefs = %+v, want %+v", p, want)
	}
}

func TestPrefs_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "prefs.json"), []byte(`{"showTrend":false}`), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := store.NewPrefsFileStore(home).LoadPrefs()
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if !p.ShowGuides || p.ShowTrend {
		t.Fatalf("prefs = %+v", p)
	}
}

func TestSeal_OpenRoundTrip(t *testing.T) {
	sealed, err := store.Seal("correct horse", []byte(`{"entries":[]}`))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if !store.IsSealed(sealed) {
		t.Fatal("sealed blob not recognised")
	}
	pt, err := store.Open("correct horse", sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(pt) != `{"entries":[]}` {
		t.Fatalf("plaintext = %q", pt)
	}
}

func TestOpen_WrongPassphrase_Fails(t *testing.T) {
	sealed, err := store.Seal("right", []byte("data"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := store.Open("wrong", sealed); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestIsSealed_PlainExport(t *testing.T) {
	if store.IsSealed([]byte(`{"data":{"entries":[]},"prefs":{}}`)) {
		t.Fatal("plain export reported as sealed")
	}
	if store.IsSealed([]byte(`[1,2]`)) {
		t.Fatal("array reported as sealed")
	}
}

func TestWriteFile_Atomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := store.WriteFile(path, []byte("{}")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "{}" {
		t.Fatalf("read back %q, %v", b, err)
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp-*"))
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
}
