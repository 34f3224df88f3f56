package settings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if got != Defaults() {
		t.Fatalf("expected defaults, got %#v", got)
	}
}

func TestLoadMalformedFileReportsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "{not json")
	got, err := NewStore(dir).Load()
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if got != Defaults() {
		t.Fatalf("expected defaults on malformed file, got %#v", got)
	}
}

func TestLoadInvalidColorKeepsOtherFields(t *testing.T) {
	dir := t.TempDir()
	videos := t.TempDir()
	content := `{
  "videoFolder": ` + quote(videos) + `,
  "windowLocked": false,
  "sliderVisible": true,
  "transparencyEnabled": true,
  "chromaKeyColor": "notacolor"
}`
	writeConfig(t, dir, content)

	got, err := NewStore(dir).Load()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldChromaKeyColor {
		t.Fatalf("expected chroma key ValidationError, got %v", err)
	}
	want := Settings{
		VideoFolder:         videos,
		WindowLocked:        false,
		SliderVisible:       true,
		TransparencyEnabled: true,
		ChromaKeyColor:      DefaultChromaKeyColor,
	}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestLoadDropsMissingFolder(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(t.TempDir(), "gone")
	writeConfig(t, dir, `{"videoFolder": `+quote(missing)+`, "sliderVisible": true}`)

	got, err := NewStore(dir).Load()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldVideoFolder {
		t.Fatalf("expected folder ValidationError, got %v", err)
	}
	if got.HasVideoFolder() {
		t.Fatalf("expected folder dropped, got %q", got.VideoFolder)
	}
	if !got.SliderVisible {
		t.Fatalf("expected slider flag preserved")
	}
	if !got.WindowLocked {
		t.Fatalf("expected default lock state")
	}
}

func TestLoadWrongTypesFallBackPerField(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"videoFolder": 12, "windowLocked": "no", "transparencyEnabled": true, "chromaKeyColor": "#00ff00"}`)

	got, err := NewStore(dir).Load()
	if err == nil {
		t.Fatalf("expected validation report")
	}
	if !strings.Contains(err.Error(), FieldWindowLocked) || !strings.Contains(err.Error(), FieldVideoFolder) {
		t.Fatalf("expected both rejected fields reported, got %v", err)
	}
	want := Settings{WindowLocked: true, TransparencyEnabled: true, ChromaKeyColor: "#00ff00"}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestLoadNullFolderIsUnset(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"videoFolder": null, "windowLocked": true}`)
	got, err := NewStore(dir).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HasVideoFolder() {
		t.Fatalf("expected unset folder")
	}
}

func TestSaveCreatesDirectoryAndUsesTwoSpaceIndent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app", "data")
	store := NewStore(dir)
	if err := store.Save(Defaults()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "{\n" +
		"  \"videoFolder\": null,\n" +
		"  \"windowLocked\": true,\n" +
		"  \"sliderVisible\": false,\n" +
		"  \"transparencyEnabled\": false,\n" +
		"  \"chromaKeyColor\": \"#000000\"\n" +
		"}"
	if string(data) != want {
		t.Fatalf("unexpected file contents:\n%s", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only config.json, found %d entries", len(entries))
	}
}

func TestSaveReportsPersistenceError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	err := NewStore(filepath.Join(blocker, "sub")).Save(Defaults())
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func genSettings(folders []string) *rapid.Generator[Settings] {
	return rapid.Custom(func(t *rapid.T) Settings {
		return Settings{
			VideoFolder:         rapid.SampledFrom(folders).Draw(t, "folder"),
			WindowLocked:        rapid.Bool().Draw(t, "locked"),
			SliderVisible:       rapid.Bool().Draw(t, "slider"),
			TransparencyEnabled: rapid.Bool().Draw(t, "transparency"),
			ChromaKeyColor:      rapid.StringMatching(`#[0-9A-Fa-f]{6}`).Draw(t, "color"),
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	folders := []string{"", t.TempDir(), t.TempDir()}
	store := NewStore(dir)
	rapid.Check(t, func(rt *rapid.T) {
		want := genSettings(folders).Draw(rt, "settings")
		if err := store.Save(want); err != nil {
			rt.Fatalf("save failed: %v", err)
		}
		got, err := store.Load()
		if err != nil {
			rt.Fatalf("load failed: %v", err)
		}
		if got != want {
			rt.Fatalf("round trip mismatch: saved %#v, loaded %#v", want, got)
		}
	})
}

func TestSaveIsIdempotent(t *testing.T) {
	folders := []string{"", t.TempDir()}
	base := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		s := genSettings(folders).Draw(rt, "settings")
		once := NewStore(filepath.Join(base, "once"))
		twice := NewStore(filepath.Join(base, "twice"))
		if err := once.Save(s); err != nil {
			rt.Fatalf("save: %v", err)
		}
		if err := twice.Save(s); err != nil {
			rt.Fatalf("save: %v", err)
		}
		if err := twice.Save(s); err != nil {
			rt.Fatalf("save: %v", err)
		}
		a, err := os.ReadFile(once.Path())
		if err != nil {
			rt.Fatalf("read: %v", err)
		}
		b, err := os.ReadFile(twice.Path())
		if err != nil {
			rt.Fatalf("read: %v", err)
		}
		if !bytes.Equal(a, b) {
			rt.Fatalf("expected identical bytes:\n%s\n---\n%s", a, b)
		}
	})
}

func quote(s string) string {
	return strconv.Quote(s)
}
