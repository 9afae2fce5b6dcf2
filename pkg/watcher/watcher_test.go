package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Errorf("callback path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change of %s", want)
	}
}

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(path, []byte(`{"shapes": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changed, path)
}

func TestWatchAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	tmp := filepath.Join(dir, "tmp.json")
	if err := os.WriteFile(tmp, []byte(`{"name": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changed, path)
}

func TestUnrelatedFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		t.Errorf("unexpected callback for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRemoveAllStopsCallbacksUntilWatchedAgain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	callback := func(p string) { changed <- p }
	if err := fw.Watch([]string{path}, callback); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := fw.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"shapes": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		t.Fatalf("unexpected callback for %s after RemoveAll", p)
	case <-time.After(200 * time.Millisecond):
	}

	if err := fw.Watch([]string{path}, callback); err != nil {
		t.Fatalf("Watch after RemoveAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"name": "again"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, changed, path)
}
