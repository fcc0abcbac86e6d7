package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGatherFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.gpx", "A.GPX", "notes.txt", "walk.nmea"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o666); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.gpx"), 0o777); err != nil {
		t.Fatal(err)
	}

	paths, err := GatherFiles([]string{dir}, []string{".gpx"})
	if err != nil {
		t.Fatalf("GatherFiles: %v", err)
	}

	want := []string{filepath.Join(dir, "A.GPX"), filepath.Join(dir, "b.gpx")}
	if len(paths) != len(want) {
		t.Fatalf("GatherFiles = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	single, err := GatherFiles([]string{filepath.Join(dir, "walk.nmea")}, []string{".nmea"})
	if err != nil || len(single) != 1 {
		t.Errorf("GatherFiles(file) = %v, %v", single, err)
	}

	if _, err := GatherFiles([]string{filepath.Join(dir, "missing")}, []string{".gpx"}); err == nil {
		t.Errorf("GatherFiles(missing) succeeded")
	}
}
