package memory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_MissingRoot(t *testing.T) {
	items, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestDiscover_EmptyRoot(t *testing.T) {
	items, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestDiscover_ExcludesFoldersWithoutOverlay(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "plain-photo", "x-main.jpg")
	touch(t, root, "plain-video", "y-main.mp4")
	touch(t, root, "both", "z-main.jpg")
	touch(t, root, "both", "z-main.mp4")
	touch(t, root, "stray", "notes.txt")
	touch(t, root, "with-overlay", "a-overlay.png")

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 1 || items[0].Name != "with-overlay" {
		t.Fatalf("got %v, want only with-overlay", names(items))
	}
}

func TestDiscover_IgnoresTopLevelFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "loose-overlay.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("top-level files must not become items, got %v", names(items))
	}
}

func TestDiscover_Classification(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "memory1", "a-main.jpg")
	touch(t, root, "memory1", "a-overlay.png")
	touch(t, root, "memory2", "b-overlay.png")
	touch(t, root, "memory3", "c-main.mp4")
	touch(t, root, "memory3", "c-overlay.png")
	touch(t, root, "memory4", "d-main.mp4")
	touch(t, root, "memory4", "d-main.jpg")
	touch(t, root, "memory4", "d-overlay.png")

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := map[string]Kind{
		"memory1": KindImage,
		"memory2": KindUnclassified,
		"memory3": KindVideo,
		"memory4": KindImage,
	}
	if len(items) != len(want) {
		t.Fatalf("got %v, want %d items", names(items), len(want))
	}
	for _, it := range items {
		if got := it.Kind(); got != want[it.Name] {
			t.Errorf("%s: Kind = %v, want %v", it.Name, got, want[it.Name])
		}
	}

	m4 := find(t, items, "memory4")
	if m4.BaseImage == "" || m4.BaseVideo == "" {
		t.Errorf("memory4 should record both bases, got %+v", m4)
	}
	if m4.Base() != m4.BaseImage {
		t.Errorf("memory4 Base() = %q, want the image", m4.Base())
	}
}

func TestDiscover_CaseInsensitiveMarkers(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "loud", "A-MAIN.JPG")
	touch(t, root, "loud", "A-Overlay.PNG")

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 1 || items[0].Kind() != KindImage {
		t.Fatalf("got %+v, want one image item", items)
	}
}

func TestDiscover_FirstOverlayWins(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "multi", "1-overlay.png")
	touch(t, root, "multi", "2-overlay.png")
	touch(t, root, "multi", "1-main.jpg")

	items, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if len(it.Overlays) != 2 {
		t.Errorf("Overlays = %v, want both recorded", it.Overlays)
	}
	if filepath.Base(it.Overlay()) != "1-overlay.png" {
		t.Errorf("Overlay() = %q, want 1-overlay.png", it.Overlay())
	}
}

func TestDiscover_StableOrder(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"c", "a", "b"} {
		touch(t, root, n, n+"-overlay.png")
	}
	first, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	got, again := names(first), names(second)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] || again[i] != want[i] {
			t.Fatalf("order: first %v, second %v, want %v", got, again, want)
		}
	}
}

func TestOverlayItem_OutputName(t *testing.T) {
	tests := []struct {
		name string
		item OverlayItem
		want string
	}{
		{"image", OverlayItem{Name: "m1", BaseImage: "a-main.jpg"}, "m1_combined.jpg"},
		{"video", OverlayItem{Name: "m2", BaseVideo: "b-main.mp4"}, "m2_combined.mp4"},
		{"image wins", OverlayItem{Name: "m3", BaseImage: "c-main.jpg", BaseVideo: "c-main.mp4"}, "m3_combined.jpg"},
		{"unclassified", OverlayItem{Name: "m4"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.OutputName(); got != tt.want {
				t.Errorf("OutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if KindImage.String() != "image" || KindVideo.String() != "video" || KindUnclassified.String() != "unclassified" {
		t.Error("unexpected Kind strings")
	}
}

// --- Helpers ---

func touch(t *testing.T, root, folder, name string) {
	t.Helper()
	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
}

func names(items []OverlayItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func find(t *testing.T, items []OverlayItem, name string) OverlayItem {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found", name)
	return OverlayItem{}
}
