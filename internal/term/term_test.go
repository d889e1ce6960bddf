package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/snapmerge/internal/config"
)

func TestConfigure(t *testing.T) {
	Configure(config.ColorAlways)
	if !Enabled() || Red == "" {
		t.Error("ColorAlways should enable colors")
	}
	Configure(config.ColorNever)
	if Enabled() || Red != "" {
		t.Error("ColorNever should clear colors")
	}
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR should disable auto colors")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
