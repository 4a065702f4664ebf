package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDummy(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func TestCheckMissingEmptyRoot(t *testing.T) {
	missing := CheckMissing(t.TempDir())
	if len(missing) != len(Required) {
		t.Errorf("Expected %d missing images, got %d", len(Required), len(missing))
	}
}

func TestCheckMissingAllPresent(t *testing.T) {
	root := t.TempDir()
	for _, ri := range Required {
		writeDummy(t, ri.Path(root))
	}

	missing := CheckMissing(root)
	if len(missing) != 0 {
		t.Errorf("Expected 0 missing images, got %d", len(missing))
	}
}

func TestCheckMissingPartial(t *testing.T) {
	root := t.TempDir()
	writeDummy(t, Required[0].Path(root))

	missing := CheckMissing(root)
	if len(missing) != len(Required)-1 {
		t.Errorf("Expected %d missing images, got %d", len(Required)-1, len(missing))
	}
	for _, ri := range missing {
		if ri.Name == Required[0].Name && ri.Dir == Required[0].Dir {
			t.Errorf("File %s reported missing but it exists", ri.Name)
		}
	}
}

func TestRequiredChecklist(t *testing.T) {
	// six site images plus four menu item photos
	site, menu := 0, 0
	for _, ri := range Required {
		switch ri.Dir {
		case "img":
			site++
		case "img/menu_items":
			menu++
		default:
			t.Errorf("Unexpected directory '%s' in checklist", ri.Dir)
		}
	}
	if site != 6 {
		t.Errorf("Expected 6 site images, got %d", site)
	}
	if menu != 4 {
		t.Errorf("Expected 4 menu item images, got %d", menu)
	}
}
