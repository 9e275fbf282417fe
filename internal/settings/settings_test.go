package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadMissingFileYieldsEmptyDocument(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("expected empty document, got %v", doc)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestSaveRoundTripPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	original := `{
    "editor.fontSize": 14,
    "workbench.colorTheme": "Default Dark+",
    "chat.instructionsFilesLocations": ["old.instructions.md"]
}`
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	doc.SetFileList("chat.instructionsFilesLocations", []string{
		"a.instructions.md",
		"b.instructions.md",
	})

	if err := Save(path, doc); err != nil {
		t.Fatal(err)
	}

	// Reload and verify both the patched key and the untouched ones.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := reloaded["editor.fontSize"]; got != float64(14) {
		t.Errorf("editor.fontSize = %v, want 14", got)
	}
	if got := reloaded["workbench.colorTheme"]; got != "Default Dark+" {
		t.Errorf("workbench.colorTheme = %v, want Default Dark+", got)
	}

	want := []string{"a.instructions.md", "b.instructions.md"}
	if got := reloaded.FileList("chat.instructionsFilesLocations"); !reflect.DeepEqual(got, want) {
		t.Errorf("file list = %v, want %v", got, want)
	}
}

func TestSaveProducesValidStableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	doc := Document{}
	doc.SetFileList("chat.instructionsFilesLocations", []string{"x.instructions.md"})

	if err := Save(path, doc); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !json.Valid(data) {
		t.Fatalf("saved file is not valid JSON: %s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with a newline")
	}
	if !strings.Contains(string(data), "    \"chat.instructionsFilesLocations\"") {
		t.Errorf("expected 4-space indentation, got: %s", data)
	}

	// Saving again must produce identical bytes.
	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(path, reloaded); err != nil {
		t.Fatal(err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Errorf("save is not stable:\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	if err := Save(path, Document{"k": "v"}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestFileListIgnoresNonStringEntries(t *testing.T) {
	doc := Document{
		"key": []any{"a.md", 42, "b.md", nil},
	}

	want := []string{"a.md", "b.md"}
	if got := doc.FileList("key"); !reflect.DeepEqual(got, want) {
		t.Errorf("FileList = %v, want %v", got, want)
	}

	if got := doc.FileList("missing"); got != nil {
		t.Errorf("FileList for missing key = %v, want nil", got)
	}
	doc["scalar"] = "not a list"
	if got := doc.FileList("scalar"); got != nil {
		t.Errorf("FileList for scalar value = %v, want nil", got)
	}
}
