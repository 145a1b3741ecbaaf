package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContractData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contrato.json")
	content := `{
		"tenantName": "Juan Pérez",
		"roomName": "Habitación 2",
		"monthlyRent": 550,
		"depositAmount": 550,
		"startDate": "2026-04-01",
		"endDate": "2027-04-01"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func generatedFiles(t *testing.T, dir, ext string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestContractCommand(t *testing.T) {
	outDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cmd := newContractCmd(&configPath)
	cmd.SetArgs([]string{"--data", writeContractData(t), "--out", outDir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("contract command: %v", err)
	}

	pdfs := generatedFiles(t, outDir, ".pdf")
	if len(pdfs) != 1 {
		t.Fatalf("got %d PDFs, want 1: %v", len(pdfs), pdfs)
	}
	if !strings.HasPrefix(pdfs[0], "Contrato_") {
		t.Errorf("filename = %q", pdfs[0])
	}

	data, err := os.ReadFile(filepath.Join(outDir, pdfs[0]))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestContractCommandInvalidFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cmd := newContractCmd(&configPath)
	cmd.SetArgs([]string{"--data", writeContractData(t), "--format", "odt"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("contract command: expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestContractCommandMissingData(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cmd := newContractCmd(&configPath)
	cmd.SetArgs([]string{"--data", filepath.Join(t.TempDir(), "nope.json")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("contract command: expected error for missing data file")
	}
}

func TestListingCommand(t *testing.T) {
	outDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	dataPath := filepath.Join(t.TempDir(), "anuncio.json")
	content := `{
		"roomName": "Habitación con terraza",
		"propertyAddress": "Calle de la Rosa 12, Madrid",
		"monthlyRent": 475,
		"sizeSqm": 14
	}`
	if err := os.WriteFile(dataPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newListingCmd(&configPath)
	cmd.SetArgs([]string{"--data", dataPath, "--out", outDir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("listing command: %v", err)
	}

	pdfs := generatedFiles(t, outDir, ".pdf")
	if len(pdfs) != 1 {
		t.Fatalf("got %d PDFs, want 1: %v", len(pdfs), pdfs)
	}
	if !strings.HasPrefix(pdfs[0], "Anuncio_") {
		t.Errorf("filename = %q", pdfs[0])
	}
}
