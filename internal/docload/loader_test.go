package docload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	content := "1. Payment shall   be made\n\nwithin 30 days."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	text, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if text != "1. Payment shall be made within 30 days." {
		t.Errorf("Unexpected normalized text: %q", text)
	}
}

func TestLoad_DocxRejected(t *testing.T) {
	if _, err := Load("contract.docx"); err == nil {
		t.Errorf("Expected error for docx")
	}
	if _, err := Load("contract.xyz"); err == nil {
		t.Errorf("Expected error for unknown extension")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestFromHTML_StripsMarkupAndScripts(t *testing.T) {
	doc := `<html><head><style>body{color:red}</style></head>
<body><h1>Service Agreement</h1>
<script>alert("x")</script>
<p>Payment within 30 days.</p></body></html>`

	text, err := FromHTML(doc)
	if err != nil {
		t.Fatalf("FromHTML failed: %v", err)
	}
	if !strings.Contains(text, "Service Agreement") || !strings.Contains(text, "Payment within 30 days.") {
		t.Errorf("Expected visible text preserved, got %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("Expected scripts and styles stripped, got %q", text)
	}
}

func TestPreprocess_KeepsCurrencyAndDanda(t *testing.T) {
	got := Preprocess("Amount: ₹5,00,000 @deadline# भुगतान देय होगा।")
	if !strings.Contains(got, "₹5,00,000") {
		t.Errorf("Expected rupee amount preserved, got %q", got)
	}
	if strings.Contains(got, "@") || strings.Contains(got, "#") {
		t.Errorf("Expected special characters stripped, got %q", got)
	}
	if !strings.Contains(got, "।") {
		t.Errorf("Expected danda preserved, got %q", got)
	}
}
