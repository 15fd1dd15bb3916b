package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	o := &Output{w: &buf, errW: io.Discard}

	o.Table([]string{"ID", "TITLE"}, [][]string{{"p1", "Rebar 12mm"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, separator and one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "ID") || !strings.Contains(lines[0], "TITLE") {
		t.Errorf("header missing columns: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Errorf("expected dashed separator, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Rebar 12mm") {
		t.Errorf("row missing value: %q", lines[2])
	}
}

func TestOutputPrintJSONMode(t *testing.T) {
	var buf bytes.Buffer
	o := &Output{jsonMode: true, w: &buf, errW: io.Discard}

	o.Print([]string{"ID"}, [][]string{{"p1"}}, map[string]string{"id": "p1"})

	if !strings.Contains(buf.String(), `"id": "p1"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
