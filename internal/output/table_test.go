package output

import (
	"strings"
	"testing"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "Lusaka", 6},
		{"empty", "", 0},
		{"bold", "\x1b[1mKitwe\x1b[0m", 5},
		{"nested", "\x1b[1m\x1b[31mcrisis\x1b[0m", 6},
		{"arrow", "↑", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.input); got != tc.want {
				t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestPad_IgnoresANSI(t *testing.T) {
	colored := "\x1b[31mNGO\x1b[0m"
	got := pad(colored, 6)
	if visualLen(got) != 6 {
		t.Errorf("pad visual width = %d, want 6", visualLen(got))
	}
	if got := pad("Hospital", 3); got != "Hospital" {
		t.Errorf("pad must not truncate, got %q", got)
	}
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Provider", "Type", "Location")
	tbl.AddRow("Chainama Hills Hospital", "Hospital", "Lusaka")
	tbl.AddRow("Youth Alive Zambia", "NGO")

	out := tbl.Render()
	for _, want := range []string{"Provider", "Chainama Hills Hospital", "Youth Alive Zambia", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	// Columns align: "Type" starts at the same offset in header and rows.
	col := strings.Index(lines[0], "Type")
	if got := strings.Index(lines[3], "NGO"); got != col {
		t.Errorf("misaligned column: header at %d, row at %d", col, got)
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTable_String(t *testing.T) {
	tbl := NewTable("Region")
	tbl.AddRow("Copperbelt")
	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}
