package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 7, 9, 5, 2, 45_000_000, time.Local)
	if got := FormatTimestamp(ts); got != "20250307-090502.045" {
		t.Errorf("unexpected timestamp: %s", got)
	}
}

func TestNextTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "20250307-090502.045", want: "20250307-090502.046"},
		{in: "20250307-090502.999", want: "20250307-090503.000"},
		{in: "not-a-timestamp", want: "not-a-timestamp"},
	}
	for _, tt := range tests {
		if got := NextTimestamp(tt.in); got != tt.want {
			t.Errorf("NextTimestamp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBackupName(t *testing.T) {
	if got := BackupName("intro.md", "20250307-090502.045"); got != "intro_20250307-090502.045.md" {
		t.Errorf("unexpected backup name: %s", got)
	}
}

func TestBackupTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		wantTS string
		wantOK bool
	}{
		{name: "own backup", file: "intro_20250307-090502.045.md", wantTS: "20250307-090502.045", wantOK: true},
		{name: "other document sharing a prefix", file: "intro_extra_20250307-090502.045.md", wantOK: false},
		{name: "wrong extension", file: "intro_20250307-090502.045.txt", wantOK: false},
		{name: "not a timestamp", file: "intro_draft.md", wantOK: false},
		{name: "different document", file: "outro_20250307-090502.045.md", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := BackupTimestamp("intro.md", tt.file)
			if ok != tt.wantOK || ts != tt.wantTS {
				t.Errorf("BackupTimestamp(%q) = %q, %v; want %q, %v", tt.file, ts, ok, tt.wantTS, tt.wantOK)
			}
		})
	}
}

func TestExpiredBackups_KeepsNewest(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	var names []string
	for i := 0; i < 14; i++ {
		names = append(names, BackupName("intro.md", FormatTimestamp(base.Add(time.Duration(i)*time.Minute))))
	}
	names = append(names, "other_20250101-000000.000.md", "notes.txt")

	expired := ExpiredBackups("intro.md", names, MaxBackups)

	if len(expired) != 4 {
		t.Fatalf("expected 4 expired backups, got %d: %v", len(expired), expired)
	}
	for i, name := range expired {
		want := BackupName("intro.md", FormatTimestamp(base.Add(time.Duration(3-i)*time.Minute)))
		if name != want {
			t.Errorf("expired[%d] = %s, want %s", i, name, want)
		}
	}
}

func TestExpiredBackups_UnderCap(t *testing.T) {
	var names []string
	for i := 0; i < MaxBackups; i++ {
		names = append(names, fmt.Sprintf("intro_20250101-0000%02d.000.md", i))
	}
	if expired := ExpiredBackups("intro.md", names, MaxBackups); len(expired) != 0 {
		t.Errorf("expected nothing expired, got %v", expired)
	}
}

func TestSortBackups_NewestFirst(t *testing.T) {
	names := []string{
		"intro_20250101-000000.000.md",
		"intro_20250301-000000.000.md",
		"intro_20250201-000000.000.md",
	}
	sorted := SortBackups("intro.md", names)
	if sorted[0] != names[1] || sorted[1] != names[2] || sorted[2] != names[0] {
		t.Errorf("unexpected order: %v", sorted)
	}
}
