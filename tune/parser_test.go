package tune

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Table
		wantErr bool
		errMsg  string
	}{
		{
			name: "single entry",
			input: "43530101\n" +
				"00100000C00030\n",
			want: &Table{
				Magic: 0x4353,
				Type:  0x01,
				Entries: []Entry{
					{Index: 0x0010, Value: 0x0000C000, Checksum: 0x30},
				},
			},
		},
		{
			name: "comments, blank lines and two entries",
			input: "# CSIS2 tune bits\n" +
				"43550102\n" +
				"\n" +
				"00100000C00030\n" +
				"  01409E003E00E3  \n",
			want: &Table{
				Magic: 0x4355,
				Type:  0x01,
				Entries: []Entry{
					{Index: 0x0010, Value: 0x0000C000, Checksum: 0x30},
					{Index: 0x0140, Value: 0x9E003E00, Checksum: 0xE3},
				},
			},
		},
		{
			name:  "header with no entries",
			input: "43530100\n",
			want: &Table{
				Magic:   0x4353,
				Type:    0x01,
				Entries: []Entry{},
			},
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
			errMsg:  "empty file",
		},
		{
			name:    "only comments",
			input:   "# nothing here\n",
			wantErr: true,
			errMsg:  "empty file",
		},
		{
			name:    "invalid header length",
			input:   "435301\n",
			wantErr: true,
			errMsg:  "invalid header length",
		},
		{
			name:    "invalid header hex",
			input:   "ZZZZZZZZ\n",
			wantErr: true,
			errMsg:  "invalid hex data",
		},
		{
			name:    "invalid magic",
			input:   "12340100\n",
			wantErr: true,
			errMsg:  "invalid magic code",
		},
		{
			name: "bad entry checksum",
			input: "43530101\n" +
				"00100000C00031\n",
			wantErr: true,
			errMsg:  "checksum mismatch",
		},
		{
			name: "short entry",
			input: "43530101\n" +
				"00100000C0\n",
			wantErr: true,
			errMsg:  "invalid entry length",
		},
		{
			name: "count mismatch",
			input: "43530102\n" +
				"00100000C00030\n",
			wantErr: true,
			errMsg:  "entry count mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReader(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseReader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csis2.tune")
	content := "43550102\n00100000C00030\n01409E003E00E3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tbl.Instance() != 2 {
		t.Errorf("Instance() = %d, want 2", tbl.Instance())
	}
	if off := tbl.Entries[1].Offset(); off != 0x500 {
		t.Errorf("Offset() = 0x%X, want 0x500", off)
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.tune")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEntryChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{"all zeros", []byte{0, 0, 0, 0, 0, 0}, 0x00},
		{"single byte", []byte{0x01}, 0xFF},
		{"index and value", []byte{0x00, 0x10, 0x00, 0x00, 0xC0, 0x00}, 0x30},
		{"overflowing sum", []byte{0x01, 0x40, 0x9E, 0x00, 0x3E, 0x00}, 0xE3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntryChecksum(tt.data); got != tt.expected {
				t.Errorf("EntryChecksum() = 0x%02X, want 0x%02X", got, tt.expected)
			}
		})
	}
}
