package tune

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for tune file parsing.
const (
	// MagicCSI0 is the magic code of CSIS instance 0
	MagicCSI0 = 0x4353

	// MaxInstances is the number of CSIS instances a magic code may encode
	MaxInstances = 8

	// HeaderLength is the expected length of the header line in hex characters
	HeaderLength = 8

	// EntryLength is the expected length of an entry line in hex characters
	EntryLength = 14

	// entryDataBytes is the size of index + value
	entryDataBytes = 6
)

// Parse parses a tune file from the given file path.
//
// Example:
//
//	t, err := tune.Parse("csis0.tune")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("instance %d, %d entries\n", t.Instance(), len(t.Entries))
func Parse(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a tune file from any io.Reader.
func ParseReader(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	var (
		t       *Table
		count   int
		lineNum int
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' {
			continue
		}

		if t == nil {
			var err error
			t, count, err = parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: failed to parse header: %w", lineNum, err)
			}
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		t.Entries = append(t.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if t == nil {
		return nil, fmt.Errorf("empty file")
	}

	if len(t.Entries) != count {
		return nil, fmt.Errorf("entry count mismatch: header declares %d, found %d", count, len(t.Entries))
	}

	return t, nil
}

// parseHeader parses the header line.
//
// Example: "43550102" = Magic: 0x4355 (CSIS2), Type: 0x01, Count: 2
func parseHeader(line string) (*Table, int, error) {
	if len(line) != HeaderLength {
		return nil, 0, fmt.Errorf("invalid header length: got %d characters, expected %d", len(line), HeaderLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid hex data: %w", err)
	}

	magic := uint16(data[0])<<8 | uint16(data[1])
	if magic < MagicCSI0 || magic >= MagicCSI0+MaxInstances {
		return nil, 0, fmt.Errorf("invalid magic code: 0x%04X", magic)
	}

	t := &Table{
		Magic:   magic,
		Type:    data[2],
		Entries: make([]Entry, 0, int(data[3])),
	}

	return t, int(data[3]), nil
}

// parseEntry parses a single entry line.
//
// Example: "00100000C00030"
//
//	Index: 0x0010
//	Value: 0x0000C000
//	Checksum: 0x30
func parseEntry(line string) (Entry, error) {
	if len(line) != EntryLength {
		return Entry{}, fmt.Errorf("invalid entry length: got %d characters, expected %d", len(line), EntryLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid hex data: %w", err)
	}

	checksum := data[entryDataBytes]
	if calculated := EntryChecksum(data[:entryDataBytes]); checksum != calculated {
		return Entry{}, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X", checksum, calculated)
	}

	return Entry{
		Index: uint16(data[0])<<8 | uint16(data[1]),
		Value: uint32(data[2])<<24 | uint32(data[3])<<16 |
			uint32(data[4])<<8 | uint32(data[5]),
		Checksum: checksum,
	}, nil
}
