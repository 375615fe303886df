package tune

// Table is a parsed tune-override file.
type Table struct {
	// Magic identifies the CSIS instance the table belongs to
	Magic uint16

	// Type is the tune record type
	Type byte

	// Entries are the register overrides in file order
	Entries []Entry
}

// Entry is one register override.
type Entry struct {
	// Index is the register word index (byte offset / 4)
	Index uint16

	// Value is written to the register verbatim
	Value uint32

	// Checksum is the entry checksum from the file
	Checksum byte
}

// Instance returns the CSIS instance number encoded in Magic.
func (t *Table) Instance() uint32 {
	return uint32(t.Magic - MagicCSI0)
}

// Offset returns the byte offset of the overridden register.
func (e Entry) Offset() uint32 {
	return uint32(e.Index) * 4
}
