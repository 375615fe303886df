package regmap

// Access describes how software may touch a register.
type Access uint8

const (
	// ReadWrite registers can be read and written
	ReadWrite Access = iota

	// ReadOnly registers ignore writes
	ReadOnly

	// WriteOnly registers read back as zero
	WriteOnly

	// WriteOneToClear registers clear every bit written as 1
	WriteOneToClear
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "RW"
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	case WriteOneToClear:
		return "W1C"
	default:
		return "??"
	}
}

// Register describes one 32-bit register inside a register window.
type Register struct {
	// Name is the symbolic register name used in dumps
	Name string

	// Offset is the byte offset from the start of the window
	Offset uint32

	// Access is the software access type
	Access Access
}

// Field describes a bit range inside a register word.
// The same Field may be applied to several registers that share a layout.
type Field struct {
	// Name is the symbolic field name
	Name string

	// Shift is the position of the least significant bit
	Shift uint8

	// Width is the number of bits (1..32)
	Width uint8
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint32 {
	return f.max() << f.Shift
}

// max returns the largest value the field can hold.
func (f Field) max() uint32 {
	return uint32((uint64(1) << f.Width) - 1)
}

// Bus reads and writes 32-bit registers at byte offsets.
//
// Implementations must not reorder or merge accesses: every call is one
// register access on the hardware.
type Bus interface {
	// Read32 returns the register at the given byte offset
	Read32(offset uint32) uint32

	// Write32 stores value in the register at the given byte offset
	Write32(offset uint32, value uint32)
}
