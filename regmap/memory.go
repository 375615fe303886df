package regmap

import "fmt"

// Memory is a Bus backed by plain memory.
//
// Software accesses (Read32/Write32) honour the Access type of registers
// declared with Define. Hardware-side state is set with Poke and inspected
// with Peek, which bypass access rules. Out-of-range or misaligned accesses
// are ignored and recorded; Err returns the first one.
//
// Memory is not safe for concurrent use.
type Memory struct {
	words  []uint32
	access map[uint32]Access
	writes int
	err    error
}

// NewMemory creates a zeroed Memory covering size bytes.
func NewMemory(size uint32) *Memory {
	return &Memory{
		words:  make([]uint32, (size+3)/4),
		access: make(map[uint32]Access),
	}
}

// Define declares the access type of registers. Undeclared offsets are ReadWrite.
func (m *Memory) Define(regs ...Register) {
	for _, r := range regs {
		m.access[r.Offset] = r.Access
	}
}

// Read32 implements Bus.
func (m *Memory) Read32(offset uint32) uint32 {
	idx, ok := m.index(offset, "read")
	if !ok {
		return 0
	}
	if m.access[offset] == WriteOnly {
		return 0
	}
	return m.words[idx]
}

// Write32 implements Bus.
func (m *Memory) Write32(offset uint32, value uint32) {
	idx, ok := m.index(offset, "write")
	if !ok {
		return
	}
	m.writes++

	switch m.access[offset] {
	case ReadOnly:
		return
	case WriteOneToClear:
		m.words[idx] &^= value
	default:
		m.words[idx] = value
	}
}

// Poke sets a register as the hardware would, ignoring its access type.
func (m *Memory) Poke(offset uint32, value uint32) {
	if idx, ok := m.index(offset, "poke"); ok {
		m.words[idx] = value
	}
}

// Peek returns a register as the hardware holds it, ignoring its access type.
func (m *Memory) Peek(offset uint32) uint32 {
	if idx, ok := m.index(offset, "peek"); ok {
		return m.words[idx]
	}
	return 0
}

// Writes returns the number of software writes performed so far.
func (m *Memory) Writes() int {
	return m.writes
}

// Size returns the size of the memory in bytes.
func (m *Memory) Size() uint32 {
	return uint32(len(m.words)) * 4
}

// Err returns the first invalid access, if any.
func (m *Memory) Err() error {
	return m.err
}

func (m *Memory) index(offset uint32, op string) (uint32, bool) {
	if offset%4 != 0 {
		m.fail(&AccessError{Offset: offset, Op: op, Reason: "misaligned offset"})
		return 0, false
	}
	idx := offset / 4
	if idx >= uint32(len(m.words)) {
		m.fail(&AccessError{
			Offset: offset,
			Op:     op,
			Reason: fmt.Sprintf("outside window of %d bytes", len(m.words)*4),
		})
		return 0, false
	}
	return idx, true
}

func (m *Memory) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}
