// Package regmap implements typed access to memory-mapped 32-bit registers.
//
// Hardware is described by two kinds of immutable descriptors:
//
//	Register: a named 32-bit word at a byte offset inside a register window
//	Field:    a named bit range (shift + width) inside a register word
//
// Descriptor tables are plain data. This package only knows how to apply them
// to a Bus.
//
// # Bus
//
// A Bus reads and writes 32-bit words at byte offsets. Implementations exist
// for mapped physical memory (see package mmio) and for plain memory
// (Memory), which is what tests and simulators use:
//
//	mem := regmap.NewMemory(0x4000)
//	regmap.SetField(mem, reg, field, 3)
//	v := regmap.GetField(mem, reg, field)
//
// # Pure Helpers
//
// FieldValue and SetFieldValue work on a register word already read from the
// bus, so a caller can update several fields and write the register once:
//
//	val := regmap.GetReg(bus, reg)
//	val = regmap.SetFieldValue(val, fieldA, 1)
//	val = regmap.SetFieldValue(val, fieldB, 0)
//	regmap.SetReg(bus, reg, val)
//
// # Dump
//
// Dump prints every register of a table with its current value. It only
// reads the bus. Format returns the same line for a single register, for
// callers that lay the lines out themselves.
package regmap
