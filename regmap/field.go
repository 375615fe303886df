package regmap

// FieldValue extracts a field from a register word.
func FieldValue(reg uint32, f Field) uint32 {
	return (reg >> f.Shift) & f.max()
}

// SetFieldValue returns reg with the field replaced by value.
// Bits of value above the field width are discarded.
func SetFieldValue(reg uint32, f Field, value uint32) uint32 {
	return (reg &^ f.Mask()) | ((value & f.max()) << f.Shift)
}

// GetReg reads a register.
func GetReg(b Bus, r Register) uint32 {
	return b.Read32(r.Offset)
}

// SetReg writes a register.
func SetReg(b Bus, r Register, value uint32) {
	b.Write32(r.Offset, value)
}

// GetField reads a register and extracts one field.
func GetField(b Bus, r Register, f Field) uint32 {
	return FieldValue(b.Read32(r.Offset), f)
}

// SetField updates one field of a register with a read-modify-write cycle.
func SetField(b Bus, r Register, f Field, value uint32) {
	val := b.Read32(r.Offset)
	b.Write32(r.Offset, SetFieldValue(val, f, value))
}
