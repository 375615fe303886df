package tune

// EntryChecksum computes the 8-bit checksum of an entry's index and value
// bytes: sum all bytes, then 2's complement.
func EntryChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
