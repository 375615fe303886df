// Package mmio maps a physical register window into the process so it can be
// used as a regmap.Bus.
//
// The window is mapped from a device node with mmap(2): /dev/mem for raw
// physical addresses, a UIO node, or any regular file when testing.
//
//	region, err := mmio.Open("/dev/mem", 0x12C40000, csis.WindowSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer region.Close()
//
//	ctrl := csi.New(region)
//
// Every Read32 and Write32 is a single 32-bit load or store. Offsets outside
// the window panic, like an out-of-range slice index.
package mmio
