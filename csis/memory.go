package csis

import "github.com/moffa90/go-csis/regmap"

// NewMemory returns a regmap.Memory shaped like a CSIS register window:
// access types from Registers and the non-zero reset values applied.
func NewMemory() *regmap.Memory {
	mem := regmap.NewMemory(WindowSize)
	mem.Define(Registers...)
	for id, v := range ResetValues {
		mem.Poke(Registers[id].Offset, v)
	}
	return mem
}

// NewDMAMemory returns a regmap.Memory shaped like the common DMA window.
func NewDMAMemory() *regmap.Memory {
	mem := regmap.NewMemory(DMAWindowSize)
	mem.Define(DMARegisters...)
	return mem
}
