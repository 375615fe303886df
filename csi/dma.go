package csi

import (
	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

func checkSlot(slot uint32) error {
	if slot >= DMAAddrSlots {
		return &IndexError{Table: "dma address", Index: slot, Max: DMAAddrSlots - 1}
	}
	return nil
}

// SetFramePointer updates the frame pointer update mask of a virtual
// channel: clear=true sets the bit of slot, clear=false clears it.
func (c *Controller) SetFramePointer(vc, slot uint32, clear bool) error {
	if err := checkChannel(vc); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	c.setFramePointer(vc, slot, clear)
	return nil
}

func (c *Controller) setFramePointer(vc, slot uint32, clear bool) {
	ctrl := csis.DMACtrl(vc)
	val := regmap.GetReg(c.bus, ctrl)
	ptr := regmap.FieldValue(val, csis.FieldDMAUpdtFramePtr)
	if clear {
		ptr |= 1 << slot
	} else {
		ptr &^= 1 << slot
	}
	regmap.SetReg(c.bus, ctrl, regmap.SetFieldValue(val, csis.FieldDMAUpdtFramePtr, ptr))
}

// ActiveFramePointer returns the slot the DMA of a virtual channel is
// currently writing, read from the active status register.
func (c *Controller) ActiveFramePointer(vc uint32) (uint32, error) {
	if err := checkChannel(vc); err != nil {
		return 0, err
	}
	return regmap.GetField(c.bus, csis.DMAActCtrl(vc), csis.FieldActiveDMAFramePtr), nil
}

// SetDMAAddress schedules slot and writes addr to every address alias of the
// virtual channel.
func (c *Controller) SetDMAAddress(vc, slot, addr uint32) error {
	if err := checkChannel(vc); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}

	c.setFramePointer(vc, slot, false)

	// If the frame pointer update misses a frame boundary the hardware
	// advances to the next slot on its own. Every alias must hold a valid
	// address for that case.
	for i := uint32(0); i < DMAAddrSlots; i++ {
		regmap.SetReg(c.bus, csis.DMAAddr(vc, i), addr)
	}
	return nil
}

// SetMultiBufferAddress writes addr to a single address alias without
// touching the frame pointer.
func (c *Controller) SetMultiBufferAddress(vc, slot, addr uint32) error {
	if err := checkChannel(vc); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	regmap.SetReg(c.bus, csis.DMAAddr(vc, slot), addr)
	return nil
}

// SetOutputEnable turns the DMA output of a virtual channel on or off.
func (c *Controller) SetOutputEnable(vc uint32, enabled bool) error {
	if err := checkChannel(vc); err != nil {
		return err
	}
	c.setOutputEnable(vc, enabled)
	return nil
}

func (c *Controller) setOutputEnable(vc uint32, enabled bool) {
	on := uint32(0)
	if enabled {
		on = 1
	}
	ctrl := csis.DMACtrl(vc)
	val := regmap.GetReg(c.bus, ctrl)
	val = regmap.SetFieldValue(val, csis.FieldDMADisable, on^1)
	val = regmap.SetFieldValue(val, csis.FieldDMAUpdtPtrEn, on)
	regmap.SetReg(c.bus, ctrl, val)
}

// OutputEnabled reports whether the DMA output of a virtual channel is
// enabled on the control register.
func (c *Controller) OutputEnabled(vc uint32) (bool, error) {
	if err := checkChannel(vc); err != nil {
		return false, err
	}
	return regmap.GetField(c.bus, csis.DMACtrl(vc), csis.FieldDMADisable) == 0, nil
}

// ActiveOutputEnabled reports whether the DMA of a virtual channel is
// currently running, read from the active status register.
func (c *Controller) ActiveOutputEnabled(vc uint32) (bool, error) {
	if err := checkChannel(vc); err != nil {
		return false, err
	}
	return regmap.GetField(c.bus, csis.DMAActCtrl(vc), csis.FieldActiveDMAEnable) == 1, nil
}

// SetStartAddress writes a frame start address into the legacy start
// address window. Slot 0 has its own register; slots 1 and up are
// consecutive words. Slots outside 0..csis.StartAddrSlots-1 are rejected
// without a write.
func (c *Controller) SetStartAddress(slot, addr uint32) error {
	if slot >= csis.StartAddrSlots {
		c.logError("invalid start address slot", "slot", slot)
		return &IndexError{Table: "start address", Index: slot, Max: csis.StartAddrSlots - 1}
	}

	offset := uint32(csis.StartAddrSlot0)
	if slot > 0 {
		offset = csis.StartAddrSlotNBase + 4*(slot-1)
	}
	c.bus.Write32(offset, addr)
	return nil
}

// ConfigureDMACommon programs the DMA block shared by every CSIS instance:
// arbitration priority, Q-channel clock, SRAM split and SRAM matrix.
// A nil bus means the SoC has no common block and is ignored.
func ConfigureDMACommon(b regmap.Bus) {
	if b == nil {
		return
	}

	arb := csis.DMARegisters[csis.DMARegArbPri]
	val := regmap.GetReg(b, arb)
	val = regmap.SetFieldValue(val, csis.FieldArbPri1, csis.ArbPri1Default)
	val = regmap.SetFieldValue(val, csis.FieldArbPri0, csis.ArbPri0Default)
	regmap.SetReg(b, arb, val)

	regmap.SetField(b, csis.DMARegisters[csis.DMARegCommonCtrl], csis.FieldIPProcessing, 1)

	split := csis.DMARegisters[csis.DMARegSRAMSplit]
	val = regmap.GetReg(b, split)
	val = regmap.SetFieldValue(val, csis.FieldSRAM1Split, csis.SRAMSplitDefault)
	val = regmap.SetFieldValue(val, csis.FieldSRAM0Split, csis.SRAMSplitDefault)
	regmap.SetReg(b, split, val)

	regmap.SetField(b, csis.DMARegisters[csis.DMARegMatrix], csis.FieldDMAMatrix, csis.MatrixDefault)
}
