package csi

import (
	"fmt"
	"io"

	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
	"github.com/moffa90/go-csis/tune"
)

// Start resets the receiver, programs the settle time and enables it.
// Reset turns every DMA output off, so DMA outputs must be enabled after
// Start returns.
func (c *Controller) Start(settle uint32) error {
	c.logInfo("starting", "phy", c.config.Variant.PHY.String(), "settle", settle)

	if err := c.Reset(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	c.reportPhase(PhaseReset)

	c.SetSettle(settle)
	c.reportPhase(PhaseSettle)

	c.Enable()
	c.reportPhase(PhaseEnabled)

	c.logInfo("started")
	return nil
}

// Stop disables the receiver.
func (c *Controller) Stop() {
	c.Disable()
	c.reportPhase(PhaseDisabled)
	c.logInfo("stopped")
}

// DumpHeader is the first line written by Dump.
const DumpHeader = "CSI 5.0 DUMP"

// Dump writes DumpHeader followed by the value of every register to w. It
// only reads the bus.
func (c *Controller) Dump(w io.Writer) error {
	if _, err := fmt.Fprintln(w, DumpHeader); err != nil {
		return err
	}
	return regmap.Dump(w, c.bus, csis.Registers)
}

// ApplyTune writes the register overrides of a tune table. The table must
// belong to instance id, and every entry must fall inside the register
// window. Nothing is written if either check fails.
func (c *Controller) ApplyTune(id InstanceID, t *tune.Table) error {
	if t == nil {
		c.logError("tune table is nil", "instance", uint32(id))
		return fmt.Errorf("tune table cannot be nil")
	}

	if t.Instance() != uint32(id) {
		c.logError("tune table instance mismatch", "instance", uint32(id), "magic", t.Magic)
		return &InstanceError{Instance: uint32(id), Magic: t.Magic}
	}

	for _, e := range t.Entries {
		if e.Offset() >= csis.WindowSize {
			c.logError("tune entry outside register window", "index", e.Index)
			return &IndexError{Table: "tune entry", Index: uint32(e.Index), Max: csis.WindowSize/4 - 1}
		}
	}

	for _, e := range t.Entries {
		c.bus.Write32(e.Offset(), e.Value)
		c.logInfo("tune override applied", "instance", uint32(id), "index", e.Index, "value", e.Value)
	}
	return nil
}
