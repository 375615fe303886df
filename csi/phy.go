package csi

import (
	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

// laneSpeedMargin is the protocol overhead, in percent, added to the raw
// pixel rate when estimating the lane speed.
const laneSpeedMargin = 15

// PHYGroup selects one of the two analog PHY control tables.
type PHYGroup int

const (
	// PHYGroupB is the B-type (PHY_BCTRL_n) table
	PHYGroupB PHYGroup = iota

	// PHYGroupS is the S-type (PHY_SCTRL_n) table
	PHYGroupS
)

func (g PHYGroup) String() string {
	if g == PHYGroupS {
		return "PHY S control"
	}
	return "PHY B control"
}

// ControlID names a runtime control handled by SetControl.
type ControlID int

const (
	// ControlInterleaveMode sets the virtual channel interleave mode
	ControlInterleaveMode ControlID = iota

	// ControlLineRatio sets the line interrupt ratio
	ControlLineRatio

	// ControlDMAAbortReq requests a DMA abort
	ControlDMAAbortReq

	// ControlEnableLineIRQ unmasks the line end interrupt
	ControlEnableLineIRQ
)

// Reset asserts the software reset and waits for the hardware to release it,
// polling every PollInterval up to PollAttempts times. On success the DMA
// output of every virtual channel is disabled.
func (c *Controller) Reset() error {
	cmn := csis.Reg(csis.RegCmnCtrl)
	regmap.SetField(c.bus, cmn, csis.FieldSWReset, 1)

	for poll := 1; poll <= c.config.PollAttempts; poll++ {
		c.config.Sleep(c.config.PollInterval)
		if regmap.GetField(c.bus, cmn, csis.FieldSWReset) != 1 {
			for vc := uint32(0); vc < VCMax; vc++ {
				c.setOutputEnable(vc, false)
			}
			c.logDebug("reset done", "polls", poll)
			return nil
		}
	}

	c.logError("reset failed", "polls", c.config.PollAttempts)
	return &ResetTimeoutError{Attempts: c.config.PollAttempts}
}

// SetSettle programs the D-PHY HS settle time and enables settle control.
func (c *Controller) SetSettle(settle uint32) {
	phy := csis.Reg(csis.RegPHYCmnCtrl)
	regmap.SetField(c.bus, phy, csis.FieldHSSettle, settle)
	regmap.SetField(c.bus, phy, csis.FieldSClkSettleCtl, 1)
}

// SetPHYCtrl writes entry index of an analog PHY control table.
func (c *Controller) SetPHYCtrl(group PHYGroup, index uint32, value uint32) error {
	if index >= PHYCtrlCount {
		c.logError("invalid phy control index", "group", group.String(), "index", index)
		return &IndexError{Table: group.String(), Index: index, Max: PHYCtrlCount - 1}
	}
	c.writePHYCtrl(group, index, value)
	return nil
}

func (c *Controller) writePHYCtrl(group PHYGroup, index uint32, value uint32) {
	if group == PHYGroupS {
		regmap.SetField(c.bus, csis.PHYSCtrl(index), csis.FieldSPHYCtrl, value)
	} else {
		regmap.SetField(c.bus, csis.PHYBCtrl(index), csis.FieldBPHYCtrl, value)
	}
}

// ApplyDefaultPHYTuning writes the analog defaults of the configured SoC for
// the given instance. It does nothing on SoCs without defaults.
func (c *Controller) ApplyDefaultPHYTuning(id InstanceID) {
	settings := defaultPHYTuning[tuningKey{soc: c.config.Variant.SoC, group: groupOf(id)}]
	for _, s := range settings {
		c.writePHYCtrl(s.group, s.index, s.value)
	}
	if len(settings) > 0 {
		c.logDebug("default phy tuning applied", "instance", uint32(id), "entries", len(settings))
	}
}

// ActiveLaneMask returns the data lane enable mask for a lane count.
// Counts outside 1..4 enable all four lanes.
func ActiveLaneMask(lanes int) uint32 {
	switch lanes {
	case 1:
		return 0x1
	case 2:
		return 0x3
	case 3:
		return 0x7
	case 4:
		return 0xF
	default:
		return 0xF
	}
}

// LaneSpeedMbps estimates the per-lane bit rate needed to carry img over the
// given number of lanes, including protocol overhead. It is meant for
// diagnostics only.
func LaneSpeedMbps(img Image, lanes int) uint32 {
	if lanes <= 0 {
		return 0
	}
	bits := uint64(img.Width) * uint64(img.Height) * uint64(img.FrameRate) * uint64(img.BitWidth)
	mbps := bits / uint64(lanes) / 1000000
	return uint32(mbps * (100 + laneSpeedMargin) / 100)
}

// ConfigureLanes programs the number of data lanes. On D-PHY it also sets up
// deskew (skew calibration above 1500Mbps) and the data lane enables.
// speedMbps is the link speed the sensor is set to.
func (c *Controller) ConfigureLanes(img Image, lanes int, speedMbps uint32) error {
	if lanes < 1 || lanes > 4 {
		c.logError("invalid lane count", "lanes", lanes)
		return &LaneCountError{Lanes: lanes}
	}

	regmap.SetField(c.bus, csis.Reg(csis.RegCmnCtrl), csis.FieldLaneNumber, uint32(lanes-1))

	deskew := c.phy.configureLanes(c.bus, lanes, speedMbps)

	kv := []interface{}{
		"width", img.Width,
		"height", img.Height,
		"fps", img.FrameRate,
		"lanes", lanes,
		"bits", img.BitWidth,
		"deskew", deskew,
	}
	if deskew {
		kv = append(kv, "mbps", speedMbps)
	} else {
		kv = append(kv, "approx_mbps", LaneSpeedMbps(img, lanes))
	}
	c.logInfo("lanes configured", kv...)

	return nil
}

// SetControl applies a runtime control. An unknown id writes nothing and
// returns a *ControlError, which callers may ignore.
func (c *Controller) SetControl(id ControlID, value uint32) error {
	switch id {
	case ControlInterleaveMode:
		regmap.SetField(c.bus, csis.Reg(csis.RegCmnCtrl), csis.FieldInterleaveMode, value)
	case ControlLineRatio:
		regmap.SetField(c.bus, csis.LineIntr(0), csis.FieldLineIntrChN, value)
	case ControlDMAAbortReq:
		regmap.SetField(c.bus, csis.Reg(csis.RegDMACmnCtrl), csis.FieldDMAAbortReq, value)
	case ControlEnableLineIRQ:
		regmap.SetField(c.bus, csis.Reg(csis.RegIntMsk1), csis.FieldLineEnd, value)
	default:
		c.logError("control id is invalid", "id", int(id))
		return &ControlError{ID: id}
	}
	return nil
}

// Enable latches the shadow registers, selects the PHY, turns the PHY clock
// on and enables the receiver, in that order.
func (c *Controller) Enable() {
	cmn := csis.Reg(csis.RegCmnCtrl)
	phy := csis.Reg(csis.RegPHYCmnCtrl)

	regmap.SetField(c.bus, cmn, csis.FieldUpdateShadow, csis.UpdateShadowAll)
	regmap.SetField(c.bus, cmn, csis.FieldPHYSel, c.phy.sel())
	regmap.SetField(c.bus, phy, csis.FieldEnableClk, 1)
	regmap.SetField(c.bus, cmn, csis.FieldCSIEn, 1)
}

// Disable turns the PHY clock and data lanes off, then disables the receiver.
func (c *Controller) Disable() {
	cmn := csis.Reg(csis.RegCmnCtrl)
	phy := csis.Reg(csis.RegPHYCmnCtrl)

	regmap.SetField(c.bus, phy, csis.FieldEnableClk, 0)
	regmap.SetField(c.bus, phy, csis.FieldEnableDat, 0)
	regmap.SetField(c.bus, cmn, csis.FieldCSIEn, 0)
}
