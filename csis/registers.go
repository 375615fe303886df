package csis

import (
	"strconv"

	"github.com/moffa90/go-csis/regmap"
)

// RegID indexes Registers.
type RegID int

// Common registers.
const (
	RegVersion RegID = iota
	RegCmnCtrl
	RegClkCtrl
	RegIntMsk0
	RegIntSrc0
	RegIntMsk1
	RegIntSrc1
	RegOTFFormat
	RegDMACmnCtrl
	RegDMADataCtrl
	RegDMAIntMask
	RegDMAIntSrc
	RegPHYCmnCtrl
	regCommonCount
)

// Virtual channel limits.
const (
	// VCMax is the number of virtual channels
	VCMax = 4

	// PHYCtrlCount is the number of entries in each analog PHY control table
	PHYCtrlCount = 12

	// DMAAddrSlots is the number of address alias registers per channel
	DMAAddrSlots = 8
)

// Strides between the blocks of consecutive channels, in RegIDs.
const (
	ISPChannelStride RegID = 3
	DMAChannelStride RegID = 17
)

// ISP block of channel 0.
const (
	RegISPConfigCh0 = regCommonCount + iota
	RegISPResolCh0
	RegISPSyncCh0
)

// Line interrupt ratio and analog PHY control tables.
const (
	RegLineIntrCh0 = RegISPConfigCh0 + VCMax*ISPChannelStride
	RegPHYBCtrl0   = RegLineIntrCh0 + VCMax
	RegPHYSCtrl0   = RegPHYBCtrl0 + PHYCtrlCount
)

// DMA block of channel 0.
const (
	RegDMA0Ctrl = RegPHYSCtrl0 + PHYCtrlCount + iota
	RegDMA0Fmt
	RegDMA0Resol
	RegDMA0Skip
	RegDMA0Addr1
	_
	_
	_
	_
	_
	_
	_
	RegDMA0ActCtrl
	RegDMA0ActFmt
	RegDMA0ActSkip
	RegDMA0ByteCnt
	RegDMA0FrameCnt
)

// RegCount is the number of registers in Registers.
const RegCount = RegDMA0Ctrl + VCMax*DMAChannelStride

// Register window geometry.
const (
	ispBase       = 0x0040
	ispSpan       = 0x10
	lineIntrBase  = 0x0090
	phyBCtrlBase  = 0x1030
	phySCtrlBase  = 0x1060
	dmaBase       = 0x2000
	dmaSpan       = 0x100
	dmaAddrOffset = 0x10

	// WindowSize is the size of the CSIS register window in bytes
	WindowSize = dmaBase + VCMax*dmaSpan
)

// Legacy start-address window used by SetStartAddress.
const (
	// StartAddrSlot0 is the byte offset of the slot 0 start address
	StartAddrSlot0 = 0x0030

	// StartAddrSlotNBase is the byte offset of the slot 1 start address;
	// slot n lives at StartAddrSlotNBase + 4*(n-1)
	StartAddrSlotNBase = 0x0200

	// StartAddrSlots is the number of slots in the start address window
	StartAddrSlots = 8
)

// Registers is the CSIS v5.0 register table, indexed by RegID.
var Registers = buildRegisters()

func buildRegisters() []regmap.Register {
	regs := make([]regmap.Register, RegCount)

	regs[RegVersion] = regmap.Register{Name: "CSIS_VERSION", Offset: 0x0000, Access: regmap.ReadOnly}
	regs[RegCmnCtrl] = regmap.Register{Name: "CSIS_CMN_CTRL", Offset: 0x0004}
	regs[RegClkCtrl] = regmap.Register{Name: "CSIS_CLK_CTRL", Offset: 0x0008}
	regs[RegIntMsk0] = regmap.Register{Name: "CSIS_INT_MSK0", Offset: 0x0010}
	regs[RegIntSrc0] = regmap.Register{Name: "CSIS_INT_SRC0", Offset: 0x0014, Access: regmap.WriteOneToClear}
	regs[RegIntMsk1] = regmap.Register{Name: "CSIS_INT_MSK1", Offset: 0x0018}
	regs[RegIntSrc1] = regmap.Register{Name: "CSIS_INT_SRC1", Offset: 0x001C, Access: regmap.WriteOneToClear}
	regs[RegOTFFormat] = regmap.Register{Name: "OTF_FORMAT", Offset: 0x0080}
	regs[RegDMACmnCtrl] = regmap.Register{Name: "DMA_CMN_CTRL", Offset: 0x0100}
	regs[RegDMADataCtrl] = regmap.Register{Name: "DMA_DATA_CTRL", Offset: 0x0104}
	regs[RegDMAIntMask] = regmap.Register{Name: "DMA_INT_MASK", Offset: 0x0108}
	regs[RegDMAIntSrc] = regmap.Register{Name: "DMA_INT_SRC", Offset: 0x010C, Access: regmap.WriteOneToClear}
	regs[RegPHYCmnCtrl] = regmap.Register{Name: "PHY_CMN_CTRL", Offset: 0x1000}

	for ch := 0; ch < VCMax; ch++ {
		id := RegISPConfigCh0 + RegID(ch)*ISPChannelStride
		off := uint32(ispBase + ch*ispSpan)
		regs[id] = regmap.Register{Name: chName("ISP_CONFIG_CH", ch), Offset: off}
		regs[id+1] = regmap.Register{Name: chName("ISP_RESOL_CH", ch), Offset: off + 0x4}
		regs[id+2] = regmap.Register{Name: chName("ISP_SYNC_CH", ch), Offset: off + 0x8}

		regs[RegLineIntrCh0+RegID(ch)] = regmap.Register{
			Name:   chName("LINE_INTR_CH", ch),
			Offset: uint32(lineIntrBase + ch*4),
		}
	}

	for n := 0; n < PHYCtrlCount; n++ {
		regs[RegPHYBCtrl0+RegID(n)] = regmap.Register{Name: chName("PHY_BCTRL_", n), Offset: uint32(phyBCtrlBase + n*4)}
		regs[RegPHYSCtrl0+RegID(n)] = regmap.Register{Name: chName("PHY_SCTRL_", n), Offset: uint32(phySCtrlBase + n*4)}
	}

	for ch := 0; ch < VCMax; ch++ {
		id := RegDMA0Ctrl + RegID(ch)*DMAChannelStride
		off := uint32(dmaBase + ch*dmaSpan)
		prefix := chName("DMA", ch)

		regs[id] = regmap.Register{Name: prefix + "_CTRL", Offset: off}
		regs[id+1] = regmap.Register{Name: prefix + "_FMT", Offset: off + 0x04}
		regs[id+2] = regmap.Register{Name: prefix + "_RESOL", Offset: off + 0x08}
		regs[id+3] = regmap.Register{Name: prefix + "_SKIP", Offset: off + 0x0C}
		for slot := 0; slot < DMAAddrSlots; slot++ {
			regs[id+4+RegID(slot)] = regmap.Register{
				Name:   chName(prefix+"_ADDR", slot+1),
				Offset: off + dmaAddrOffset + uint32(slot*4),
			}
		}
		regs[id+12] = regmap.Register{Name: prefix + "_ACT_CTRL", Offset: off + 0x30, Access: regmap.ReadOnly}
		regs[id+13] = regmap.Register{Name: prefix + "_ACT_FMT", Offset: off + 0x34, Access: regmap.ReadOnly}
		regs[id+14] = regmap.Register{Name: prefix + "_ACT_SKIP", Offset: off + 0x38, Access: regmap.ReadOnly}
		regs[id+15] = regmap.Register{Name: prefix + "_BYTE_CNT", Offset: off + 0x3C, Access: regmap.ReadOnly}
		regs[id+16] = regmap.Register{Name: prefix + "_FRAME_CNT", Offset: off + 0x40, Access: regmap.ReadOnly}
	}

	return regs
}

func chName(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// Reg returns the descriptor of a register.
func Reg(id RegID) regmap.Register {
	return Registers[id]
}

// ISPConfig returns the format register of a virtual channel.
func ISPConfig(ch uint32) regmap.Register {
	return Registers[RegISPConfigCh0+RegID(ch)*ISPChannelStride]
}

// ISPResol returns the resolution register of a virtual channel.
func ISPResol(ch uint32) regmap.Register {
	return Registers[RegISPResolCh0+RegID(ch)*ISPChannelStride]
}

// LineIntr returns the line interrupt ratio register of a virtual channel.
func LineIntr(ch uint32) regmap.Register {
	return Registers[RegLineIntrCh0+RegID(ch)]
}

// PHYBCtrl returns entry n of the B-type analog PHY control table.
func PHYBCtrl(n uint32) regmap.Register {
	return Registers[RegPHYBCtrl0+RegID(n)]
}

// PHYSCtrl returns entry n of the S-type analog PHY control table.
func PHYSCtrl(n uint32) regmap.Register {
	return Registers[RegPHYSCtrl0+RegID(n)]
}

// DMACtrl returns the DMA control register of a virtual channel.
func DMACtrl(ch uint32) regmap.Register {
	return Registers[RegDMA0Ctrl+RegID(ch)*DMAChannelStride]
}

// DMAFmt returns the DMA format register of a virtual channel.
func DMAFmt(ch uint32) regmap.Register {
	return Registers[RegDMA0Fmt+RegID(ch)*DMAChannelStride]
}

// DMAResol returns the DMA resolution register of a virtual channel.
func DMAResol(ch uint32) regmap.Register {
	return Registers[RegDMA0Resol+RegID(ch)*DMAChannelStride]
}

// DMAAddr returns address alias register slot (0-based) of a virtual channel.
func DMAAddr(ch, slot uint32) regmap.Register {
	return Registers[RegDMA0Addr1+RegID(ch)*DMAChannelStride+RegID(slot)]
}

// DMAActCtrl returns the read-only active DMA status register of a virtual channel.
func DMAActCtrl(ch uint32) regmap.Register {
	return Registers[RegDMA0ActCtrl+RegID(ch)*DMAChannelStride]
}

// Common DMA block registers.
const (
	DMARegCommonCtrl RegID = iota
	DMARegArbPri
	DMARegSRAMSplit
	DMARegMatrix
	DMARegCount
)

// DMARegisters is the table of the common DMA block, indexed by the DMAReg* IDs.
var DMARegisters = []regmap.Register{
	DMARegCommonCtrl: {Name: "COMMON_DMA_CTRL", Offset: 0x0000},
	DMARegArbPri:     {Name: "COMMON_DMA_ARB_PRI", Offset: 0x0004},
	DMARegSRAMSplit:  {Name: "COMMON_DMA_SRAM_SPLIT", Offset: 0x0008},
	DMARegMatrix:     {Name: "COMMON_DMA_MATRIX", Offset: 0x000C},
}

// DMAWindowSize is the size of the common DMA register window in bytes.
const DMAWindowSize = 0x10
