package csis

// Hardware data-format codes (MIPI CSI-2 data types) written to DATAFORMAT.
const (
	HWFormatEmbedded8Bit = 0x12
	HWFormatYUV420_8Bit  = 0x18
	HWFormatYUV420_10Bit = 0x19
	HWFormatYUV422_8Bit  = 0x1E
	HWFormatYUV422_10Bit = 0x1F
	HWFormatRGB565       = 0x22
	HWFormatRGB666       = 0x23
	HWFormatRGB888       = 0x24
	HWFormatRAW6         = 0x28
	HWFormatRAW7         = 0x29
	HWFormatRAW8         = 0x2A
	HWFormatRAW10        = 0x2B
	HWFormatRAW12        = 0x2C
	HWFormatRAW14        = 0x2D
	HWFormatUser         = 0x30
)

// fourcc builds a V4L2 pixel format code.
func fourcc(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// V4L2 pixel formats that influence DMA setup.
var (
	PixFmtSBGGR8  = fourcc('B', 'A', '8', '1')
	PixFmtSGBRG8  = fourcc('G', 'B', 'R', 'G')
	PixFmtSGRBG8  = fourcc('G', 'R', 'B', 'G')
	PixFmtSRGGB8  = fourcc('R', 'G', 'G', 'B')
	PixFmtSBGGR10 = fourcc('B', 'G', '1', '0')
	PixFmtSGRBG10 = fourcc('B', 'A', '1', '0')
	PixFmtSBGGR12 = fourcc('B', 'G', '1', '2')
	PixFmtSGRBG12 = fourcc('B', 'A', '1', '2')
	PixFmtYUYV    = fourcc('Y', 'U', 'Y', 'V')
	PixFmtNV21    = fourcc('N', 'V', '2', '1')
)

// Field values.
const (
	// PixelMode is the pixel-per-clock mode programmed for every channel
	PixelMode = 0x1

	// DMAInputPath selects the link data after the virtual channel demux
	DMAInputPath = 0x1

	// PHYSelDPHY and PHYSelCPHY are the PHY_SEL values
	PHYSelDPHY = 0
	PHYSelCPHY = 1

	// UpdateShadowAll latches every shadow register group
	UpdateShadowAll = 0xF

	DMAPackNormal = 0
	DMAPack12     = 1

	DMADim2D = 0
	DMADim1D = 1

	DMAStorageLegacy = 0
	DMAStoragePacket = 1

	// DMADataFormatReserved is the reset value of DMA_N_DATAFORMAT
	DMADataFormatReserved = 3
)

// S_DPHYCTL (PHY_SCTRL_0) skew calibration bits.
const (
	// SkewCalEnable enables slave skew calibration
	SkewCalEnable = 1 << 0

	// CoarseDelayBit12 and CoarseDelayBit13 select the coarse delay band:
	//   11: 1.5Gbps ~ 2Gbps (reset default)
	//   10:   2Gbps ~ 3Gbps
	//   01:   3Gbps ~ 4.5Gbps
	CoarseDelayBit12 = 1 << 12
	CoarseDelayBit13 = 1 << 13
)

// Interrupt masks.
const (
	// ErrMask0 selects the error bits of CSIS_INT_SRC0
	ErrMask0 = 0xF00FFFF7

	// ErrMask1 selects the error bits of CSIS_INT_SRC1
	ErrMask1 = 0x000FFFF0

	// DMAErrMask selects the error bits of DMA_INT_SRC
	DMAErrMask = 0x00030F00

	// IRQMask0 is the default CSIS_INT_MSK0 value: frame start/end plus every error
	IRQMask0 = 0xFFFFFFF7

	// DMAIRQMask is the default DMA_INT_MASK value
	DMAIRQMask = 0x00030FFF
)

// Common DMA block defaults.
const (
	// ArbPri1Default gives CSIS2 DMA the high priority on arbiter 1
	ArbPri1Default = 0x1

	// ArbPri0Default gives CSIS1 DMA the high priority on arbiter 0
	ArbPri0Default = 0x2

	// SRAMSplitDefault splits each 10KB SRAM in half (unit: 16 bytes, max 640)
	SRAMSplitDefault = 0x140

	// MatrixDefault maps CSIS0..3 to SRAM0_0, SRAM0_0, SRAM1_0, SRAM1_1
	MatrixDefault = 0x0
)

// ResetValues lists the registers whose reset value is not zero.
var ResetValues = map[RegID]uint32{
	RegDMA0Fmt:                         DMADataFormatReserved,
	RegDMA0Fmt + DMAChannelStride:      DMADataFormatReserved,
	RegDMA0Fmt + 2*DMAChannelStride:    DMADataFormatReserved,
	RegDMA0Fmt + 3*DMAChannelStride:    DMADataFormatReserved,
	RegDMA0ActFmt:                      DMADataFormatReserved,
	RegDMA0ActFmt + DMAChannelStride:   DMADataFormatReserved,
	RegDMA0ActFmt + 2*DMAChannelStride: DMADataFormatReserved,
	RegDMA0ActFmt + 3*DMAChannelStride: DMADataFormatReserved,
	RegPHYSCtrl0:                       CoarseDelayBit12 | CoarseDelayBit13,
}
