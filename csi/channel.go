package csi

import (
	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

// otfFormats maps the raw formats channel 0 can feed on the fly to the
// OTF_FORMAT code.
var otfFormats = map[uint32]uint32{
	csis.HWFormatRAW10: 0,
	csis.HWFormatRAW12: 1,
	csis.HWFormatRAW14: 2,
	csis.HWFormatRAW8:  3,
}

// dmaFormat is how one hardware format is stored by the DMA.
type dmaFormat struct {
	storage uint32

	// code is only meaningful in legacy storage mode
	code uint32
}

var dmaFormats = map[uint32]dmaFormat{
	csis.HWFormatRAW10: {storage: csis.DMAStorageLegacy, code: 0},
	csis.HWFormatRAW12: {storage: csis.DMAStorageLegacy, code: 1},
	csis.HWFormatRAW14: {storage: csis.DMAStorageLegacy, code: 2},

	csis.HWFormatUser:         {storage: csis.DMAStoragePacket},
	csis.HWFormatEmbedded8Bit: {storage: csis.DMAStoragePacket},
	csis.HWFormatYUV420_8Bit:  {storage: csis.DMAStoragePacket},
	csis.HWFormatYUV420_10Bit: {storage: csis.DMAStoragePacket},
	csis.HWFormatYUV422_8Bit:  {storage: csis.DMAStoragePacket},
	csis.HWFormatYUV422_10Bit: {storage: csis.DMAStoragePacket},
	csis.HWFormatRGB565:       {storage: csis.DMAStoragePacket},
	csis.HWFormatRGB666:       {storage: csis.DMAStoragePacket},
	csis.HWFormatRGB888:       {storage: csis.DMAStoragePacket},
	csis.HWFormatRAW6:         {storage: csis.DMAStoragePacket},
	csis.HWFormatRAW7:         {storage: csis.DMAStoragePacket},
	csis.HWFormatRAW8:         {storage: csis.DMAStoragePacket},
}

// isParallel reports whether a format is carried in parallel mode.
func isParallel(hwFormat uint32) bool {
	return hwFormat == csis.HWFormatYUV420_8Bit || hwFormat == csis.HWFormatYUV422_8Bit
}

// ConfigureChannel programs the link side of a virtual channel: its VC map,
// data format and resolution. Channel 0 also feeds the on-the-fly path,
// which only carries RAW8/10/12/14.
func (c *Controller) ConfigureChannel(ch uint32, cfg VCConfig, width, height uint32) error {
	if err := checkChannel(ch); err != nil {
		c.logError("invalid channel", "channel", ch)
		return err
	}

	otfFormat, otfOK := otfFormats[cfg.HWFormat]
	if ch == 0 && !otfOK {
		c.logError("invalid data format", "channel", ch, "format", cfg.HWFormat)
		return &FormatError{Op: "configure channel", Channel: ch, Format: cfg.HWFormat}
	}

	parallel := uint32(0)
	if isParallel(cfg.HWFormat) {
		parallel = 1
	}

	isp := csis.ISPConfig(ch)
	val := regmap.GetReg(c.bus, isp)
	val = regmap.SetFieldValue(val, csis.FieldVirtualChannel, cfg.Map)
	val = regmap.SetFieldValue(val, csis.FieldDataFormat, cfg.HWFormat)
	val = regmap.SetFieldValue(val, csis.FieldParallel, parallel)
	val = regmap.SetFieldValue(val, csis.FieldPixelMode, csis.PixelMode)
	regmap.SetReg(c.bus, isp, val)

	resol := csis.ISPResol(ch)
	val = regmap.GetReg(c.bus, resol)
	val = regmap.SetFieldValue(val, csis.FieldVResol, height)
	val = regmap.SetFieldValue(val, csis.FieldHResol, width)
	regmap.SetReg(c.bus, resol, val)

	if ch == 0 {
		regmap.SetField(c.bus, csis.Reg(csis.RegOTFFormat), csis.FieldOTFFormat, otfFormat)
	}

	c.logDebug("channel configured",
		"channel", ch,
		"map", cfg.Map,
		"format", cfg.HWFormat,
		"width", width,
		"height", height,
	)
	return nil
}

// ConfigureChannelDMA programs how the DMA of a virtual channel stores
// frames of img, received as hwFormat.
func (c *Controller) ConfigureChannelDMA(ch uint32, img Image, hwFormat uint32) error {
	if err := checkChannel(ch); err != nil {
		c.logError("invalid channel", "channel", ch)
		return err
	}

	format, ok := dmaFormats[hwFormat]
	if !ok {
		c.logError("invalid data format", "channel", ch, "format", hwFormat)
		return &FormatError{Op: "configure dma", Channel: ch, Format: hwFormat}
	}

	pack := uint32(csis.DMAPackNormal)
	if img.PixelFormat == csis.PixFmtSBGGR10 || img.PixelFormat == csis.PixFmtSBGGR12 {
		pack = csis.DMAPack12
	}

	dim := uint32(csis.DMADim2D)
	if img.PixelFormat == csis.PixFmtSGRBG8 || img.PixelFormat == csis.PixFmtSBGGR8 {
		dim = csis.DMADim1D
	}

	fmtReg := csis.DMAFmt(ch)
	val := regmap.GetReg(c.bus, fmtReg)
	val = regmap.SetFieldValue(val, csis.FieldDMADim, dim)
	val = regmap.SetFieldValue(val, csis.FieldDMAPack12, pack)
	val = regmap.SetFieldValue(val, csis.FieldDMAStorageMode, format.storage)

	if format.storage == csis.DMAStorageLegacy {
		// data format and resolution are only used in legacy storage mode
		val = regmap.SetFieldValue(val, csis.FieldDMADataFormat, format.code)
		regmap.SetReg(c.bus, fmtReg, val)
		regmap.SetField(c.bus, csis.DMAResol(ch), csis.FieldDMAResol, img.Width)
	} else {
		regmap.SetReg(c.bus, fmtReg, val)
	}

	regmap.SetField(c.bus, csis.Reg(csis.RegDMADataCtrl), csis.FieldDMAInputPath, csis.DMAInputPath)

	c.logDebug("channel dma configured",
		"channel", ch,
		"format", hwFormat,
		"pack12", pack == csis.DMAPack12,
		"dim1d", dim == csis.DMADim1D,
		"legacy", format.storage == csis.DMAStorageLegacy,
	)
	return nil
}
