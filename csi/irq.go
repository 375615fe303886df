package csi

import (
	"strings"

	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

// ErrorMask is a set of receiver errors seen on one virtual channel.
type ErrorMask uint32

// Error kinds.
const (
	ErrorSOT ErrorMask = 1 << iota
	ErrorLostFS
	ErrorLostFE
	ErrorOverflow
	ErrorWrongConfig
	ErrorECC
	ErrorCRC
	ErrorID
	ErrorInvalidCodeHS
	ErrorSOTSyncHS
	ErrorMalCRC
	ErrorOTFOverlap
	ErrorDMAFIFOFull
	ErrorDMAAbortDone
)

var errorNames = [...]string{
	"SOT",
	"LOST_FS",
	"LOST_FE",
	"OVERFLOW",
	"WRONG_CFG",
	"ECC",
	"CRC",
	"ID",
	"INVALID_CODE_HS",
	"SOT_SYNC_HS",
	"MAL_CRC",
	"OTF_OVERLAP",
	"DMA_FIFO_FULL",
	"DMA_ABORT_DONE",
}

// Has reports whether every bit of e is set in m.
func (m ErrorMask) Has(e ErrorMask) bool {
	return m&e == e
}

func (m ErrorMask) String() string {
	if m == 0 {
		return "none"
	}
	var names []string
	for i, name := range errorNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// VCMask holds one bit per virtual channel.
type VCMask uint8

// Has reports whether the bit of virtual channel vc is set.
func (m VCMask) Has(vc uint32) bool {
	return vc < VCMax && m&(1<<vc) != 0
}

// IRQSource is a decoded snapshot of the interrupt source registers.
type IRQSource struct {
	DMAStart VCMask
	DMAEnd   VCMask
	OTFStart VCMask
	OTFEnd   VCMask
	LineEnd  VCMask

	// Errors holds the errors of each virtual channel
	Errors [VCMax]ErrorMask

	// ErrFlag is set when any error bit was raised
	ErrFlag bool
}

// spread adds e to the mask of every virtual channel whose bit is set in bits.
func spread(errs *[VCMax]ErrorMask, bits uint32, e ErrorMask) {
	for i := 0; i < VCMax; i++ {
		if bits&(1<<i) != 0 {
			errs[i] |= e
		}
	}
}

// ReadIRQSource reads and decodes the interrupt source registers. When clear
// is set the read values are written back, acknowledging them.
//
// ReadIRQSource does not allocate and is safe to call from the interrupt
// service path.
func (c *Controller) ReadIRQSource(clear bool) IRQSource {
	src0 := regmap.GetReg(c.bus, csis.Reg(csis.RegIntSrc0))
	src1 := regmap.GetReg(c.bus, csis.Reg(csis.RegIntSrc1))
	dma := regmap.GetReg(c.bus, csis.Reg(csis.RegDMAIntSrc))

	if clear {
		regmap.SetReg(c.bus, csis.Reg(csis.RegIntSrc0), src0)
		regmap.SetReg(c.bus, csis.Reg(csis.RegIntSrc1), src1)
		regmap.SetReg(c.bus, csis.Reg(csis.RegDMAIntSrc), dma)
	}

	var src IRQSource
	src.DMAStart = VCMask(regmap.FieldValue(dma, csis.FieldDMAFrameStart))
	src.DMAEnd = VCMask(regmap.FieldValue(dma, csis.FieldDMAFrameEnd))
	src.OTFStart, src.OTFEnd = c.events.otf(src0, src.DMAStart, src.DMAEnd)
	src.LineEnd = VCMask(regmap.FieldValue(src1, csis.FieldLineEnd))
	src.ErrFlag = c.decodeErrors(src0, src1, dma, &src.Errors)

	return src
}

// decodeErrors fills errs from the raw sources and reports whether any
// error bit was set.
func (c *Controller) decodeErrors(src0, src1, dma uint32, errs *[VCMax]ErrorMask) bool {
	errSrc0 := src0 & csis.ErrMask0
	errSrc1 := src1 & csis.ErrMask1
	errDMA := dma & csis.DMAErrMask
	flag := false

	if errSrc0 != 0 || errSrc1 != 0 {
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrSOTHS), ErrorSOT)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrLostFS), ErrorLostFS)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrLostFE), ErrorLostFE)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrOver), ErrorOverflow)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrWrongCfg), ErrorWrongConfig)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrECC), ErrorECC)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrCRCDPHY), ErrorCRC)
		spread(errs, regmap.FieldValue(errSrc0, csis.FieldErrID), ErrorID)
		extra := c.phy.decodeErrors(errSrc1)
		for i := range errs {
			errs[i] |= extra[i]
		}
		flag = true
	}

	if errDMA != 0 {
		spread(errs, regmap.FieldValue(errDMA, csis.FieldDMAOTFOverlap), ErrorOTFOverlap)

		// FIFO full and abort done are not per channel
		if regmap.FieldValue(errDMA, csis.FieldDMAError) != 0 {
			spread(errs, 1<<VCMax-1, ErrorDMAFIFOFull)
		}
		if regmap.FieldValue(errDMA, csis.FieldDMAAbortDone) != 0 {
			spread(errs, 1<<VCMax-1, ErrorDMAAbortDone)
		}
		flag = true
	}

	return flag
}

// SetIRQMask unmasks the default interrupts when on is set, and masks every
// interrupt otherwise.
func (c *Controller) SetIRQMask(on bool) {
	otfMask, dmaMask := uint32(0), uint32(0)

	if on {
		otfMask = csis.IRQMask0
		dmaMask = csis.DMAIRQMask

		switch c.config.Variant.EarlyBufDone {
		case EarlyBufDoneHW:
			dmaMask = regmap.SetFieldValue(dmaMask, csis.FieldDMALineEnd, 0x1)
			otfMask = regmap.SetFieldValue(otfMask, csis.FieldFrameEnd, 0)
		case EarlyBufDoneSW:
			otfMask = regmap.SetFieldValue(otfMask, csis.FieldFrameEnd, 0)
		}
	}

	regmap.SetReg(c.bus, csis.Reg(csis.RegIntMsk0), otfMask)
	regmap.SetReg(c.bus, csis.Reg(csis.RegDMAIntMask), dmaMask)
	c.logDebug("irq mask set", "otf", otfMask, "dma", dmaMask)
}
