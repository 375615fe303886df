package csi

import (
	"fmt"

	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

// PHYFamily selects the physical layer wired to the receiver.
type PHYFamily int

const (
	// PHYFamilyDPHY is MIPI D-PHY; supports high speed deskew
	PHYFamilyDPHY PHYFamily = iota

	// PHYFamilyCPHY is MIPI C-PHY; reports extra symbol level errors
	PHYFamilyCPHY
)

func (f PHYFamily) String() string {
	switch f {
	case PHYFamilyDPHY:
		return "D-PHY"
	case PHYFamilyCPHY:
		return "C-PHY"
	default:
		return fmt.Sprintf("PHYFamily(%d)", int(f))
	}
}

// SoC selects the platform whose default analog PHY tuning applies.
type SoC int

const (
	// SoCGeneric has no default tuning table
	SoCGeneric SoC = iota

	// SoCExynos8895 applies the Exynos8895 analog defaults
	SoCExynos8895
)

// Revision selects hardware revision quirks.
type Revision int

const (
	// RevisionDefault reports OTF frame start/end from CSIS_INT_SRC0
	RevisionDefault Revision = iota

	// RevisionV4EVT0 reports OTF frame start/end from the DMA interrupt
	// source; the OTF bits are unusable in dual sensor operation
	RevisionV4EVT0
)

// EarlyBufDone selects how buffer-done is signalled before frame end.
type EarlyBufDone int

const (
	// EarlyBufDoneOff uses the regular frame end interrupt
	EarlyBufDoneOff EarlyBufDone = iota

	// EarlyBufDoneSW masks OTF frame end; software signals buffer done
	EarlyBufDoneSW

	// EarlyBufDoneHW masks OTF frame end and unmasks the DMA line end interrupt
	EarlyBufDoneHW
)

// Variant describes the hardware the controller drives. It is resolved once
// in New.
type Variant struct {
	PHY          PHYFamily
	SoC          SoC
	Revision     Revision
	EarlyBufDone EarlyBufDone
}

// phyLayer captures what differs between PHY families.
type phyLayer interface {
	// sel is the PHY_SEL value
	sel() uint32

	// configureLanes programs deskew and data lane enables. It reports
	// whether deskew is active.
	configureLanes(b regmap.Bus, lanes int, speedMbps uint32) bool

	// decodeErrors returns the family specific errors found in CSIS_INT_SRC1
	decodeErrors(src1 uint32) [VCMax]ErrorMask
}

type dphy struct{}

func (dphy) sel() uint32 { return csis.PHYSelDPHY }

func (dphy) configureLanes(b regmap.Bus, lanes int, speedMbps uint32) bool {
	deskew := false

	// skew calibration is only needed above 1.5Gbps
	if speedMbps > 1500 {
		deskew = true

		val := regmap.GetReg(b, csis.PHYSCtrl(0))
		val |= csis.SkewCalEnable
		if speedMbps > 3000 {
			val &^= csis.CoarseDelayBit13
		} else if speedMbps > 2000 {
			val &^= csis.CoarseDelayBit12
		}
		regmap.SetReg(b, csis.PHYSCtrl(0), val)

		regmap.SetField(b, csis.Reg(csis.RegPHYCmnCtrl), csis.FieldSByteClkEnable, 1)
	}

	regmap.SetField(b, csis.Reg(csis.RegCmnCtrl), csis.FieldDeskewEnable, 1)
	regmap.SetField(b, csis.Reg(csis.RegPHYCmnCtrl), csis.FieldEnableDat, ActiveLaneMask(lanes))

	return deskew
}

func (dphy) decodeErrors(uint32) [VCMax]ErrorMask { return [VCMax]ErrorMask{} }

type cphy struct{}

func (cphy) sel() uint32 { return csis.PHYSelCPHY }

func (cphy) configureLanes(regmap.Bus, int, uint32) bool { return false }

func (cphy) decodeErrors(src1 uint32) [VCMax]ErrorMask {
	var errs [VCMax]ErrorMask
	spread(&errs, regmap.FieldValue(src1, csis.FieldRxInvalidCodeHS), ErrorInvalidCodeHS)
	spread(&errs, regmap.FieldValue(src1, csis.FieldErrSOTSyncHS), ErrorSOTSyncHS)
	spread(&errs, regmap.FieldValue(src1, csis.FieldMalCRC), ErrorMalCRC)
	spread(&errs, regmap.FieldValue(src1, csis.FieldErrCRCCPHY), ErrorCRC)
	return errs
}

// frameEvents captures where a revision reports OTF frame start/end.
type frameEvents interface {
	otf(otfSrc0 uint32, dmaStart, dmaEnd VCMask) (start, end VCMask)
}

type otfFromLink struct{}

func (otfFromLink) otf(otfSrc0 uint32, _, _ VCMask) (VCMask, VCMask) {
	return VCMask(regmap.FieldValue(otfSrc0, csis.FieldFrameStart)),
		VCMask(regmap.FieldValue(otfSrc0, csis.FieldFrameEnd))
}

type otfFromDMA struct{}

func (otfFromDMA) otf(_ uint32, dmaStart, dmaEnd VCMask) (VCMask, VCMask) {
	return dmaStart, dmaEnd
}

func (v Variant) phyLayer() phyLayer {
	if v.PHY == PHYFamilyCPHY {
		return cphy{}
	}
	return dphy{}
}

func (v Variant) frameEvents() frameEvents {
	if v.Revision == RevisionV4EVT0 {
		return otfFromDMA{}
	}
	return otfFromLink{}
}
