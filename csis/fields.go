package csis

import "github.com/moffa90/go-csis/regmap"

// CSIS_CMN_CTRL fields.
var (
	FieldCSIEn          = regmap.Field{Name: "CSI_EN", Shift: 0, Width: 1}
	FieldSWReset        = regmap.Field{Name: "SW_RESET", Shift: 1, Width: 1}
	FieldPHYSel         = regmap.Field{Name: "PHY_SEL", Shift: 2, Width: 1}
	FieldLaneNumber     = regmap.Field{Name: "LANE_NUMBER", Shift: 8, Width: 2}
	FieldInterleaveMode = regmap.Field{Name: "INTERLEAVE_MODE", Shift: 10, Width: 2}
	FieldDeskewEnable   = regmap.Field{Name: "DESKEW_ENABLE", Shift: 12, Width: 1}
	FieldUpdateShadow   = regmap.Field{Name: "UPDATE_SHADOW", Shift: 16, Width: 4}
)

// CSIS_INT_SRC0 / CSIS_INT_MSK0 fields. Four-bit fields carry one bit per
// virtual channel; one-bit fields only report on channel 0.
var (
	FieldErrID       = regmap.Field{Name: "ERR_ID", Shift: 0, Width: 1}
	FieldErrCRCDPHY  = regmap.Field{Name: "ERR_CRC_DPHY", Shift: 1, Width: 1}
	FieldErrECC      = regmap.Field{Name: "ERR_ECC", Shift: 2, Width: 1}
	FieldErrWrongCfg = regmap.Field{Name: "ERR_WRONG_CFG", Shift: 4, Width: 4}
	FieldErrLostFE   = regmap.Field{Name: "ERR_LOST_FE", Shift: 8, Width: 4}
	FieldErrLostFS   = regmap.Field{Name: "ERR_LOST_FS", Shift: 12, Width: 4}
	FieldErrSOTHS    = regmap.Field{Name: "ERR_SOT_HS", Shift: 16, Width: 4}
	FieldFrameEnd    = regmap.Field{Name: "FRAMEEND", Shift: 20, Width: 4}
	FieldFrameStart  = regmap.Field{Name: "FRAMESTART", Shift: 24, Width: 4}
	FieldErrOver     = regmap.Field{Name: "ERR_OVER", Shift: 28, Width: 4}
)

// CSIS_INT_SRC1 / CSIS_INT_MSK1 fields.
var (
	FieldLineEnd         = regmap.Field{Name: "MSK_LINE_END", Shift: 0, Width: 4}
	FieldErrSOTSyncHS    = regmap.Field{Name: "ERRSOTSYNCHS", Shift: 4, Width: 4}
	FieldRxInvalidCodeHS = regmap.Field{Name: "RXINVALIDCODEHS", Shift: 8, Width: 4}
	FieldMalCRC          = regmap.Field{Name: "MAL_CRC", Shift: 12, Width: 4}
	FieldErrCRCCPHY      = regmap.Field{Name: "ERR_CRC_CPHY", Shift: 16, Width: 4}
)

// DMA_INT_SRC / DMA_INT_MASK fields.
var (
	FieldDMAFrameStart = regmap.Field{Name: "MSK_DMA_FRM_START", Shift: 0, Width: 4}
	FieldDMAFrameEnd   = regmap.Field{Name: "MSK_DMA_FRM_END", Shift: 4, Width: 4}
	FieldDMAOTFOverlap = regmap.Field{Name: "DMA_OTF_OVERLAP", Shift: 8, Width: 4}
	FieldDMAError      = regmap.Field{Name: "DMA_ERROR", Shift: 16, Width: 1}
	FieldDMAAbortDone  = regmap.Field{Name: "DMA_ABORT_DONE", Shift: 17, Width: 1}
	FieldDMALineEnd    = regmap.Field{Name: "MSK_DMA_LINE_END", Shift: 20, Width: 4}
)

// Miscellaneous common register fields.
var (
	FieldOTFFormat    = regmap.Field{Name: "OTF_FORMAT", Shift: 0, Width: 2}
	FieldDMAAbortReq  = regmap.Field{Name: "DMA_ABORT_REQ", Shift: 0, Width: 1}
	FieldDMAInputPath = regmap.Field{Name: "DMA_INPUT_PATH", Shift: 0, Width: 2}
	FieldLineIntrChN  = regmap.Field{Name: "LINE_INTR_CH_N", Shift: 0, Width: 32}
)

// ISP_CONFIG_CHn and ISP_RESOL_CHn fields.
var (
	FieldVirtualChannel = regmap.Field{Name: "VIRTUAL_CHANNEL", Shift: 0, Width: 2}
	FieldDataFormat     = regmap.Field{Name: "DATAFORMAT", Shift: 2, Width: 6}
	FieldParallel       = regmap.Field{Name: "PARALLEL", Shift: 11, Width: 1}
	FieldPixelMode      = regmap.Field{Name: "PIXEL_MODE", Shift: 12, Width: 2}
	FieldHResol         = regmap.Field{Name: "HRESOL", Shift: 0, Width: 16}
	FieldVResol         = regmap.Field{Name: "VRESOL", Shift: 16, Width: 16}
)

// PHY_CMN_CTRL and analog control table fields.
var (
	FieldEnableClk      = regmap.Field{Name: "ENABLE_CLK", Shift: 0, Width: 1}
	FieldEnableDat      = regmap.Field{Name: "ENABLE_DAT", Shift: 1, Width: 4}
	FieldSByteClkEnable = regmap.Field{Name: "S_BYTE_CLK_ENABLE", Shift: 8, Width: 1}
	FieldSClkSettleCtl  = regmap.Field{Name: "S_CLKSETTLECTL", Shift: 22, Width: 2}
	FieldHSSettle       = regmap.Field{Name: "HSSETTLE", Shift: 24, Width: 8}
	FieldBPHYCtrl       = regmap.Field{Name: "B_PHYCTRL", Shift: 0, Width: 32}
	FieldSPHYCtrl       = regmap.Field{Name: "S_PHYCTRL", Shift: 0, Width: 32}
)

// DMAn_CTRL, DMAn_FMT, DMAn_RESOL and DMAn_ACT_CTRL fields.
var (
	FieldDMADisable        = regmap.Field{Name: "DMA_N_DISABLE", Shift: 0, Width: 1}
	FieldDMAUpdtPtrEn      = regmap.Field{Name: "DMA_N_UPDT_PTR_EN", Shift: 2, Width: 1}
	FieldDMAUpdtFramePtr   = regmap.Field{Name: "DMA_N_UPDT_FRAMEPTR", Shift: 16, Width: 8}
	FieldDMADataFormat     = regmap.Field{Name: "DMA_N_DATAFORMAT", Shift: 0, Width: 2}
	FieldDMAStorageMode    = regmap.Field{Name: "DMA_N_STORAGE_MODE", Shift: 4, Width: 1}
	FieldDMAPack12         = regmap.Field{Name: "DMA_N_PACK12", Shift: 12, Width: 2}
	FieldDMADim            = regmap.Field{Name: "DMA_N_DIM", Shift: 15, Width: 1}
	FieldDMAResol          = regmap.Field{Name: "DMA_N_RESOL", Shift: 0, Width: 16}
	FieldActiveDMAEnable   = regmap.Field{Name: "ACTIVE_DMA_N_ENABLE", Shift: 0, Width: 1}
	FieldActiveDMAFramePtr = regmap.Field{Name: "ACTIVE_DMA_N_FRAMEPTR", Shift: 2, Width: 3}
)

// Common DMA block fields.
var (
	FieldIPProcessing = regmap.Field{Name: "IP_PROCESSING", Shift: 0, Width: 1}
	FieldArbPri0      = regmap.Field{Name: "DMA_ARB_PRI_0", Shift: 0, Width: 2}
	FieldArbPri1      = regmap.Field{Name: "DMA_ARB_PRI_1", Shift: 4, Width: 2}
	FieldSRAM0Split   = regmap.Field{Name: "DMA_SRAM0_SPLIT", Shift: 0, Width: 11}
	FieldSRAM1Split   = regmap.Field{Name: "DMA_SRAM1_SPLIT", Shift: 16, Width: 11}
	FieldDMAMatrix    = regmap.Field{Name: "DMA_MATRIX", Shift: 0, Width: 5}
)
