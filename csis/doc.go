// Package csis holds the register map of the CSIS v5.0 camera serial interface
// receiver and its DMA block.
//
// Everything in this package is data: register descriptors, field
// descriptors, per-channel strides, interrupt masks, hardware data-format
// codes and the V4L2 pixel formats the DMA setup cares about. The control
// logic that applies these tables lives in package csi.
//
// # Register Layout
//
// Registers are addressed by RegID, an index into Registers. Per-channel
// registers are laid out as repeated blocks, so the register of channel n is
// the channel-0 ID plus n times the block stride:
//
//	ISP block:  ISPConfig, ISPResol, ISPSync            (ISPChannelStride = 3)
//	DMA block:  Ctrl, Fmt, Resol, Skip, Addr1..Addr8,
//	            ActCtrl, ActFmt, ActSkip, ByteCnt, FrameCnt (DMAChannelStride = 17)
//
// Use the accessor functions (ISPConfig, DMACtrl, DMAAddr, ...) rather than
// doing the arithmetic by hand.
//
// # Common DMA Block
//
// The DMA arbitration registers shared by all CSIS instances live in their
// own window and are described by DMARegisters.
package csis
