// Package csi drives a CSIS v5.0 camera serial interface receiver.
//
// # Overview
//
// A Controller programs one CSIS instance through a regmap.Bus:
//   - PHY and lanes: reset, settle time, analog tuning, lane count, deskew
//   - Virtual channels: data format, resolution, on-the-fly output format
//   - DMA: storage mode, frame pointers, buffer addresses, output enable
//   - Interrupts: decoding the source registers into per channel errors
//
// The Controller never owns the bus. Callers map the register window (see
// package mmio) and keep it alive for the lifetime of the Controller.
//
// # Basic Usage
//
//	region, err := mmio.Open("/dev/mem", 0x12C40000, csis.WindowSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer region.Close()
//
//	ctrl := csi.New(region, csi.WithVariant(csi.Variant{SoC: csi.SoCExynos8895}))
//
//	if err := ctrl.Reset(); err != nil {
//	    log.Fatal(err)
//	}
//	ctrl.ApplyDefaultPHYTuning(csi.CSIA)
//	ctrl.SetSettle(0x1C)
//	_ = ctrl.ConfigureLanes(img, 4, 2100)
//	_ = ctrl.ConfigureChannel(0, csi.VCConfig{HWFormat: csis.HWFormatRAW10}, 4032, 3024)
//	_ = ctrl.ConfigureChannelDMA(0, img, csis.HWFormatRAW10)
//	_ = ctrl.SetDMAAddress(0, 0, bufAddr)
//	ctrl.SetIRQMask(true)
//	ctrl.Enable()
//
// # Interrupts
//
// ReadIRQSource decodes the three interrupt source registers. It performs no
// allocation and never fails; hardware errors are data:
//
//	src := ctrl.ReadIRQSource(true)
//	if src.ErrFlag {
//	    for vc, e := range src.Errors {
//	        if e != 0 {
//	            log.Printf("vc%d: %s", vc, e)
//	        }
//	    }
//	}
//	if src.OTFEnd.Has(0) {
//	    // frame done on vc0
//	}
//
// # Variants
//
// The PHY family, SoC, revision and early buffer done mode are fixed at
// construction with WithVariant. C-PHY reports extra symbol errors and has no
// deskew; RevisionV4EVT0 reports OTF frame start/end from the DMA interrupt.
//
// # Error Handling
//
// Argument errors are checked before any register is written and match the
// sentinels with errors.Is:
//
//	if err := ctrl.ConfigureChannel(4, cfg, w, h); errors.Is(err, csi.ErrInvalidChannel) {
//	    // ...
//	}
//
// # Concurrency
//
// A Controller is not safe for concurrent use. Configure before streaming and
// decode interrupts from a single service path.
package csi
