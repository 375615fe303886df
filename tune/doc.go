// Package tune parses PHY tune-override files.
//
// Factory calibration of the CSIS analog PHY is delivered as a list of
// (register word index, value) pairs per CSIS instance, the same records the
// SoC keeps in its OTP tune bits. This package reads them from a text file
// so they can be applied with csi.Controller.ApplyTune.
//
// # File Format
//
// All fields are hex encoded, multi-byte values big-endian.
//
//	Header: [Magic(2)][Type(1)][Count(1)]
//	Entry:  [Index(2)][Value(4)][Checksum(1)]
//
// Magic is MagicCSI0 plus the CSIS instance number. Count is the number of
// entries that follow. The entry checksum is the 2's complement of the sum of
// the six preceding bytes. Empty lines and lines starting with '#' are
// ignored.
//
// Example:
//
//	# CSIS2 tune bits
//	43550102
//	00100000C00030
//	01409E003E00E3
//
// # Usage
//
//	t, err := tune.Parse("csis2.tune")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ctrl.ApplyTune(csi.InstanceID(t.Instance()), t); err != nil {
//	    log.Fatal(err)
//	}
package tune
