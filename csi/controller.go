package csi

import (
	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
)

// Hardware limits re-exported for callers.
const (
	// VCMax is the number of virtual channels
	VCMax = csis.VCMax

	// PHYCtrlCount is the number of entries in each analog PHY control table
	PHYCtrlCount = csis.PHYCtrlCount

	// DMAAddrSlots is the number of DMA address alias slots per channel
	DMAAddrSlots = csis.DMAAddrSlots
)

// Image describes the frames the sensor sends.
type Image struct {
	Width  uint32
	Height uint32

	// BitWidth is the number of bits per pixel on the link
	BitWidth uint32

	// PixelFormat is the V4L2 fourcc of the stored buffer
	PixelFormat uint32

	// FrameRate is in frames per second
	FrameRate uint32
}

// VCConfig is the link level configuration of one virtual channel.
type VCConfig struct {
	// Map is the virtual channel number on the link mapped to this channel
	Map uint32

	// HWFormat is the CSI-2 data type (csis.HWFormat*)
	HWFormat uint32
}

// Controller drives one CSIS instance.
//
// A Controller does no locking. It must be owned by a single goroutine, or
// callers must serialise access (configuration before streaming, interrupt
// decode on the interrupt service path only).
type Controller struct {
	bus    regmap.Bus
	config Config
	phy    phyLayer
	events frameEvents
}

// New creates a Controller for the register window behind bus.
// The Controller borrows bus and never closes it.
//
// Example:
//
//	region, _ := mmio.Open("/dev/mem", 0x12C40000, csis.WindowSize)
//	ctrl := csi.New(region,
//	    csi.WithVariant(csi.Variant{SoC: csi.SoCExynos8895}),
//	    csi.WithLogger(myLogger),
//	)
func New(bus regmap.Bus, opts ...Option) *Controller {
	if bus == nil {
		panic("bus cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Controller{
		bus:    bus,
		config: cfg,
		phy:    cfg.Variant.phyLayer(),
		events: cfg.Variant.frameEvents(),
	}
}

// Variant returns the hardware variant the controller was built for.
func (c *Controller) Variant() Variant {
	return c.config.Variant
}

func checkChannel(ch uint32) error {
	if ch >= VCMax {
		return &ChannelError{Channel: ch}
	}
	return nil
}

func (c *Controller) reportPhase(p Phase) {
	if c.config.PhaseCallback != nil {
		c.config.PhaseCallback(p)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Controller) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Controller) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
