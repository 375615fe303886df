package csi

import (
	"errors"
	"testing"

	"github.com/moffa90/go-csis/csis"
)

func TestSetFramePointer(t *testing.T) {
	ctrl, bus := newTestController()
	ctrlReg := csis.DMACtrl(1)
	bus.poke(ctrlReg, 0x1)

	steps := []struct {
		slot  uint32
		clear bool
		want  uint32
	}{
		{0, true, 0x00010001},
		{3, true, 0x00090001},
		{0, false, 0x00080001},
		{7, true, 0x00880001},
		{3, false, 0x00800001},
	}

	for _, s := range steps {
		if err := ctrl.SetFramePointer(1, s.slot, s.clear); err != nil {
			t.Fatalf("SetFramePointer(1, %d, %v) error = %v", s.slot, s.clear, err)
		}
		if got := bus.peek(ctrlReg); got != s.want {
			t.Errorf("after SetFramePointer(1, %d, %v): DMA1_CTRL = 0x%08X, want 0x%08X",
				s.slot, s.clear, got, s.want)
		}
	}
}

func TestDMAArgumentChecks(t *testing.T) {
	tests := []struct {
		name string
		call func(*Controller) error
		want error
	}{
		{"frame pointer channel", func(c *Controller) error { return c.SetFramePointer(4, 0, true) }, ErrInvalidChannel},
		{"frame pointer slot", func(c *Controller) error { return c.SetFramePointer(0, 8, true) }, ErrInvalidIndex},
		{"dma address channel", func(c *Controller) error { return c.SetDMAAddress(4, 0, 1) }, ErrInvalidChannel},
		{"dma address slot", func(c *Controller) error { return c.SetDMAAddress(0, 8, 1) }, ErrInvalidIndex},
		{"multi buffer slot", func(c *Controller) error { return c.SetMultiBufferAddress(0, 8, 1) }, ErrInvalidIndex},
		{"output enable channel", func(c *Controller) error { return c.SetOutputEnable(4, true) }, ErrInvalidChannel},
		{"active frame pointer channel", func(c *Controller) error {
			_, err := c.ActiveFramePointer(4)
			return err
		}, ErrInvalidChannel},
		{"output enabled channel", func(c *Controller) error {
			_, err := c.OutputEnabled(5)
			return err
		}, ErrInvalidChannel},
		{"active output enabled channel", func(c *Controller) error {
			_, err := c.ActiveOutputEnabled(6)
			return err
		}, ErrInvalidChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, bus := newTestController()
			if err := tt.call(ctrl); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if bus.Writes() != 0 {
				t.Errorf("wrote %d registers", bus.Writes())
			}
		})
	}
}

func TestActiveStatus(t *testing.T) {
	ctrl, bus := newTestController()
	bus.poke(csis.DMAActCtrl(1), 5<<2|1)

	ptr, err := ctrl.ActiveFramePointer(1)
	if err != nil {
		t.Fatalf("ActiveFramePointer() error = %v", err)
	}
	if ptr != 5 {
		t.Errorf("ActiveFramePointer() = %d, want 5", ptr)
	}

	on, err := ctrl.ActiveOutputEnabled(1)
	if err != nil {
		t.Fatalf("ActiveOutputEnabled() error = %v", err)
	}
	if !on {
		t.Error("ActiveOutputEnabled() = false, want true")
	}

	// the control side is a separate register
	if on, _ := ctrl.ActiveOutputEnabled(0); on {
		t.Error("ActiveOutputEnabled(0) = true, want false")
	}
}

func TestSetDMAAddress(t *testing.T) {
	ctrl, bus := newTestController()
	bus.poke(csis.DMACtrl(2), 0xFF<<16)

	const addr = 0xDEAD0000
	if err := ctrl.SetDMAAddress(2, 1, addr); err != nil {
		t.Fatalf("SetDMAAddress() error = %v", err)
	}

	if got := bus.peek(csis.DMACtrl(2)); got != 0xFD<<16 {
		t.Errorf("DMA2_CTRL = 0x%08X, want 0x%08X", got, 0xFD<<16)
	}
	for slot := uint32(0); slot < DMAAddrSlots; slot++ {
		if got := bus.peek(csis.DMAAddr(2, slot)); got != addr {
			t.Errorf("DMA2 alias %d = 0x%08X, want 0x%08X", slot, got, addr)
		}
		if got := bus.peek(csis.DMAAddr(1, slot)); got != 0 {
			t.Errorf("DMA1 alias %d = 0x%08X, want untouched", slot, got)
		}
	}
	if bus.Writes() != 1+DMAAddrSlots {
		t.Errorf("writes = %d, want %d", bus.Writes(), 1+DMAAddrSlots)
	}
}

func TestSetMultiBufferAddress(t *testing.T) {
	ctrl, bus := newTestController()
	bus.poke(csis.DMACtrl(3), 0x00FF0004)

	if err := ctrl.SetMultiBufferAddress(3, 5, 0x80001000); err != nil {
		t.Fatalf("SetMultiBufferAddress() error = %v", err)
	}

	for slot := uint32(0); slot < DMAAddrSlots; slot++ {
		want := uint32(0)
		if slot == 5 {
			want = 0x80001000
		}
		if got := bus.peek(csis.DMAAddr(3, slot)); got != want {
			t.Errorf("DMA3 alias %d = 0x%08X, want 0x%08X", slot, got, want)
		}
	}
	if got := bus.peek(csis.DMACtrl(3)); got != 0x00FF0004 {
		t.Errorf("DMA3_CTRL = 0x%08X, want untouched", got)
	}
	if bus.Writes() != 1 {
		t.Errorf("writes = %d, want 1", bus.Writes())
	}
}

func TestSetOutputEnable(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    uint32
	}{
		{"enable", true, 0x00030004},
		{"disable", false, 0x00030001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, bus := newTestController()
			bus.poke(csis.DMACtrl(0), 0x00030000)

			if err := ctrl.SetOutputEnable(0, tt.enabled); err != nil {
				t.Fatalf("SetOutputEnable() error = %v", err)
			}
			if got := bus.peek(csis.DMACtrl(0)); got != tt.want {
				t.Errorf("DMA0_CTRL = 0x%08X, want 0x%08X", got, tt.want)
			}

			on, err := ctrl.OutputEnabled(0)
			if err != nil {
				t.Fatalf("OutputEnabled() error = %v", err)
			}
			if on != tt.enabled {
				t.Errorf("OutputEnabled() = %v, want %v", on, tt.enabled)
			}
		})
	}
}

func TestSetStartAddress(t *testing.T) {
	ctrl, bus := newTestController()

	tests := []struct {
		slot   uint32
		addr   uint32
		offset uint32
	}{
		{0, 0x1000, 0x030},
		{1, 0x2000, 0x200},
		{2, 0x3000, 0x204},
		{7, 0x4000, 0x218},
	}

	for _, tt := range tests {
		if err := ctrl.SetStartAddress(tt.slot, tt.addr); err != nil {
			t.Fatalf("SetStartAddress(%d) error = %v", tt.slot, err)
		}
		if got := bus.Peek(tt.offset); got != tt.addr {
			t.Errorf("slot %d at 0x%03X = 0x%X, want 0x%X", tt.slot, tt.offset, got, tt.addr)
		}
	}
}

func TestSetStartAddressInvalidSlot(t *testing.T) {
	phy := csis.Reg(csis.RegPHYCmnCtrl)

	// slot 0x381 would land on PHY_CMN_CTRL
	for _, slot := range []uint32{csis.StartAddrSlots, 0x381, 0xFFFFFFFF} {
		ctrl, bus := newTestController()
		bus.poke(phy, 0x1E)

		err := ctrl.SetStartAddress(slot, 0xDEADBEEF)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("SetStartAddress(0x%X) error = %v, want ErrInvalidIndex", slot, err)
		}
		if bus.Writes() != 0 {
			t.Errorf("SetStartAddress(0x%X) wrote %d registers", slot, bus.Writes())
		}
		if got := bus.peek(phy); got != 0x1E {
			t.Errorf("PHY_CMN_CTRL after SetStartAddress(0x%X) = 0x%X, want 0x1E", slot, got)
		}
	}
}

func TestConfigureDMACommon(t *testing.T) {
	mem := csis.NewDMAMemory()
	ConfigureDMACommon(mem)

	want := map[csis.RegID]uint32{
		csis.DMARegCommonCtrl: 0x1,
		csis.DMARegArbPri:     0x12,
		csis.DMARegSRAMSplit:  0x01400140,
		csis.DMARegMatrix:     0x0,
	}
	for id, v := range want {
		r := csis.DMARegisters[id]
		if got := mem.Peek(r.Offset); got != v {
			t.Errorf("%s = 0x%08X, want 0x%08X", r.Name, got, v)
		}
	}
	if err := mem.Err(); err != nil {
		t.Errorf("invalid access: %v", err)
	}

	// no common block
	ConfigureDMACommon(nil)
}
