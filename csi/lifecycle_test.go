package csi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/moffa90/go-csis/csis"
	"github.com/moffa90/go-csis/regmap"
	"github.com/moffa90/go-csis/tune"
)

func TestStart(t *testing.T) {
	var phases []Phase
	ctrl, bus := newTestController(WithPhaseCallback(func(p Phase) { phases = append(phases, p) }))

	if err := ctrl.Start(0x1C); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	want := []Phase{PhaseReset, PhaseSettle, PhaseEnabled}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, phases[i], want[i])
		}
	}

	if got := bus.peek(csis.Reg(csis.RegCmnCtrl)); got != 0xF0001 {
		t.Errorf("CSIS_CMN_CTRL = 0x%08X, want 0x000F0001", got)
	}
	if got := bus.peek(csis.Reg(csis.RegPHYCmnCtrl)); got != 0x1C400001 {
		t.Errorf("PHY_CMN_CTRL = 0x%08X, want 0x1C400001", got)
	}
}

func TestStartResetTimeout(t *testing.T) {
	var phases []Phase
	bus := NewMockBus(0)
	ctrl := New(bus,
		WithSleep(noSleep),
		WithPhaseCallback(func(p Phase) { phases = append(phases, p) }),
	)

	err := ctrl.Start(0x1C)
	if !errors.Is(err, ErrResetTimeout) {
		t.Fatalf("Start() error = %v, want ErrResetTimeout", err)
	}
	if len(phases) != 0 {
		t.Errorf("phases = %v, want none", phases)
	}
	if got := bus.peek(csis.Reg(csis.RegCmnCtrl)); got&csis.FieldCSIEn.Mask() != 0 {
		t.Error("CSI_EN set after failed start")
	}
}

func TestStop(t *testing.T) {
	var phases []Phase
	ctrl, bus := newTestController(WithPhaseCallback(func(p Phase) { phases = append(phases, p) }))
	if err := ctrl.Start(0x10); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	phases = nil

	ctrl.Stop()

	if len(phases) != 1 || phases[0] != PhaseDisabled {
		t.Errorf("phases = %v, want [disabled]", phases)
	}
	if got := bus.peek(csis.Reg(csis.RegCmnCtrl)); got&csis.FieldCSIEn.Mask() != 0 {
		t.Error("CSI_EN still set after Stop")
	}
	if got := bus.peek(csis.Reg(csis.RegPHYCmnCtrl)); got&csis.FieldEnableClk.Mask() != 0 {
		t.Error("ENABLE_CLK still set after Stop")
	}
}

func TestDump(t *testing.T) {
	ctrl, bus := newTestController()
	bus.poke(csis.Reg(csis.RegVersion), 0x05000000)
	bus.poke(csis.Reg(csis.RegIntSrc0), 0x00000400)

	var buf bytes.Buffer
	if err := ctrl.Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if bus.Writes() != 0 {
		t.Errorf("Dump() wrote %d registers", bus.Writes())
	}
	if got := bus.peek(csis.Reg(csis.RegIntSrc0)); got != 0x400 {
		t.Errorf("CSIS_INT_SRC0 = 0x%08X after Dump, want unchanged", got)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+int(csis.RegCount) {
		t.Errorf("lines = %d, want %d", len(lines), 1+int(csis.RegCount))
	}
	if lines[0] != DumpHeader {
		t.Errorf("first line = %q, want %q", lines[0], DumpHeader)
	}
	for i, r := range csis.Registers {
		if i+1 < len(lines) && lines[i+1] != regmap.Format(bus, r) {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], regmap.Format(bus, r))
		}
	}
	for _, want := range []string{"CSI 5.0 DUMP", "CSIS_VERSION", "0x05000000", "DMA3_FRAME_CNT"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump does not contain %q", want)
		}
	}
}

func TestApplyTune(t *testing.T) {
	table := &tune.Table{
		Magic: tune.MagicCSI0 + 1,
		Entries: []tune.Entry{
			{Index: 0x10, Value: 0x11111111},
			{Index: 0x418, Value: 0x9E003E00},
		},
	}

	t.Run("matching instance", func(t *testing.T) {
		logger := &MockLogger{}
		ctrl, bus := newTestController(WithLogger(logger))

		if err := ctrl.ApplyTune(CSIB, table); err != nil {
			t.Fatalf("ApplyTune() error = %v", err)
		}
		if got := bus.Peek(0x40); got != 0x11111111 {
			t.Errorf("0x0040 = 0x%08X, want 0x11111111", got)
		}
		if got := bus.peek(csis.PHYSCtrl(0)); got != 0x9E003E00 {
			t.Errorf("PHY_SCTRL_0 = 0x%08X, want 0x9E003E00", got)
		}
		if len(logger.infoMsgs) != 2 {
			t.Errorf("info messages = %d, want 2", len(logger.infoMsgs))
		}
	})

	t.Run("other instance", func(t *testing.T) {
		ctrl, bus := newTestController()
		err := ctrl.ApplyTune(CSIA, table)
		if !errors.Is(err, ErrInstanceMismatch) {
			t.Errorf("ApplyTune() error = %v, want ErrInstanceMismatch", err)
		}
		if bus.Writes() != 0 {
			t.Errorf("ApplyTune() wrote %d registers", bus.Writes())
		}
	})

	t.Run("nil table", func(t *testing.T) {
		logger := &MockLogger{}
		ctrl, bus := newTestController(WithLogger(logger))
		if err := ctrl.ApplyTune(CSIA, nil); err == nil {
			t.Error("ApplyTune(nil) error = nil, want error")
		}
		if bus.Writes() != 0 {
			t.Errorf("ApplyTune(nil) wrote %d registers", bus.Writes())
		}
		if len(logger.errorMsgs) != 1 {
			t.Errorf("error messages = %d, want 1", len(logger.errorMsgs))
		}
	})

	t.Run("entry outside window", func(t *testing.T) {
		ctrl, bus := newTestController()
		bad := &tune.Table{
			Magic: tune.MagicCSI0,
			Entries: []tune.Entry{
				{Index: 0x10, Value: 1},
				{Index: csis.WindowSize / 4, Value: 2},
			},
		}
		err := ctrl.ApplyTune(CSIA, bad)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("ApplyTune() error = %v, want ErrInvalidIndex", err)
		}
		if bus.Writes() != 0 {
			t.Errorf("ApplyTune() wrote %d registers", bus.Writes())
		}
	})
}
