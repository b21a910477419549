//go:build rp2040

// Command ledctrl-fw is the firmware entry point. It wires the RC/analog
// signal source, the WS2812(+W) strip, the bytecode store, and the serial
// control protocol around one exec.Executor, then drives them all from a
// single ticker loop: feed the UART byte-by-byte into the protocol parser,
// step the executor, and periodically resample the signal source.
package main

import (
	"machine"
	"time"

	"github.com/itohio/ledctrl/bytecode"
	"github.com/itohio/ledctrl/config"
	"github.com/itohio/ledctrl/dev"
	"github.com/itohio/ledctrl/errs"
	"github.com/itohio/ledctrl/exec"
	"github.com/itohio/ledctrl/hal"
	"github.com/itohio/ledctrl/protocol"
)

// bytecodeRegion backs the NVRAM-shaped bytecode store behind a two-byte
// magic prefix. This target has no verified internal-flash block device in
// the driver set we grounded this module on, so the region is ordinary
// SRAM: an uploaded program does not survive a power cycle, but the store
// still exercises the same magic/logical-offset contract a flash-backed
// region would. See DESIGN.md.
var bytecodeRegion [2 + 2048]byte

// calibrationRegion backs the persisted clock-skew calibration record,
// same SRAM-not-flash caveat as bytecodeRegion.
var calibrationRegion [8]byte

// sampledSource is whatever signal.Source this board variant boots, plus
// the periodic Sample() call the main loop pumps it with. newSignalSource
// is provided by signal_source_rc.go (the default, an RC receiver on a
// bank of ADC pins) or signal_source_manual.go (a bench quadrature encoder
// substitute, selected with the manual build tag) so exactly one of them
// is compiled into any given firmware image.
type sampledSource interface {
	NumChannels() int
	ChannelValue(i int) uint8
	FilteredChannelValue(i int) uint8
	Active() bool
	DumpDebug() string
	Sample()
}

// errSinkRef lets the executor report error transitions through the
// protocol parser even though the parser can only be constructed after
// the executor already exists (the parser's Target is the executor).
type errSinkRef struct{ sink errs.Sink }

func (r *errSinkRef) Report(c errs.Code) {
	if r.sink != nil {
		r.sink.Report(c)
	}
}

func main() {
	cfg := config.Default()
	debugf("ledctrl-fw booting: channels=%d triggers=%d capacity=%d", cfg.NumChannels, cfg.TriggerTableSize, cfg.BytecodeCapacity)

	src := newSignalSource()

	clock := &dev.HWClock{}

	store := bytecode.NewNVRAM(bytecodeRegion[:])

	ledSink := hal.NewWS2812Sink(config.LEDData, true)
	sink := hal.NewCompensatingSink(ledSink, cfg.ChannelRanges)

	calStore, err := hal.NewBufferCalibrationStore(calibrationRegion[:])
	if err != nil {
		panic(err)
	}

	sinkRef := &errSinkRef{}
	ex := exec.New(store, clock, src, sink, sinkRef,
		cfg.NumChannels, cfg.LoopStackDepth, cfg.TriggerTableSize,
		cfg.EdgeMidLow, cfg.EdgeMidHigh, cfg.EdgeDebounceMs)

	if rec, rerr := calStore.Read(); rerr == nil && rec.Valid() {
		ex.SetSkew(rec.Skew)
		debugf("calibration: loaded skew %v", rec.Skew)
	} else {
		debugf("calibration: no record, using default skew")
	}

	uart := machine.Serial
	uart.Configure(machine.UARTConfig{})

	parser := protocol.NewParser(ex, uart)
	sinkRef.sink = parser

	config.StatusLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	config.CalibrationButton.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	if cfg.RequireStartupSignal {
		awaitStartupSignal(uart)
	}

	if !config.CalibrationButton.Get() {
		runCalibration(ex, clock, calStore, cfg.CalibrationDurationMs, config.StatusLED, config.CalibrationButton)
	}

	ex.Rewind()

	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 3000})
	machine.Watchdog.Start()

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	lastSample := time.Now()

	for range ticker.C {
		machine.Watchdog.Update()

		for uart.Buffered() > 0 {
			b, rerr := uart.ReadByte()
			if rerr != nil {
				break
			}
			parser.Feed(b)
		}

		ex.Step()

		if time.Since(lastSample) >= 10*time.Millisecond {
			src.Sample()
			lastSample = time.Now()
		}
	}
}

// awaitStartupSignal blocks until the host sends the literal ASCII string
// "?READY?\n", so a host tool attaching late never races the first few
// bytecode steps.
func awaitStartupSignal(uart *machine.UART) {
	const want = "?READY?\n"
	matched := 0
	for matched < len(want) {
		if uart.Buffered() == 0 {
			continue
		}
		b, rerr := uart.ReadByte()
		if rerr != nil {
			continue
		}
		if b == want[matched] {
			matched++
		} else if b == want[0] {
			matched = 1
		} else {
			matched = 0
		}
	}
}

// runCalibration measures the wall-clock duration between the calibration
// button being released after the boot-time hold and being pressed a
// second time to signal the end of the run, blinking statusLED the whole
// time, then hands the
// elapsed/expected pair to the executor's skew calibration and persists an
// accepted factor. The operator is expected to time the run against
// durationMs with an external stopwatch, the same procedure the original
// firmware's CLOCK_SKEW_CALIBRATION build option required.
func runCalibration(ex *exec.Executor, clock *dev.HWClock, calStore *hal.BufferCalibrationStore, durationMs uint32, statusLED, button machine.Pin) {
	// Wait for release of the initial hold-to-arm press.
	for !button.Get() {
		dev.FlashPin(statusLED, 100*time.Millisecond, 1)
	}
	// Armed: blink slowly while the operator times durationMs externally,
	// then presses the button again to mark the end of the run.
	start := clock.NowMillis()
	for button.Get() {
		dev.FlashPin(statusLED, 250*time.Millisecond, 1)
	}
	elapsed := clock.NowMillis() - start

	factor, accepted := ex.FinishCalibration(durationMs, elapsed)
	debugf("calibration: elapsed=%d expected=%d factor=%v accepted=%v", elapsed, durationMs, factor, accepted)
	if accepted {
		_ = calStore.Write(hal.CalibrationRecord{Magic: hal.CalibrationMagic, Skew: factor})
	}
}
