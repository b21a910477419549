// Command ledctrl-up is the host-side uploader: it streams a compiled
// bytecode program to a ledctrl-fw device over a serial port and reports
// the device's reply, mirroring pyledctrl's BytecodeUploader but speaking
// directly to the wire protocol instead of shelling out to a terminal
// emulator.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"
)

// logger is the package-wide structured logger, following the same
// "package var, defaulted before flags are parsed" convention as the other
// host-side tool in this pack.
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	serialDev := flag.String("serial", "/dev/ttyACM0", "serial port device")
	baud := flag.Int("baud", 115200, "serial baud rate")
	execute := flag.Bool("execute", false, "EXECUTE instead of UPLOAD: append END and run once")
	waitReady := flag.Bool("wait-ready", false, "send QUERY and wait for +READY. before uploading")
	flag.Parse()

	initLogger(*debug)

	file := flag.Arg(0)
	if file == "" {
		logger.Error("usage: ledctrl-up [flags] <bytecode-file>")
		os.Exit(2)
	}

	payload, err := os.ReadFile(file)
	if err != nil {
		logger.Error("reading bytecode file", "file", file, "err", err)
		os.Exit(1)
	}

	sp := OpenSerial(*serialDev, *baud)
	defer sp.Close()

	if *waitReady {
		logger.Info("waiting for device to report ready")
		if err := sp.SendNoArgs('?'); err != nil {
			logger.Error("sending QUERY", "err", err)
			os.Exit(1)
		}
		line, err := sp.ReadLine()
		if err != nil {
			logger.Error("waiting for +READY.", "err", err)
			os.Exit(1)
		}
		logger.Info("device ready", "reply", line)
	}

	cmd := byte('U')
	verb := "UPLOAD"
	if *execute {
		cmd = 'X'
		verb = "EXECUTE"
	}

	logger.Info("sending bytecode", "verb", verb, "bytes", len(payload))
	start := time.Now()
	if err := sp.SendBinaryFrame(cmd, payload); err != nil {
		logger.Error("writing bytecode frame", "err", err)
		os.Exit(1)
	}

	for {
		line, err := sp.ReadLine()
		if err != nil {
			logger.Error("reading device reply", "err", err)
			os.Exit(1)
		}
		if len(line) > 0 && line[0] == ':' {
			logger.Debug("upload progress", "reply", line)
			continue
		}
		if err := ReplyError(line); err != nil {
			logger.Error("upload failed", "reply", line)
			os.Exit(1)
		}
		logger.Info("bytecode uploaded successfully", "elapsed", time.Since(start))
		break
	}
}
