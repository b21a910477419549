package main

import (
	"bufio"
	"fmt"
	"os"

	"go.bug.st/serial"
)

// SerialPort wraps a go.bug.st/serial port with the framing helpers the
// ledctrl wire protocol needs: no-arg commands, binary upload/execute
// frames, and single-line reply reads.
type SerialPort struct {
	port serial.Port
	rd   *bufio.Reader
}

// OpenSerial opens the named serial device at the given baud rate. Calls
// log.Fatal-equivalent (os.Exit) on error, matching the host tooling's
// convention of failing loudly rather than returning a partially-usable
// port.
func OpenSerial(name string, baud int) *SerialPort {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		logger.Error("serial: failed to open port", "device", name, "baud", baud, "err", err)
		os.Exit(1)
	}
	logger.Info("serial: port opened", "device", name, "baud", baud)
	return &SerialPort{port: p, rd: bufio.NewReader(p)}
}

// SendNoArgs writes a single command byte with no arguments (e.g. '<', 'r',
// 's', 't', 'c', 'v', '?') followed by the newline that completes it.
func (s *SerialPort) SendNoArgs(cmd byte) error {
	_, err := s.port.Write([]byte{cmd, '\n'})
	return err
}

// SendBinaryFrame writes cmd followed by payload's 16-bit big-endian
// length and then payload itself, the UPLOAD_BIN/EXECUTE_BIN framing.
func (s *SerialPort) SendBinaryFrame(cmd byte, payload []byte) error {
	header := []byte{cmd, byte(len(payload) >> 8), byte(len(payload))}
	if _, err := s.port.Write(header); err != nil {
		return err
	}
	_, err := s.port.Write(payload)
	return err
}

// ReadLine blocks for one newline-terminated reply line (e.g. "+OK\n",
// "-E3\n", "+READY.\n") and returns it without the trailing newline.
func (s *SerialPort) ReadLine() (string, error) {
	line, err := s.rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// ReplyError parses a "+OK"/"-E<code>" reply line into an error, or nil on
// success.
func ReplyError(line string) error {
	if len(line) > 0 && line[0] == '+' {
		return nil
	}
	return fmt.Errorf("device reported error: %s", line)
}

// Close closes the underlying serial port.
func (s *SerialPort) Close() {
	logger.Info("serial: closing port")
	_ = s.port.Close()
}
