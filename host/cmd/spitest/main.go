// spitest watches the serial console of a board running the loopback
// example firmware and summarizes its self-test report.
//
// Wire MISO to MOSI on the board, flash examples/loopback, then:
//
//	spitest -device /dev/ttyACM0
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"stm32spi/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Echo every console line")
)

// Report lines produced by the loopback firmware.
const (
	linePrefix = "spitest:"
	lineDone   = "spitest: done"
)

type summary struct {
	pass, fail int
}

// collect consumes console output until the firmware reports completion or
// the stream ends.
func collect(r io.Reader, echo io.Writer) summary {
	var s summary
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if echo != nil {
			fmt.Fprintln(echo, line)
		}
		if !strings.HasPrefix(line, linePrefix) {
			continue
		}
		if line == lineDone {
			break
		}
		switch {
		case strings.HasSuffix(line, "PASS"):
			s.pass++
		case strings.HasSuffix(line, "FAIL"):
			s.fail++
			if echo == nil {
				fmt.Println(line)
			}
		}
	}
	return s
}

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spitest: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Listening on %s, waiting for loopback report...\n", *device)

	var echo io.Writer
	if *verbose {
		echo = os.Stdout
	}
	s := collect(port, echo)

	fmt.Printf("%d passed, %d failed\n", s.pass, s.fail)
	if s.fail > 0 || s.pass == 0 {
		os.Exit(1)
	}
}
