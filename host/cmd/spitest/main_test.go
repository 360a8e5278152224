package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	console := strings.Join([]string{
		"booting...",
		"spitest: loopback 0x00 PASS",
		"spitest: loopback 0xA5 PASS",
		"spitest: divisor round-trip FAIL",
		"noise line",
		"spitest: done",
		"spitest: loopback 0xFF PASS", // after done: ignored
	}, "\n")

	s := collect(strings.NewReader(console), nil)
	assert.Equal(t, 2, s.pass)
	assert.Equal(t, 1, s.fail)
}

func TestCollectStreamEndsEarly(t *testing.T) {
	s := collect(strings.NewReader("spitest: loopback 0x00 PASS\n"), nil)
	assert.Equal(t, 1, s.pass)
	assert.Equal(t, 0, s.fail)
}
