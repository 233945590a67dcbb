// disasm prints a disassembly listing of a raw binary image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/florianehmann/6502-emulator/disasm"
)

var (
	org   = flag.Uint("org", 0x0000, "Load address of the first byte in the image.")
	count = flag.Int("count", 0, "Number of instructions to print. 0 means until the image is exhausted.")
)

type imageReader struct {
	base  uint16
	bytes []byte
}

func (r imageReader) Read(addr uint16) uint8 {
	idx := int(addr) - int(r.base)
	if idx < 0 || idx >= len(r.bytes) {
		return 0
	}
	return r.bytes[idx]
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-org N] [-count N] <image>", os.Args[0])
	}

	data, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't read %q: %v", flag.Args()[0], err)
	}

	r := imageReader{base: uint16(*org), bytes: data}
	n := *count
	if n == 0 {
		n = len(data)
	}

	off := 0
	for i := 0; i < n && off < len(data); i++ {
		pc := r.base + uint16(off)
		text, length := disasm.Step(pc, r)
		fmt.Printf("%04X: %s\n", pc, text)
		off += length
	}
}
