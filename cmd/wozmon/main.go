package main

import (
	"flag"
	"log"
	"os"

	"github.com/florianehmann/6502-emulator/bus"
	"github.com/florianehmann/6502-emulator/cpu"
	"github.com/florianehmann/6502-emulator/memory"
	"github.com/florianehmann/6502-emulator/mmio"
	"github.com/florianehmann/6502-emulator/peripheral"
)

var romFile = flag.String("rom", "", "Path to a raw binary ROM image, loaded at -rom-base.")
var romBase = flag.Uint("rom-base", 0xE000, "Load address of the ROM image.")

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatalf("usage: %s -rom <image> [-rom-base N]", os.Args[0])
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("can't read ROM image %q: %v", *romFile, err)
	}

	b := bus.New()
	if err := b.AddRegion(0x0000, memory.NewRAM(0xD000)); err != nil {
		log.Fatalf("can't map RAM: %v", err)
	}

	term := peripheral.NewTerminal(os.Stdout)
	mmioBlock := mmio.NewBlock(3)
	mmioBlock.AddRegister(0, term.Status())
	mmioBlock.AddRegister(1, term.Output())
	mmioBlock.AddRegister(2, term.Input())
	if err := b.AddRegion(0xD000, mmioBlock); err != nil {
		log.Fatalf("can't map terminal: %v", err)
	}

	if err := b.AddRegion(uint16(*romBase), memory.NewROM(data)); err != nil {
		log.Fatalf("can't map ROM: %v", err)
	}

	c := cpu.New(b)
	c.Reset()

	if err := run(c, b, term); err != nil {
		log.Fatalf("debugger error: %v", err)
	}
}
