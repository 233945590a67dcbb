package disasm

import "testing"

type flatReader [65536]uint8

func (f *flatReader) Read(addr uint16) uint8 { return f[addr] }

func TestStepImmediate(t *testing.T) {
	var r flatReader
	r[0x0200] = 0xA9
	r[0x0201] = 0x42
	text, n := Step(0x0200, &r)
	if text != "LDA #$42" || n != 2 {
		t.Fatalf("got %q, %d", text, n)
	}
}

func TestStepAbsolute(t *testing.T) {
	var r flatReader
	r[0x0200] = 0x8D
	r[0x0201] = 0x00
	r[0x0202] = 0x03
	text, n := Step(0x0200, &r)
	if text != "STA $0300" || n != 3 {
		t.Fatalf("got %q, %d", text, n)
	}
}

func TestStepRelativeResolvesTarget(t *testing.T) {
	var r flatReader
	r[0x0200] = 0xD0 // BNE
	r[0x0201] = 0xFD // -3
	text, _ := Step(0x0200, &r)
	if text != "BNE $01FF" {
		t.Fatalf("got %q", text)
	}
}

func TestStepIllegalOpcode(t *testing.T) {
	var r flatReader
	r[0x0200] = 0x02
	text, n := Step(0x0200, &r)
	if text != "???" || n != 1 {
		t.Fatalf("got %q, %d", text, n)
	}
}

func TestStepImplied(t *testing.T) {
	var r flatReader
	r[0x0200] = 0xEA // NOP
	text, n := Step(0x0200, &r)
	if text != "NOP" || n != 1 {
		t.Fatalf("got %q, %d", text, n)
	}
}

func TestListingAdvancesByInstructionLength(t *testing.T) {
	var r flatReader
	r[0x0200] = 0xA9 // LDA #$01
	r[0x0201] = 0x01
	r[0x0202] = 0xEA // NOP
	lines := Listing(0x0200, &r, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "0200: LDA #$01" || lines[1] != "0202: NOP" {
		t.Fatalf("unexpected listing: %v", lines)
	}
}
