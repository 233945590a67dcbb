package memory

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(16)
	if got, want := r.Len(), 16; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for addr := uint16(0); addr < 16; addr++ {
		if got := r.Read(addr); got != 0 {
			t.Fatalf("fresh RAM at %d = %#02x, want 0", addr, got)
		}
	}
	r.Write(4, 0xAB)
	if got, want := r.Read(4), uint8(0xAB); got != want {
		t.Errorf("Read(4) = %#02x, want %#02x", got, want)
	}
	if got := r.Read(5); got != 0 {
		t.Errorf("Read(5) = %#02x, want 0 (write to 4 leaked)", got)
	}
}

func TestROMReadOnly(t *testing.T) {
	rom := NewROM([]byte{0x01, 0x02, 0x03})
	if got, want := rom.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	rom.Write(1, 0xFF)
	if got, want := rom.Read(1), uint8(0x02); got != want {
		t.Errorf("Read(1) after write = %#02x, want unchanged %#02x", got, want)
	}
}

func TestROMCopiesInput(t *testing.T) {
	data := []byte{0x10, 0x20}
	rom := NewROM(data)
	data[0] = 0xFF
	if got, want := rom.Read(0), uint8(0x10); got != want {
		t.Errorf("Read(0) = %#02x, want %#02x (ROM aliased caller's slice)", got, want)
	}
}
