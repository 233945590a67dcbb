// Package bus implements the 16-bit address-dispatch layer that routes
// CPU reads and writes to whichever memory.Bank backing owns a given
// address. It is the Go counterpart of the retrieved Python original's
// MemoryMap, reshaped into the teacher repo's Bank-composition idiom.
package bus

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/florianehmann/6502-emulator/memory"
)

// ErrOverlap is returned by AddRegion when the new region's address
// range intersects one already present on the Bus.
var ErrOverlap = errors.New("bus: region overlaps an existing region")

// ErrOutOfSpan is returned by the bulk-load helpers when the requested
// write would extend past the Bus's total addressable span.
var ErrOutOfSpan = errors.New("bus: write exceeds bus span")

type region struct {
	base    uint16
	backing memory.Bank
}

func (r region) top() int {
	return int(r.base) + r.backing.Len() - 1
}

func (r region) contains(addr uint16) bool {
	return int(addr) >= int(r.base) && int(addr) <= r.top()
}

func (r region) overlaps(o region) bool {
	return o.contains(r.base) || r.contains(o.base) || o.contains(uint16(r.top())) || r.contains(uint16(o.top()))
}

// Bus is an ordered set of non-overlapping memory regions spanning (up
// to) the full 16-bit 6502 address space.
type Bus struct {
	regions []region
}

// New creates an empty Bus with no regions mapped.
func New() *Bus {
	return &Bus{}
}

// AddRegion maps backing into the address space starting at base. It
// returns ErrOverlap, wrapped with the offending range, if the new
// region would intersect one already present; this is a configuration
// error and is meant to be surfaced immediately, before emulation
// starts, not logged and ignored.
func (b *Bus) AddRegion(base uint16, backing memory.Bank) error {
	r := region{base: base, backing: backing}
	for _, existing := range b.regions {
		if r.overlaps(existing) {
			return fmt.Errorf("%w: new region [%#04x,%#04x] intersects existing [%#04x,%#04x]",
				ErrOverlap, r.base, r.top(), existing.base, existing.top())
		}
	}
	b.regions = append(b.regions, r)
	return nil
}

func (b *Bus) find(addr uint16) *region {
	for i := range b.regions {
		if b.regions[i].contains(addr) {
			return &b.regions[i]
		}
	}
	return nil
}

// Read returns the byte at addr. If no mapped region contains addr, it
// returns 0 and logs a warning; this must never mutate CPU state, but
// an MMIO backing's handler MAY observe the read as a side effect.
func (b *Bus) Read(addr uint16) uint8 {
	r := b.find(addr)
	if r == nil {
		log.Printf("bus: read from unmapped address %#04x", addr)
		return 0
	}
	return r.backing.Read(addr - r.base)
}

// Write stores val at addr, truncated to 8 bits by the uint8 parameter
// type. Writes to unmapped addresses are dropped and logged.
func (b *Bus) Write(addr uint16, val uint8) {
	r := b.find(addr)
	if r == nil {
		log.Printf("bus: write of %#02x to unmapped address %#04x dropped", val, addr)
		return
	}
	r.backing.Write(addr-r.base, val)
}

// Len returns the smallest address one past the top of the
// highest-mapped region. It exists for diagnostics and for the bulk
// loaders below, not for CPU-visible behavior.
func (b *Bus) Len() int {
	top := -1
	for _, r := range b.regions {
		if t := r.top(); t > top {
			top = t
		}
	}
	return top + 1
}

// WriteBytes copies data into the Bus starting at base, one byte at a
// time via Write (so MMIO side effects of bulk-loading into a live
// peripheral fire normally). It fails fast with ErrOutOfSpan if the
// range would extend past the Bus's total span, before writing
// anything, rather than partially loading a program.
func (b *Bus) WriteBytes(base uint16, data []byte) error {
	if int(base)+len(data) > b.Len() {
		return fmt.Errorf("%w: [%#04x,%#04x) against span of %#04x", ErrOutOfSpan, base, int(base)+len(data), b.Len())
	}
	for i, v := range data {
		b.Write(base+uint16(i), v)
	}
	return nil
}

// WriteBytesHex decodes sequence as a string of hexadecimal byte pairs
// (e.g. "A9 01 8D 00 02", whitespace ignored) and loads it at base via
// WriteBytes.
func (b *Bus) WriteBytesHex(base uint16, sequence string) error {
	cleaned := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "").Replace(sequence)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("bus: decoding hex sequence: %w", err)
	}
	return b.WriteBytes(base, data)
}
