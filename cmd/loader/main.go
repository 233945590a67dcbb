// loader assembles a hand-assembled listing into a raw binary image.
// Input lines look like:
//
//	XXXX OP A1 A2 ...
//
// where XXXX is a 4 upper-case hex digit address (it only marks the
// line as one holding code; its value is not used, and all bytes are
// laid out contiguously starting at -offset) and the rest of the line
// is whitespace-separated hex bytes. Anything after a tab or a "(*)" marker is a comment and
// ignored, matching the listing format the 6502 hand-assembly
// examples in the retrieved material use.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("usage: %s [-offset N] <input> <output>", os.Args[0])
	}
	in, out := flag.Args()[0], flag.Args()[1]

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("can't open %q for input: %v", in, err)
	}
	defer f.Close()

	image := make([]byte, *offset)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) < 4 || !isHexDigits(text[:4]) {
			continue
		}
		rest := text[4:]
		if i := strings.Index(rest, "\t"); i >= 0 {
			rest = rest[:i]
		}
		if i := strings.Index(rest, "(*)"); i >= 0 {
			rest = rest[:i]
		}
		for _, tok := range strings.Fields(rest) {
			b, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				log.Fatalf("line %d: invalid byte %q: %v", line, tok, err)
			}
			image = append(image, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("error reading %q: %v", in, err)
	}

	if err := os.WriteFile(out, image, 0o644); err != nil {
		log.Fatalf("can't write %q: %v", out, err)
	}
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}
