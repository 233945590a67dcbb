package peripheral

// Port8 is an 8-bit input port, the same shape the teacher repo's io
// package defines for its 6532 PIA ports: a single Input() call
// returning whatever value is currently presented.
type Port8 interface {
	Input() uint8
}

// Keyboard is a Port8 backed by a small buffer of bytes queued up by
// the host; each Input() call drains the next queued byte, or 0 if
// nothing has been typed.
type Keyboard struct {
	queue []uint8
}

// NewKeyboard returns an empty Keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Queue appends bytes to be returned by subsequent Input() calls, in
// order.
func (k *Keyboard) Queue(bytes ...uint8) {
	k.queue = append(k.queue, bytes...)
}

// Input implements Port8: it returns and removes the oldest queued
// byte, or 0 if the queue is empty.
func (k *Keyboard) Input() uint8 {
	if len(k.queue) == 0 {
		return 0
	}
	b := k.queue[0]
	k.queue = k.queue[1:]
	return b
}
