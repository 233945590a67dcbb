package mmio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type reg struct {
	val      uint8
	writes   []uint8
	readHook func() uint8
}

func (r *reg) Read() uint8 {
	if r.readHook != nil {
		return r.readHook()
	}
	return r.val
}

func (r *reg) Write(v uint8) {
	r.val = v
	r.writes = append(r.writes, v)
}

func TestBlockDispatchesByOffset(t *testing.T) {
	status := &reg{val: 0x80}
	output := &reg{}
	b := NewBlock(3).AddRegister(0, status).AddRegister(1, output)

	require.Equal(t, uint8(0x80), b.Read(0))
	b.Write(1, 0x41)
	require.Equal(t, []uint8{0x41}, output.writes)
}

func TestBlockUnregisteredOffsetIsBenign(t *testing.T) {
	b := NewBlock(4)
	require.Equal(t, uint8(0), b.Read(2))
	require.NotPanics(t, func() { b.Write(2, 0xFF) })
}

func TestAddRegisterPanicsOnDuplicate(t *testing.T) {
	b := NewBlock(2).AddRegister(0, &reg{})
	require.Panics(t, func() { b.AddRegister(0, &reg{}) })
}

func TestAddRegisterPanicsOutOfSize(t *testing.T) {
	b := NewBlock(1)
	require.Panics(t, func() { b.AddRegister(1, &reg{}) })
}
