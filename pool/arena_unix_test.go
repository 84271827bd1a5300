//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapBacking(t *testing.T) {
	p, err := New(1<<16, &Config{Strategy: BestFit, Backing: BackingMmap})
	require.NoError(t, err)

	h := mustAlloc(t, p, 4096)
	buf, err := p.Bytes(h)
	require.NoError(t, err)
	require.Len(t, buf, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}

	h2 := mustAlloc(t, p, 128)
	other, err := p.Bytes(h2)
	require.NoError(t, err)
	copy(other, "tail")

	buf, err = p.Bytes(h)
	require.NoError(t, err)
	assert.Equal(t, byte(255), buf[255])
	assertInvariants(t, p)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "second Close must not unmap again")

	_, err = p.Allocate(1)
	require.ErrorIs(t, err, ErrClosed)
}
