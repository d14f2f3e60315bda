//go:build windows

package tray

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformNormalizeIconWrapsPNG(t *testing.T) {
	src := DefaultIcon()
	ico := platformNormalizeIcon(src)
	require.True(t, isICO(ico))
	assert.Equal(t, uint8(32), ico[6])
	assert.Equal(t, uint32(len(src)), binary.LittleEndian.Uint32(ico[14:18]))
	assert.Equal(t, src, ico[icoHeaderSize:])
}

func TestPlatformNormalizeIconRejectsGarbage(t *testing.T) {
	assert.Nil(t, platformNormalizeIcon([]byte("not an image")))
}
