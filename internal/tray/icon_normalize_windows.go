//go:build windows

package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/example/timeapp/internal/logging"
)

// icoHeader is an ICONDIR followed by a single ICONDIRENTRY.
type icoHeader struct {
	Reserved   uint16
	Type       uint16
	Count      uint16
	Width      uint8
	Height     uint8
	Colors     uint8
	Reserved2  uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

const icoHeaderSize = 6 + 16

// platformNormalizeIcon converts any decodable image into the ICO container
// the Windows notification area requires.
func platformNormalizeIcon(data []byte) []byte {
	if isICO(data) {
		return data
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logging.Debugf("tray icon is not a decodable image: %v", err)
		return nil
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		logging.Debugf("tray icon has invalid bounds %v", bounds)
		return nil
	}

	pngData := data
	if format != "png" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			logging.Debugf("re-encode %s tray icon as png: %v", format, err)
			return nil
		}
		pngData = buf.Bytes()
	}

	ico, err := wrapPNG(pngData, bounds.Dx(), bounds.Dy())
	if err != nil {
		logging.Debugf("wrap tray icon as ico: %v", err)
		return nil
	}
	return ico
}

func wrapPNG(pngData []byte, width, height int) ([]byte, error) {
	header := icoHeader{
		Type:       1,
		Count:      1,
		Width:      icoDimension(width),
		Height:     icoDimension(height),
		Planes:     1,
		BitCount:   32,
		BytesInRes: uint32(len(pngData)),
		Offset:     icoHeaderSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, icoHeaderSize+len(pngData)))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	buf.Write(pngData)
	return buf.Bytes(), nil
}

// icoDimension encodes 256 and larger as zero.
func icoDimension(v int) uint8 {
	if v <= 0 || v >= 256 {
		return 0
	}
	return uint8(v)
}

func isICO(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x01 && data[3] == 0x00
}
