package compose

import (
	"bytes"
	"encoding/binary"
)

// JPEG markers used while walking segment headers.
const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP1   = 0xE1
	markerTEM    = 0x01
	markerRST0   = 0xD0
	markerRST7   = 0xD7
)

var exifHeader = []byte("Exif\x00\x00")

// extractEXIF returns the complete APP1 Exif segment (marker, length and
// payload) from a JPEG stream, or nil when there is none or data is not JPEG.
// Only the header segments before the first scan are inspected.
func extractEXIF(data []byte) []byte {
	if len(data) < 4 || data[0] != markerPrefix || data[1] != markerSOI {
		return nil
	}
	i := 2
	for i+4 <= len(data) {
		if data[i] != markerPrefix {
			return nil
		}
		marker := data[i+1]
		switch {
		case marker == markerPrefix:
			i++ // fill byte
			continue
		case marker == markerSOS || marker == markerEOI:
			return nil
		case marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7):
			i += 2
			continue
		}

		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		end := i + 2 + segLen
		if segLen < 2 || end > len(data) {
			return nil
		}
		if marker == markerAPP1 && bytes.HasPrefix(data[i+4:end], exifHeader) {
			return append([]byte(nil), data[i:end]...)
		}
		i = end
	}
	return nil
}

// insertSegment places seg immediately after the SOI marker of a JPEG stream.
func insertSegment(jpegData, seg []byte) []byte {
	if len(jpegData) < 2 || jpegData[0] != markerPrefix || jpegData[1] != markerSOI {
		return jpegData
	}
	out := make([]byte, 0, len(jpegData)+len(seg))
	out = append(out, jpegData[:2]...)
	out = append(out, seg...)
	out = append(out, jpegData[2:]...)
	return out
}
