package compose

import (
	"bytes"
	"testing"
)

func TestExtractEXIF(t *testing.T) {
	exif := exifSegment([]byte("MM\x00*payload"))
	app0 := []byte{0xFF, 0xE0, 0x00, 0x06, 'J', 'F', 'I', 'F'}
	xmp := append([]byte{0xFF, 0xE1, 0x00, 0x0B}, []byte("http://ns")...)
	sos := []byte{0xFF, 0xDA, 0x00, 0x02}

	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"after APP0", join([]byte{0xFF, 0xD8}, app0, exif, sos), exif},
		{"first segment", join([]byte{0xFF, 0xD8}, exif, sos), exif},
		{"skips non-exif APP1", join([]byte{0xFF, 0xD8}, xmp, exif, sos), exif},
		{"none before scan", join([]byte{0xFF, 0xD8}, app0, sos, exif), nil},
		{"not a jpeg", []byte("\x89PNG\r\n\x1a\n"), nil},
		{"truncated segment", join([]byte{0xFF, 0xD8}, []byte{0xFF, 0xE1, 0x40, 0x00, 'E'}), nil},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractEXIF(tt.data); !bytes.Equal(got, tt.want) {
				t.Errorf("extractEXIF = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertSegment(t *testing.T) {
	seg := exifSegment([]byte("x"))
	jpg := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x02}
	got := insertSegment(jpg, seg)
	want := join([]byte{0xFF, 0xD8}, seg, []byte{0xFF, 0xDB, 0x00, 0x02})
	if !bytes.Equal(got, want) {
		t.Errorf("insertSegment = %x, want %x", got, want)
	}
	if !bytes.Equal(insertSegment([]byte("nope"), seg), []byte("nope")) {
		t.Error("non-JPEG input should be returned unchanged")
	}
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}
