package probe

import "strconv"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	FormatName string
	Duration   float64
	Size       int64
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Width         int
	Height        int
	Rotation      int // Degrees from the display matrix or legacy rotate tag.
	IsAttachedPic bool
}

// ProbeResult is the parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type ProbeResult struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams int
}

// DisplaySize returns the frame size ffmpeg's filters see after autorotation:
// width and height are swapped for a quarter-turn rotation. ok is false when
// no usable video stream was found.
func (p *ProbeResult) DisplaySize() (w, h int, ok bool) {
	v := p.PrimaryVideo
	if v == nil || v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	switch normalizeRotation(v.Rotation) {
	case 90, 270:
		return v.Height, v.Width, true
	default:
		return v.Width, v.Height, true
	}
}

// Resolution returns "WxH" of the displayed frame, or "unknown".
func (p *ProbeResult) Resolution() string {
	w, h, ok := p.DisplaySize()
	if !ok {
		return "unknown"
	}
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

// HasAudio reports whether the container carries at least one audio stream.
func (p *ProbeResult) HasAudio() bool { return p.AudioStreams > 0 }

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
