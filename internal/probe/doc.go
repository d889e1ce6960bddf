// Package probe runs ffprobe against a base video and returns the few
// properties the overlay burn-in needs: displayed frame size (rotation
// applied), duration, and whether an audio stream exists to be copied.
package probe
