// Package memory discovers exported memories that carry an overlay layer.
//
// An export contains one subdirectory per memory. A subdirectory becomes an
// [OverlayItem] only when it holds at least one "-overlay.png" file; its
// "-main.jpg" or "-main.mp4" file, if any, is the base the overlay is merged
// onto. Items are built once by [Discover] and treated as read-only.
package memory
