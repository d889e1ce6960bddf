package ffmpeg

import (
	"regexp"
	"strings"
)

// Hint is a short, user-facing explanation for a failed ffmpeg run.
type Hint string

const (
	HintNone             Hint = ""
	HintMissingInput     Hint = "input file missing or unreadable"
	HintInvalidData      Hint = "input is corrupt or not a supported media file"
	HintEncoderMissing   Hint = "ffmpeg build lacks a required encoder for the output container"
	HintPermissionDenied Hint = "cannot write output (permission denied)"
	HintFilterFailed     Hint = "overlay filter graph rejected by ffmpeg"
)

// Pre-compiled regexes for classifying ffmpeg stderr. Checked in order by
// [Classify]; the first match wins.
var classifiers = []struct {
	re   *regexp.Regexp
	hint Hint
}{
	{regexp.MustCompile(`No such file or directory`), HintMissingInput},
	{regexp.MustCompile(`(?i)Permission denied`), HintPermissionDenied},
	{regexp.MustCompile(`(?i)Invalid data found when processing input|moov atom not found`), HintInvalidData},
	{regexp.MustCompile(`(?i)Unknown encoder|Encoder not found|Could not find codec parameters`), HintEncoderMissing},
	{regexp.MustCompile(`(?i)Error (initializing|reinitializing|configuring) (complex )?filter|Failed to configure`), HintFilterFailed},
}

// Classify maps ffmpeg stderr to a Hint, or HintNone when nothing matches.
func Classify(stderr string) Hint {
	for _, c := range classifiers {
		if c.re.MatchString(stderr) {
			return c.hint
		}
	}
	return HintNone
}

// Tail returns the last n non-empty lines of stderr joined by newlines.
func Tail(stderr string, n int) string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
