package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/snapmerge/internal/config"
)

// confirm explains what the run will do and asks for a y/n answer.
// Anything but "y" or "yes" (including EOF) declines.
func confirm(in io.Reader, out io.Writer, cfg *config.Config) bool {
	fmt.Fprintln(out, "This combines captions, text, emojis and stickers with your base")
	fmt.Fprintln(out, "photos and videos into single files.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Combined files will be saved to a separate folder:\n  -> %s/\n\n", cfg.OutputDir)
	fmt.Fprintf(out, "Your original files in '%s/' will NOT be modified.\n\n", cfg.SourceDir)
	fmt.Fprint(out, "Keep your captions/text/stickers on your memories? (y/n): ")

	answer, _ := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
