package display

import (
	"fmt"
	"io"

	"github.com/backmassage/snapmerge/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `
 ___ _ __   __ _ _ __  _ __ ___   ___ _ __ __ _  ___
/ __| '_ \ / _`+"`"+` | '_ \| '_ `+"`"+` _ \ / _ \ '__/ _`+"`"+` |/ _ \
\__ \ | | | (_| | |_) | | | | | |  __/ | | (_| |  __/
|___/_| |_|\__,_| .__/|_| |_| |_|\___|_|  \__, |\___|
                |_|                       |___/
`)
	fmt.Fprintln(w, term.NC)
}
