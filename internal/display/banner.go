package display

import (
	"fmt"
	"os"

	"github.com/backmassage/humpyard/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _   _                      __   __            _
| | | |_   _ _ __ ___  _ __ \ \ / /_ _ _ __ __| |
| |_| | | | | '_ ` + "`" + ` _ \| '_ \ \ V / _` + "`" + ` | '__/ _` + "`" + ` |
|  _  | |_| | | | | | | |_) | | | (_| | | | (_| |
|_| |_|\__,_|_| |_| |_| .__/  |_|\__,_|_|  \__,_|
                      |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
