package app

import (
	"bufio"
	"io"

	"github.com/sanonone/honeybee/pkg/engine"
)

// Header opens every suggestion block.
const Header = "Suggested Sites:"

// WriteSuggestions prints the header followed by one site per line.
// An empty list prints the header alone.
func WriteSuggestions(w io.Writer, suggestions []engine.Suggestion) error {
	// bufio.Writer errors are sticky; Flush reports the first one.
	bw := bufio.NewWriter(w)
	bw.WriteString(Header + "\n")
	for _, s := range suggestions {
		bw.WriteString(s.Site + "\n")
	}
	return bw.Flush()
}
