// honeybee suggests related sites from a crawl of site links.
//
// It reads whitespace separated "source target" pairs (the crawler dump
// format) and prints up to five suggested sites per requested mode.
//
// Usage:
//
//	honeybee -b cnn.com -n 3 < output.txt
//	honeybee -r cnn.com -s 1000 --seed 42 -i output.txt
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		reportError(cmd, stderr, err)
		return 1
	}
	return 0
}
