// Command grpf finds the zeros and poles of a complex function over a
// rectangular or disk-shaped domain, using the global complex
// Roots-and-Poles-Finding algorithm.
package main

import "github.com/EP-Guy/grpf/cmd/grpf/cmd"

func main() {
	cmd.Execute()
}
