// Command heapq inserts integers into a heap and prints the one at its head, by default the largest.
package main

import "os"

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
