// Command esldump decodes event socket event streams and prints them.
//
//	esldump decode [file]    frame and print every event
//	esldump lines [file]     classify the lines of one event
//	esldump validate [file]  check every event, exit non-zero on failure
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
