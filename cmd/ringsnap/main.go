package main

import (
	"os"

	"progressring/internal/snapshot"
)

func main() {
	if err := snapshot.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
