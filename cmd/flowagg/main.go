package main

import (
	"os"
	"time"
)

func main() {
	startedAt := time.Now()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, startedAt))
}
