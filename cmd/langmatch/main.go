// Package main runs a one-shot Accept-Language negotiation from the
// command line.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/louisbranch/acceptlang/internal/cmd/langmatch"
)

func main() {
	cfg, err := langmatch.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[LANGMATCH] ")
	if err := langmatch.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("negotiate: %v", err)
	}
}
