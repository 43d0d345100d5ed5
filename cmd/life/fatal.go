package main

import (
	"os"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("gridlife.main")

// exit is replaced in tests.
var exit = os.Exit

// fatal logs err at CRITICAL and exits with status 1.
func fatal(err error) {
	logger.Criticalf("%v", err)
	exit(1)
}
