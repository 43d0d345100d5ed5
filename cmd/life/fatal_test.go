package main

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

func TestFatalLogsCriticalAndExits(t *testing.T) {
	c := qt.New(t)
	var w loggo.TestWriter
	c.Assert(loggo.RegisterWriter("fatal-test", &w), qt.IsNil)
	defer loggo.RemoveWriter("fatal-test")

	code := -1
	c.Patch(&exit, func(n int) { code = n })
	fatal(errgo.New("window closed unexpectedly"))

	c.Assert(code, qt.Equals, 1)
	log := w.Log()
	c.Assert(log, qt.HasLen, 1)
	c.Assert(log[0].Level, qt.Equals, loggo.CRITICAL)
	c.Assert(log[0].Module, qt.Equals, "gridlife.main")
	c.Assert(log[0].Message, qt.Equals, "window closed unexpectedly")
}
