package publish

import (
	"time"

	"github.com/go-logr/logr"
)

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigurePublisher(c *Config) {
	c.Log = w.Log
}

type WithCommander struct{ Commander Commander }

func (w WithCommander) ConfigurePublisher(c *Config) {
	c.Commander = w.Commander
}

type WithPrinter struct{ Printer Printer }

func (w WithPrinter) ConfigurePublisher(c *Config) {
	c.Printer = w.Printer
}

type WithRecorder struct{ Recorder Recorder }

func (w WithRecorder) ConfigurePublisher(c *Config) {
	c.Recorder = w.Recorder
}

type WithMetricsFile string

func (w WithMetricsFile) ConfigurePublisher(c *Config) {
	c.MetricsFile = string(w)
}

type WithClock func() time.Time

func (w WithClock) ConfigurePublisher(c *Config) {
	c.Now = w
}
