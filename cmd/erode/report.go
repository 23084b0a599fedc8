package main

import "log"

// report accumulates the summary numbers the harness prints at the end of a
// run (or on interruption). It has no behavior of its own beyond logging;
// it exists so main doesn't carry a pile of loose accumulator variables.
type report struct {
	width, height             int
	ticks                     int
	heightBefore              float32
	heightAfter               float32
	sedimentBeforeTermination float32
}

func newReport(width, height int) *report {
	return &report{width: width, height: height}
}

func (r *report) log() {
	log.Printf("ran %d ticks over a %dx%d grid", r.ticks, r.width, r.height)
	log.Printf("total terrain height: %.3f before -> %.3f after (delta %.3f)",
		r.heightBefore, r.heightAfter, r.heightAfter-r.heightBefore)
	log.Printf("suspended sediment deposited at termination: %.3f", r.sedimentBeforeTermination)
}
