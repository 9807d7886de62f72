/*
Command glide is an interactive demo of a motion path built from two cubic
Bézier segments.

Click six points onto the grid. The first four are the control points of
the first segment, points 4 to 6 and a derived joint point those of the
second. A green cone then glides along the path, once per second.

Settings are read from a file glide.yaml in the user's configuration
directory (e.g. ~/.config/glide/), or in the working directory, and from
environment variables:

	GLIDE_CONTINUITY=g1 GLIDE_CLOCK_KIND=accumulated glide

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"os"

	"github.com/npillmayer/glide/config"
	"github.com/npillmayer/glide/glider"
	"github.com/npillmayer/glide/internal/zerologadapter"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	tracer := zerologadapter.New(os.Stderr, true)
	tracer.SetTraceLevel(tracing.LevelInfo)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	conf, err := config.Load(config.Locate())
	if err != nil {
		tracer.Errorf("%v", err)
		return 1
	}
	settings, err := config.FromConfiguration(conf)
	if err != nil {
		tracer.Errorf("%v", err)
		return 1
	}
	tracer.SetTraceLevel(settings.TraceLevel)
	win := newWindow(settings.Window)
	defer win.Close()
	ctrl := glider.New(win, settings.Options()...)
	if err = ctrl.Run(); err != nil {
		tracer.P("state", ctrl.State().String()).Errorf("%v", err)
		return 1
	}
	return 0
}
