/*
Package config reads the settings of the glide demo.

Configuration is read with spf13/viper from an optional file glide.yaml
(or .json, .toml) and from environment variables prefixed with GLIDE_,
e.g. GLIDE_CONTINUITY=g1 or GLIDE_WINDOW_WIDTH=800.
A *Conf implements schuko.Configuration, so settings may as well be taken from
any other configuration adapter:

	conf, err := config.Load(config.Locate())
	…
	settings, err := config.FromConfiguration(conf)
	…
	ctrl := glider.New(win, settings.Options()...)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/glide/bezier"
	"github.com/npillmayer/glide/glider"
	"github.com/npillmayer/glide/ground"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

// ErrInvalidSetting is returned for configuration values which cannot be
// interpreted.
var ErrInvalidSetting = errors.New("invalid setting")

// Configuration keys
const (
	KeyContinuity      = "continuity"
	KeyClock           = "clock.kind"
	KeyClockPeriod     = "clock.period"
	KeyTangentBoundary = "tangent.boundary"
	KeyWindowWidth     = "window.width"
	KeyWindowHeight    = "window.height"
	KeyWindowTitle     = "window.title"
	KeyWindowFPS       = "window.fps"
	KeyCameraDistance  = "camera.distance"
	KeyCameraTrackball = "camera.trackball"
	KeyBackground      = "background"
	KeyStageHalfExtent = "stage.halfextent"
	KeyMarkerRadius    = "marker.radius"
	KeyConeRadius      = "cone.radius"
	KeyConeHeight      = "cone.height"
	KeyTracingLevel    = "tracing.level"
)

var defaults = map[string]interface{}{
	KeyContinuity:      "c1",
	KeyClock:           "wallclock",
	KeyClockPeriod:     "1s",
	KeyTangentBoundary: "backward",
	KeyWindowWidth:     600,
	KeyWindowHeight:    600,
	KeyWindowTitle:     "glide",
	KeyWindowFPS:       60,
	KeyCameraDistance:  "80",
	KeyCameraTrackball: "true",
	KeyBackground:      "#99b3cc",
	KeyStageHalfExtent: "40",
	KeyMarkerRadius:    "1",
	KeyConeRadius:      "1",
	KeyConeHeight:      "2",
	KeyTracingLevel:    "info",
}

// Conf is a viper backed configuration. Other than the usual viper set-up it
// does not touch the global viper instance.
type Conf struct {
	v *viper.Viper
}

var _ schuko.Configuration = &Conf{}

// Load creates a configuration with defaults set, reading glide.* from
// directory dir if present, and environment overrides. A missing
// configuration file is not an error.
func Load(dir string) (*Conf, error) {
	c := &Conf{v: viper.New()}
	c.InitDefaults()
	c.v.SetConfigName("glide")
	if dir != "" {
		c.v.AddConfigPath(dir)
	}
	c.v.SetEnvPrefix("GLIDE")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		tracer().Debugf("no config file in %q, using defaults", dir)
	} else {
		tracer().Infof("configuration read from %s", c.v.ConfigFileUsed())
	}
	return c, nil
}

// Locate returns the directory holding the user's glide configuration,
// searched for at the usual places (see schuko.LocateConfig), or "." if
// there is none.
func Locate() string {
	if found := schuko.LocateConfig("glide", "glide.*", suffixes); len(found) > 0 {
		return filepath.Dir(found[0])
	}
	return "."
}

var suffixes = []string{"yaml", "yml", "json", "toml"}

// InitDefaults is part of interface schuko.Configuration.
func (c *Conf) InitDefaults() {
	for k, v := range defaults {
		c.v.SetDefault(k, v)
	}
}

// Set overrides a configuration value.
func (c *Conf) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt is part of interface schuko.Configuration.
func (c *Conf) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// IsInteractive is part of interface schuko.Configuration. The demo is
// always interactive.
func (c *Conf) IsInteractive() bool {
	return true
}

// --- Settings ---------------------------------------------------------------

// Window holds the settings of the demo window.
type Window struct {
	Width, Height  int
	Title          string
	FPS            int
	CameraDistance float64    // camera on the z-axis, looking at the origin
	Trackball      bool       // right mouse button drag orbits the camera
	Background     color.RGBA // clear color
}

// Settings are the typed settings of the demo.
type Settings struct {
	Continuity      bezier.Continuity
	Boundary        bezier.TangentBoundary
	Clock           glider.Clock
	StageHalfExtent float64 // picks are accepted within this square around the origin
	Shapes          glider.Shapes
	Window          Window
	TraceLevel      tracing.TraceLevel
}

// FromConfiguration interprets a configuration. Keys which are not set take
// their default value. Malformed values are reported with ErrInvalidSetting.
func FromConfiguration(conf schuko.Configuration) (Settings, error) {
	r := reader{conf: conf}
	s := Settings{Shapes: glider.DefaultShapes}
	var err error
	if s.Continuity, err = bezier.ParseContinuity(r.str(KeyContinuity)); err != nil {
		return s, invalid(KeyContinuity, err)
	}
	if s.Boundary, err = bezier.ParseTangentBoundary(r.str(KeyTangentBoundary)); err != nil {
		return s, invalid(KeyTangentBoundary, err)
	}
	period := r.duration(KeyClockPeriod)
	if r.err == nil && period <= 0 {
		return s, fmt.Errorf("%w: %s must be positive", ErrInvalidSetting, KeyClockPeriod)
	}
	if s.Clock, err = glider.ParseClock(r.str(KeyClock), period); err != nil {
		return s, invalid(KeyClock, err)
	}
	s.StageHalfExtent = r.positive(KeyStageHalfExtent)
	s.Shapes.Anchor.Radius = r.positive(KeyMarkerRadius)
	s.Shapes.Joint.Radius = s.Shapes.Anchor.Radius
	s.Shapes.Glider.Radius = r.positive(KeyConeRadius)
	s.Shapes.Glider.Height = r.positive(KeyConeHeight)
	s.Window = Window{
		Width:          r.posint(KeyWindowWidth),
		Height:         r.posint(KeyWindowHeight),
		Title:          r.str(KeyWindowTitle),
		FPS:            r.posint(KeyWindowFPS),
		CameraDistance: r.positive(KeyCameraDistance),
		Trackball:      r.boolean(KeyCameraTrackball),
		Background:     r.color(KeyBackground),
	}
	s.TraceLevel = r.level(KeyTracingLevel)
	if r.err != nil {
		return s, r.err
	}
	tracer().Debugf("settings: %s continuity, %s tangents, stage ±%g",
		s.Continuity, s.Boundary, s.StageHalfExtent)
	return s, nil
}

// Options translates the settings into options for a glider.Controller.
func (s Settings) Options() []glider.Option {
	return []glider.Option{
		glider.WithContinuity(s.Continuity),
		glider.WithTangentBoundary(s.Boundary),
		glider.WithClock(s.Clock),
		glider.WithStage(ground.NewSquareStage(ground.XY, s.StageHalfExtent)),
		glider.WithShapes(s.Shapes),
	}
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidSetting, key, err)
}

// reader reads typed values, remembering the first error.
type reader struct {
	conf schuko.Configuration
	err  error
}

func (r *reader) str(key string) string {
	if r.conf.IsSet(key) {
		return r.conf.GetString(key)
	}
	return fmt.Sprintf("%v", defaults[key])
}

func (r *reader) fail(key, value string, reason string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s = %q: %s", ErrInvalidSetting, key, value, reason)
	}
}

func (r *reader) positive(key string) float64 {
	s := r.str(key)
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		r.fail(key, s, "not a number")
		return 0
	}
	if x <= 0 {
		r.fail(key, s, "must be positive")
		return 0
	}
	return x
}

func (r *reader) posint(key string) int {
	s := r.str(key)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		r.fail(key, s, "not a positive integer")
		return 0
	}
	return n
}

func (r *reader) boolean(key string) bool {
	s := r.str(key)
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		r.fail(key, s, "not a boolean")
		return false
	}
	return b
}

func (r *reader) duration(key string) time.Duration {
	s := r.str(key)
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		r.fail(key, s, "not a duration")
		return 0
	}
	return d
}

func (r *reader) level(key string) tracing.TraceLevel {
	s := r.str(key)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "error":
		return tracing.TraceLevelFromString(strings.TrimSpace(s))
	}
	r.fail(key, s, "expected one of debug, info, error")
	return tracing.LevelInfo
}

// color reads #rrggbb or #rgb.
func (r *reader) color(key string) color.RGBA {
	s := r.str(key)
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 6 || err != nil {
		r.fail(key, s, "not a color")
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}
}
