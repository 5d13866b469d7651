// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package breathe defines the logic for the "breathe" demo app.
//
// This app drives a single LED matrix, slowly blending between colors around
// the hue wheel. With --shapes, it alternates between a set of centered
// shapes while it does so.
//
// This demonstrates how to build a matrix from a built-in or custom topology,
// bind it to a PixelPusher strip (or an in-memory strip for a dry run), and
// drive a blend engine from a fixed-rate control loop.
package breathe

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/danjacques/gopixelmatrix/blend"
	"github.com/danjacques/gopixelmatrix/geometry"
	"github.com/danjacques/gopixelmatrix/matrix"
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/strip"
	"github.com/danjacques/gopixelmatrix/support/logging"
	"github.com/danjacques/gopixelmatrix/support/network"
	"github.com/danjacques/gopixelmatrix/topology"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// shapes are cycled through when --shapes is supplied.
var shapes = []*matrix.Image{
	matrix.MustParseImage(
		".##.##.",
		"#######",
		"#######",
		".#####.",
		"..###..",
		"...#...",
	),
	matrix.MustParseImage(
		"..###..",
		".#...#.",
		"#.....#",
		"#.....#",
		"#.....#",
		".#...#.",
		"..###..",
	),
	matrix.MustParseImage(
		"...#...",
		"...#...",
		"#######",
		"...#...",
		"...#...",
	),
}

type app struct {
	kind       topology.KindFlag
	table      string
	strategy   geometry.StrategyFlag
	pusher     string
	strip      int
	fps        int
	brightness uint8
	period     time.Duration
	hueStep    float64
	shapes     bool
	debug      bool
	metrics    string

	logger logging.L
}

func (a *app) addFlags(fs *pflag.FlagSet) {
	fs.Var(&a.kind, "kind", "Built-in matrix kind. One of: "+topology.KindFlagValues()+".")
	fs.StringVar(&a.table, "topology", "",
		"Path to a custom topology table. Required if --kind is custom.")
	fs.Var(&a.strategy, "strategy", "Geometry storage strategy (dense, sparse).")
	fs.StringVar(&a.pusher, "pusher", "",
		"PixelPusher address (host:port) to send to. If empty, render to memory only.")
	fs.IntVar(&a.strip, "strip", 0, "PixelPusher strip number driving the matrix.")
	fs.IntVar(&a.fps, "fps", 30, "Frames rendered per second.")
	fs.Uint8Var(&a.brightness, "brightness", 0xFF, "Maximum brightness, from 0 to 255.")
	fs.DurationVar(&a.period, "period", 2*time.Second, "Duration of each blend.")
	fs.Float64Var(&a.hueStep, "hue-step", 37, "Degrees to advance around the hue wheel per blend.")
	fs.BoolVar(&a.shapes, "shapes", false, "Blend between shapes as well as colors.")
	fs.BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging.")
	fs.StringVar(&a.metrics, "metrics-addr", "",
		"If not empty, serve Prometheus metrics on this address.")
}

// Main is the main entry point.
func Main() {
	var a app
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	a.addFlags(fs)
	_ = fs.Parse(os.Args[1:])

	var zl *zap.Logger
	var err error
	if a.debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = zl.Sync() }()
	a.logger = zl.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := a.run(ctx); err != nil && errors.Cause(err) != context.Canceled {
		a.logger.Errorf("Demo failed: %s", err)
		os.Exit(1)
	}
}

func (a *app) loadTable() (*topology.Table, error) {
	if a.table != "" {
		return topology.Load(a.table)
	}
	if a.kind.Value() == topology.Custom {
		return nil, errors.New("a custom matrix requires --topology")
	}
	return topology.Builtin(a.kind.Value()), nil
}

func (a *app) driver() (strip.Driver, func(), error) {
	if a.pusher == "" {
		a.logger.Infof("No PixelPusher configured; rendering to memory.")
		return &strip.Memory{}, func() {}, nil
	}

	if _, err := net.ResolveUDPAddr("udp4", a.pusher); err != nil {
		return nil, nil, errors.Wrapf(err, "invalid PixelPusher address %q", a.pusher)
	}
	rds := network.ResilientDatagramSender{
		Factory: func() (network.DatagramSender, error) {
			conn, err := network.DialUDP4(a.pusher, 0)
			if err != nil {
				return nil, err
			}
			return network.UDPDatagramSender(conn, time.Second), nil
		},
	}
	p := strip.Pusher{
		Sender: &rds,
		Logger: a.logger,
	}
	return &p, func() { _ = rds.Close() }, nil
}

func (a *app) serveMetrics(ctx context.Context) {
	reg := prometheus.NewRegistry()
	strip.RegisterMonitoring(reg)
	matrix.RegisterMonitoring(reg)
	blend.RegisterMonitoring(reg)

	srv := http.Server{
		Addr:    a.metrics,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() {
		a.logger.Infof("Serving metrics on %s.", a.metrics)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Warnf("Metrics server failed: %s", err)
		}
	}()
}

func (a *app) run(ctx context.Context) error {
	if a.fps <= 0 {
		return errors.Errorf("invalid FPS %d", a.fps)
	}

	t, err := a.loadTable()
	if err != nil {
		return errors.Wrap(err, "could not load topology")
	}

	d, closeDriver, err := a.driver()
	if err != nil {
		return err
	}
	defer closeDriver()

	if a.metrics != "" {
		a.serveMetrics(ctx)

		name := a.pusher
		if name == "" {
			name = "memory"
		}
		d = strip.Monitor(d, name)
	}

	c := matrix.New(matrix.Options{
		Driver:   d,
		Strategy: a.strategy.Value(),
		Logger:   a.logger,
	})
	if err := c.InitTable(t, a.strip); err != nil {
		return err
	}
	c.SetMaxBrightness(a.brightness)
	a.logger.Infof("Driving %s matrix (%d element(s)) on strip %d.", c.Bounds(), c.Len(), a.strip)

	e := blend.New(c, blend.Options{Logger: a.logger})
	w := wheel{step: a.hueStep}

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	for i := 0; ; {
		if !e.Blending() {
			if err := a.next(e, &w, i); err != nil {
				return err
			}
			i++

			if s, err := c.Snapshot().JSON(); err == nil {
				a.logger.Debugf("Matrix state: %s", s)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := e.Update(); err != nil {
			return errors.Wrap(err, "could not render frame")
		}
	}
}

// next starts blend number i.
func (a *app) next(e *blend.Engine, w *wheel, i int) error {
	color := w.Next()
	if !a.shapes {
		return e.BlendToColor(color, a.period)
	}
	return e.BlendToImageColor(shapes[i%len(shapes)], color, a.period)
}

// wheel steps around the hue wheel at full saturation.
type wheel struct {
	hue  float64
	step float64
}

func (w *wheel) Next() pixel.P {
	r, g, b := colorful.Hsv(w.hue, 1, 1).RGB255()
	w.hue += w.step
	for w.hue >= 360 {
		w.hue -= 360
	}
	return pixel.RGB(r, g, b)
}
