// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package blend

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	channelColor      = "color"
	channelImage      = "image"
	channelImageColor = "image+color"
)

var (
	blendStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blend_started",
		Help: "Count of blends started.",
	},
		[]string{"channel"})

	blendCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blend_completed",
		Help: "Count of blends that reached their target.",
	})

	blendFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blend_frames",
		Help: "Count of frames rendered by Update.",
	})

	blendActiveGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "blend_active",
		Help: "Number of blends in progress.",
	})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		blendStarted,
		blendCompleted,
		blendFrames,
		blendActiveGauge,
	)
}

// monitorStart records a started blend. If redirect is true, the blend replaced
// one already in progress.
func monitorStart(channel string, redirect bool) {
	blendStarted.WithLabelValues(channel).Inc()
	if !redirect {
		blendActiveGauge.Inc()
	}
}

func monitorFrame() { blendFrames.Inc() }

func monitorComplete() {
	blendCompleted.Inc()
	blendActiveGauge.Dec()
}
