// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package matrix

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	renderColor = "color"
	renderImage = "image"
)

var (
	matrixElementsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matrix_elements",
		Help: "Number of elements in the most recently initialized matrix.",
	},
		[]string{"strategy"})

	matrixRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matrix_renders",
		Help: "Count of whole-matrix renders.",
	},
		[]string{"kind"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		matrixElementsGauge,
		matrixRenders,
	)
}

func monitorInit(c *Controller) {
	matrixElementsGauge.WithLabelValues(c.strategy.String()).Set(float64(c.Len()))
}

func monitorRender(kind string) { matrixRenders.WithLabelValues(kind).Inc() }
