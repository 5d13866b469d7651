// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package strip

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stripShows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_shows",
		Help: "Count of buffers pushed to a strip.",
	},
		[]string{"name"})

	stripShowErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_show_errors",
		Help: "Count of errors encountered pushing buffers to a strip.",
	},
		[]string{"name"})

	stripLengthGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "strip_length",
		Help: "Number of elements attached to a strip.",
	},
		[]string{"name"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		stripShows,
		stripShowErrors,
		stripLengthGauge,
	)
}

// Monitor wraps d in a shim that records metrics labelled with name.
func Monitor(d Driver, name string) Driver {
	return &monitoredDriver{
		Driver: d,
		labels: prometheus.Labels{"name": name},
	}
}

type monitoredDriver struct {
	Driver
	labels prometheus.Labels
}

func (md *monitoredDriver) SetLength(n int) {
	md.Driver.SetLength(n)
	stripLengthGauge.With(md.labels).Set(float64(md.Driver.Len()))
}

func (md *monitoredDriver) Show() error {
	if err := md.Driver.Show(); err != nil {
		stripShowErrors.With(md.labels).Inc()
		return err
	}
	stripShows.With(md.labels).Inc()
	return nil
}
