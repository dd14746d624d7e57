/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exports alias registry activity to Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/alias/apis"
)

// Observer implements apis.Observer with Prometheus collectors.
// Use Register to expose them on a Prometheus registry.
type Observer struct {
	Registrations *prometheus.CounterVec
	Removals      prometheus.Counter
	Rejections    *prometheus.CounterVec
	Rewrites      *prometheus.CounterVec
}

// Ensure Observer implements apis.Observer.
var _ apis.Observer = (*Observer)(nil)

// NewObserver creates an Observer whose metric names start with namespace.
func NewObserver(namespace string) *Observer {
	return &Observer{
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alias_registrations_total",
				Help:      "Total number of alias registrations",
			},
			[]string{"overridden"},
		),
		Removals: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alias_removals_total",
				Help:      "Total number of aliases removed outside bulk rewrites",
			},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alias_rejections_total",
				Help:      "Total number of rejected registry operations",
			},
			[]string{"op", "code"},
		),
		Rewrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alias_rewrites_total",
				Help:      "Total number of entries changed by bulk rewrites",
			},
			[]string{"outcome"},
		),
	}
}

// Register registers all collectors with reg.
func (o *Observer) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{o.Registrations, o.Removals, o.Rejections, o.Rewrites} {
		if err := reg.Register(c); err != nil {
			return err //nolint:wrapcheck // prometheus errors are descriptive
		}
	}
	return nil
}

// MustRegister registers all collectors with reg and panics on failure
// (following prometheus convention).
func (o *Observer) MustRegister(reg prometheus.Registerer) {
	if err := o.Register(reg); err != nil {
		panic(err)
	}
}

// AliasRegistered counts a registration.
func (o *Observer) AliasRegistered(_, _ string, overridden bool) {
	o.Registrations.WithLabelValues(strconv.FormatBool(overridden)).Inc()
}

// AliasRemoved counts a removal.
func (o *Observer) AliasRemoved(_ string) {
	o.Removals.Inc()
}

// OperationRejected counts a rejected operation by error code.
func (o *Observer) OperationRejected(op, code string) {
	o.Rejections.WithLabelValues(op, code).Inc()
}

// AliasesResolved counts rewritten and removed entries of a bulk rewrite.
func (o *Observer) AliasesResolved(rewritten, removed int) {
	o.Rewrites.WithLabelValues("rewritten").Add(float64(rewritten))
	o.Rewrites.WithLabelValues("removed").Add(float64(removed))
}

// NewAliasCount returns a gauge reporting reg.Count() at scrape time.
func NewAliasCount(namespace string, reg apis.Registry) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aliases",
			Help:      "Number of registered aliases",
		},
		func() float64 { return float64(reg.Count()) },
	)
}
