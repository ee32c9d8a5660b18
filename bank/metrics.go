// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// result label values
const (
	resultCommitted = "committed"
	resultFailed    = "failed"
)

type metrics struct {
	registry     *prometheus.Registry
	instructions *prometheus.CounterVec
	duration     prometheus.Histogram
	airdrops     prometheus.Counter
}

// each bank has its own registry so that several can coexist
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		instructions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_instructions_total",
				Help: "Total number of instructions executed",
			},
			[]string{"result"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "documents_instruction_duration_seconds",
				Help:    "Instruction execution time including commit",
				Buckets: prometheus.DefBuckets,
			},
		),
		airdrops: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "documents_airdrop_lamports_total",
				Help: "Total lamports credited by airdrop",
			},
		),
	}
}

func (m *metrics) count(result string) uint64 {
	var metric dto.Metric
	if err := m.instructions.WithLabelValues(result).Write(&metric); nil != err {
		return 0
	}
	return uint64(metric.GetCounter().GetValue())
}
