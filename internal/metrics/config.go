// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors sitecfg records into.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeUnchanged = "unchanged"

	ListLinks         = "links"
	ListExternalLinks = "external_links"
)

var (
	configLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitecfg_config_loads_total",
		Help: "Configuration load attempts by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	configReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitecfg_config_reloads_total",
		Help: "Configuration reload attempts by outcome",
	}, []string{"outcome"}) // outcome=success|failure|unchanged

	configNavLinks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sitecfg_config_nav_links",
		Help: "Number of navigation links in the active configuration",
	}, []string{"list"}) // list=links|external_links

	configLastLoad = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sitecfg_config_last_load_timestamp_seconds",
		Help: "Unix time of the last successful configuration load",
	})
)

// RecordConfigLoad counts one load attempt.
func RecordConfigLoad(outcome string) {
	configLoadsTotal.WithLabelValues(outcome).Inc()
}

// RecordConfigReload counts one reload attempt.
func RecordConfigReload(outcome string) {
	configReloadsTotal.WithLabelValues(outcome).Inc()
}

// SetActiveConfig publishes the shape of the configuration that just became active.
func SetActiveConfig(links, externalLinks int, loadedAt time.Time) {
	configNavLinks.WithLabelValues(ListLinks).Set(float64(links))
	configNavLinks.WithLabelValues(ListExternalLinks).Set(float64(externalLinks))
	configLastLoad.Set(float64(loadedAt.Unix()))
}
