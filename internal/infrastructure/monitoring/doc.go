/*
Package monitoring provides metrics collection for filesystem operations.

# Overview

This package implements Prometheus-based metrics for fsutil: how many
operations ran and how long they took, how many entries tree walks
yielded, and how many uncompressed bytes went into or out of archives.

Metrics live on a private registry so embedding programs decide whether and
where to expose them. A nil *Metrics records nothing, which is the default
when metrics are disabled.

# Usage

	metrics := monitoring.NewMetrics()

	timer := monitoring.NewTimer(metrics, "zip")
	// ... perform operation ...
	timer.StopErr(err)

# Exposition

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
*/
package monitoring
