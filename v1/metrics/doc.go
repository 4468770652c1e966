// Package metrics exposes schemasync's operation metrics to Prometheus.
//
// *Metrics implements observability.Observer: wire it into the registry
// client, the reconciler and the Kafka publisher and every completed
// operation is counted and timed. Reconciliation outcomes are counted
// separately by kind and dry-run flag.
//
// Metrics live in a dedicated registry and carry a constant "service" label.
// A long-running deployment serves them on Config.Address; a one-shot CLI
// run writes them to Config.TextfilePath on shutdown for the node-exporter
// textfile collector.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "schemasync"})
//	client = client.WithObserver(m)
//	defer m.WriteTextfile("/var/lib/node_exporter/schemasync.prom")
package metrics
