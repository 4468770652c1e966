package report

// Config selects the sinks every batch report is sent to. The log sink is
// always active when a logger is available; the audit sink needs a Kafka
// publisher in the container.
type Config struct {
	// Table renders each report as a console table.
	Table bool `yaml:"table" envconfig:"REPORT_TABLE"`

	// Audit publishes one Kafka event per outcome.
	Audit bool `yaml:"audit" envconfig:"REPORT_AUDIT"`
}
