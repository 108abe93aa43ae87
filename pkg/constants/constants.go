package constants

const (
	ServiceName  = "cardioai"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "CARDIOAI"
)

// NATS subjects published by the dashboard process.
const (
	SubjectPatientAdded  = "cardioai.patient.added"
	SubjectExportCreated = "cardioai.export.created"
)
