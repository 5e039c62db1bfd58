package messages

// Config messages for loading and validation.
const (
	ConfigReadFailedFmt       = "failed to read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v"
	ConfigFieldRequiredFmt    = "%s: %s is required"
	ConfigValidationGuidance  = "(see pyprep.toml; remove the file to use defaults)"
)
