package envvar

const (
	// CampusEnv is the environment variable used to determine the environment
	CampusEnv = "CAMPUS_ENV"

	// CampusConfigPath is the environment variable used to override the roster file
	CampusConfigPath = "CAMPUS_CONFIG_PATH"

	// CampusLogFile is the environment variable used to enable logging to a file
	CampusLogFile = "CAMPUS_LOG_FILE"
)
