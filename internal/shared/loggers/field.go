package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDomain  = "domain"
	FieldOwner   = "owner"
	FieldLogFile = "log_file"

	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"

	FieldErrorCode = "error_code"
)
