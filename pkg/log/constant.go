package log

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// FieldRequestID is the structured field carrying the request ID.
	FieldRequestID = "request_id"
)
