package response

const (
	// MessageSuccess is the message returned on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when the real error must stay hidden.
	DefaultErrorMessage = "Internal server error"

	// InternalServerErrorCode is the error_code for unhandled failures.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
