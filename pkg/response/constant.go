package response

const (
	// MessageSuccess is the message body of every OK response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failure detail from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500s.
	InternalServerErrorCode = 500

	// DateFormat is the wire layout for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire layout for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
