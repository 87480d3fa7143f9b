package http

const (
	StatusOK        uint16 = 200 // RFC 7231, 6.3.1
	StatusCreated   uint16 = 201 // RFC 7231, 6.3.2
	StatusNoContent uint16 = 204 // RFC 7231, 6.3.5

	StatusBadRequest       uint16 = 400 // RFC 7231, 6.5.1
	StatusNotFound         uint16 = 404 // RFC 7231, 6.5.4
	StatusMethodNotAllowed uint16 = 405 // RFC 7231, 6.5.5
	StatusLengthRequired   uint16 = 411 // RFC 7231, 6.5.10

	StatusInternalServerError uint16 = 500 // RFC 7231, 6.6.1
	StatusNotImplemented      uint16 = 501 // RFC 7231, 6.6.2
	StatusInsufficientStorage uint16 = 507 // RFC 4918, 11.5
)

var (
	unknownStatusCode = "Unknown Status Code"

	statusMessages = []string{
		StatusOK:        "OK",
		StatusCreated:   "Created",
		StatusNoContent: "No Content",

		StatusBadRequest:       "Bad Request",
		StatusNotFound:         "Not Found",
		StatusMethodNotAllowed: "Method Not Allowed",
		StatusLengthRequired:   "Length Required",

		StatusInternalServerError: "Internal Server Error",
		StatusNotImplemented:      "Not Implemented",
		StatusInsufficientStorage: "Insufficient Storage",
	}
)

// StatusText returns the reason phrase for a status code. Clients only act on
// the numeric code; the phrase is informational.
func StatusText(status uint16) string {
	if int(status) < len(statusMessages) && statusMessages[status] != "" {
		return statusMessages[status]
	}
	return unknownStatusCode
}
