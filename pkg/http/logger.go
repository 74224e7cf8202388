package http

// HTTPLogger receives a callback for every outgoing request and its outcome.
type HTTPLogger interface {
	// LogRequest is called before the request is sent.
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a 2xx response was read.
	LogResponseSuccess(method, url string, httpStatus int, responseSize int, latency int64)

	// LogResponseError is called on transport failures (httpStatus 0) and non-2xx responses.
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}
