package handler

// envelope is the standard success wrapper: every 2xx body is {"data": ...}.
type envelope struct {
	Data any `json:"data"`
}

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}
