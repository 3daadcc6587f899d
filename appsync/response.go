package appsync

import "encoding/json"

// Response is the payload returned to AppSync for a single resolver
// invocation. It carries either a data value or an error envelope,
// never both; the JSON shape is {"data":...} on success and
// {"errorType":...,"errorMessage":...} on failure.
type Response struct {
	data any
	err  *Error
}

// DataResponse wraps a successful resolver result.
func DataResponse(v any) Response {
	return Response{data: v}
}

// ErrorResponse wraps a resolver failure.
func ErrorResponse(err *Error) Response {
	return Response{err: err}
}

// Unauthorized is the canonical response returned when a request hook
// rejects an event before dispatch.
func Unauthorized() Response {
	return ErrorResponse(NewError("Unauthorized", "This operation cannot be authorized"))
}

// Err returns the error envelope, or nil for a data response.
func (r Response) Err() *Error { return r.err }

// Data returns the data value carried by a successful response.
func (r Response) Data() any { return r.data }

func (r Response) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(r.err)
	}
	return json.Marshal(struct {
		Data any `json:"data"`
	}{r.data})
}
