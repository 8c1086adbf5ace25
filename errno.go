// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// Errno is the closed set of parse-failure kinds a Parser can report.
// Once set on a Parser it is sticky: see Parser.Errno and Invariant 1.
type Errno uint8

// Errno values. ErrNone (the zero value) means "no error".
const (
	ErrNone Errno = iota

	// callback-originated errors: the hook itself aborted parsing.
	ErrCBMessageBegin
	ErrCBURL
	ErrCBHeaderField
	ErrCBHeaderValue
	ErrCBHeadersComplete
	ErrCBBody
	ErrCBMessageComplete
	ErrCBStatus

	ErrStrict
	ErrInvalidVersion
	ErrInvalidStatus
	ErrInvalidMethod
	ErrInvalidURL
	ErrInvalidHost
	ErrInvalidPort
	ErrInvalidPath
	ErrInvalidQueryString
	ErrInvalidFragment
	ErrLFExpected
	ErrInvalidHeaderToken
	ErrInvalidContentLength
	ErrInvalidChunkSize
	ErrInvalidConstant
	ErrInvalidInternalState

	// ErrPaused is the sole recoverable error, set by Pause(true) and
	// cleared by Pause(false).
	ErrPaused

	ErrHeaderOverflow
	ErrClosedConnection
	ErrInvalidEOFState
	ErrUnknownError
)

var errnoStr = [...]string{
	ErrNone:                  "no error",
	ErrCBMessageBegin:        "on_message_begin callback error",
	ErrCBURL:                 "on_url callback error",
	ErrCBHeaderField:         "on_header_field callback error",
	ErrCBHeaderValue:         "on_header_value callback error",
	ErrCBHeadersComplete:     "on_headers_complete callback error",
	ErrCBBody:                "on_body callback error",
	ErrCBMessageComplete:     "on_message_complete callback error",
	ErrCBStatus:              "on_status callback error",
	ErrStrict:                "strict mode violation",
	ErrInvalidVersion:        "invalid HTTP version",
	ErrInvalidStatus:         "invalid status code",
	ErrInvalidMethod:         "invalid method",
	ErrInvalidURL:            "invalid URL",
	ErrInvalidHost:           "invalid host",
	ErrInvalidPort:           "invalid port",
	ErrInvalidPath:           "invalid path",
	ErrInvalidQueryString:    "invalid query string",
	ErrInvalidFragment:       "invalid fragment",
	ErrLFExpected:            "LF expected",
	ErrInvalidHeaderToken:    "invalid character in header token",
	ErrInvalidContentLength:  "invalid Content-Length value",
	ErrInvalidChunkSize:      "invalid chunk size",
	ErrInvalidConstant:       "invalid constant string",
	ErrInvalidInternalState:  "invalid internal state (bug)",
	ErrPaused:                "parser paused",
	ErrHeaderOverflow:        "header section too large",
	ErrClosedConnection:      "data received after connection close",
	ErrInvalidEOFState:       "invalid EOF state",
	ErrUnknownError:          "unknown error",
}

// String implements the Stringer interface.
func (e Errno) String() string {
	if int(e) >= len(errnoStr) {
		return "invalid errno"
	}
	return errnoStr[e]
}
