// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// Type selects whether a Parser decodes requests, responses, or
// narrows itself to one of those on the first significant byte.
type Type uint8

const (
	Request Type = iota
	Response
	Both
)

// state is the primary grammar state (§4.1), grouped below by region.
type state uint8

const (
	sDead state = iota

	// start
	sStartReqOrRes
	sStartReqOrResH // saw 'H': ambiguous between "HEAD" and "HTTP/"
	sStartReq
	sStartRes

	// request line
	sReqMethod
	sReqURL
	sReqHTTPStart // matching literal "HTTP/"
	sReqHTTPMajor
	sReqHTTPMinor
	sReqLineAlmostDone // saw CR, expect LF (or accept bare LF directly)

	// response line
	sResHTTPStart // matching literal "HTTP/" or "EVENT/"
	sResHTTPMajor
	sResHTTPMinor
	sResSpaceBeforeStatus
	sResStatus // 3 status digits, position in p.index
	sResStatusSpaceOrCR
	sResStatusText
	sResLineAlmostDone

	// headers
	sHeaderFieldStart
	sHeaderField
	sHeaderFieldSpace // saw SP after the name, non-strict only; skip SP/HT to ':'
	sHeaderValueDiscardWS
	sHeaderValueDiscardWSCR // saw CR while discarding leading WS (empty value)
	sHeaderValueStart
	sHeaderValue
	sHeaderAlmostDone // saw CR while in value, expect LF
	sHeaderValueLWS   // peeking at first byte of the next line for obs-fold

	// end of headers
	sHeadersAlmostDone // saw the CR of the blank line, expect LF

	// body
	sBodyIdentity
	sBodyIdentityEOF

	// chunked body
	sChunkSizeStart
	sChunkSize
	sChunkParameters
	sChunkSizeAlmostDone
	sChunkData
	sChunkDataAlmostDone
	sChunkDataDone
)

const headerSizeLimit = 80 * 1024

const maxUint64 = ^uint64(0)

// noContentLength is the MAX sentinel from §3: "content_length unset".
const noContentLength = maxUint64
