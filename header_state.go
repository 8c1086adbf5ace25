// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

import "github.com/intuitivelabs/bytescase"

// hdrID names the handful of header fields this parser gives special
// treatment to. Anything else is hdrOther and just flows through the
// OnHeaderField/OnHeaderValue callbacks verbatim (§4.4).
type hdrID uint8

const (
	hdrOther hdrID = iota
	hdrConnection
	hdrContentLength
	hdrTransferEncoding
	hdrUpgrade
)

// hdrCand is a bitset over the still-possible recognized header names,
// the generalisation of the spec's "(name_id, position) cursor" (§9)
// needed here because "Connection" and "Content-Length" share a
// 3-byte prefix ("con") and must be tracked simultaneously until they
// diverge. Matching is case-insensitive via bytescase.ByteToLower, the
// same OR-0x20 trick the teacher library uses throughout parse_fline.go
// and parse_headers.go.
type hdrCand uint8

const (
	candConnection hdrCand = 1 << iota
	candProxyConnection
	candContentLength
	candTransferEncoding
	candUpgrade
)

var hdrCandName = map[hdrCand]string{
	candConnection:       "connection",
	candProxyConnection:  "proxy-connection",
	candContentLength:    "content-length",
	candTransferEncoding: "transfer-encoding",
	candUpgrade:          "upgrade",
}

var hdrCandID = map[hdrCand]hdrID{
	candConnection:       hdrConnection,
	candProxyConnection:  hdrConnection, // Proxy-Connection behaves like Connection (§4.1/§6)
	candContentLength:    hdrContentLength,
	candTransferEncoding: hdrTransferEncoding,
	candUpgrade:          hdrUpgrade,
}

const allHdrCands = candConnection | candProxyConnection | candContentLength |
	candTransferEncoding | candUpgrade

// headerNameMatcher tracks in-progress case-insensitive matching of a
// header field name against the recognized set, one byte at a time.
type headerNameMatcher struct {
	cands hdrCand // still-possible candidates
	pos   int     // bytes matched so far
}

func (m *headerNameMatcher) reset() {
	m.cands = allHdrCands
	m.pos = 0
}

// step feeds one byte of the header name. It narrows m.cands to the
// candidates whose name still matches at m.pos, then advances m.pos.
func (m *headerNameMatcher) step(c byte) {
	lc := bytescase.ByteToLower(c)
	remaining := hdrCand(0)
	for cand := hdrCand(1); cand <= candUpgrade; cand <<= 1 {
		if m.cands&cand == 0 {
			continue
		}
		name := hdrCandName[cand]
		if m.pos < len(name) && name[m.pos] == lc {
			remaining |= cand
		}
	}
	m.cands = remaining
	m.pos++
}

// result returns the recognized header id if, at end of name (when the
// ':' delimiter is seen), exactly one full-length candidate survived.
func (m *headerNameMatcher) result() hdrID {
	for cand := hdrCand(1); cand <= candUpgrade; cand <<= 1 {
		if m.cands&cand != 0 && len(hdrCandName[cand]) == m.pos {
			return hdrCandID[cand]
		}
	}
	return hdrOther
}

// valueCand is the bitset equivalent for the handful of recognized
// header *values* (§4.4): "chunked" for Transfer-Encoding and
// "keep-alive"/"close" for Connection / Proxy-Connection.
type valueCand uint8

const (
	valChunked valueCand = 1 << iota
	valKeepAlive
	valClose
)

var valCandName = map[valueCand]string{
	valChunked:   "chunked",
	valKeepAlive: "keep-alive",
	valClose:     "close",
}

const allValueCands = valChunked | valKeepAlive | valClose

type headerValueMatcher struct {
	cands   valueCand
	pos     int
	started bool // value keyword matching starts only at the first non-WS byte (§4.4)
}

func (m *headerValueMatcher) reset() {
	*m = headerValueMatcher{}
}

func (m *headerValueMatcher) step(c byte) {
	if !m.started {
		m.cands = allValueCands
		m.started = true
	}
	lc := bytescase.ByteToLower(c)
	remaining := valueCand(0)
	for cand := valueCand(1); cand <= valClose; cand <<= 1 {
		if m.cands&cand == 0 {
			continue
		}
		name := valCandName[cand]
		if m.pos < len(name) && name[m.pos] == lc {
			remaining |= cand
		}
	}
	m.cands = remaining
	m.pos++
}

// matched returns the fully-matched value keyword, if the last byte fed
// completed one and no extra trailing byte has been fed since (a
// trailing non-terminator byte collapses m.cands to 0 via step, per
// "connection: keep-alive-ish does not count", §4.4).
func (m *headerValueMatcher) matched() valueCand {
	for cand := valueCand(1); cand <= valClose; cand <<= 1 {
		if m.cands&cand != 0 && len(valCandName[cand]) == m.pos {
			return cand
		}
	}
	return 0
}
