// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// HTTPMethod is the type used to hold the recognized HTTP request
// methods, following the teacher library's HTTPMethod enum shape
// (method.go's Method2Name table).
type HTTPMethod uint8

const (
	MUndef HTTPMethod = iota
	MConnect
	MCheckout
	MCopy
	MDelete
	MGet
	MHead
	MLock
	MMkcol
	MMove
	MMerge
	MMsearch
	MMkactivity
	MMkcalendar
	MNotify
	MOptions
	MPost
	MPropfind
	MPut
	MPurge
	MPatch
	MProppatch
	MReport
	MSubscribe
	MSearch
	MTrace
	MUnlock
	MUnsubscribe
	MOther // fallback for recognized-as-invalid, never returned mid-match
)

// Method2Name translates a numeric HTTPMethod to its ASCII name.
var Method2Name = [...][]byte{
	MUndef:       []byte(""),
	MConnect:     []byte("CONNECT"),
	MCheckout:    []byte("CHECKOUT"),
	MCopy:        []byte("COPY"),
	MDelete:      []byte("DELETE"),
	MGet:         []byte("GET"),
	MHead:        []byte("HEAD"),
	MLock:        []byte("LOCK"),
	MMkcol:       []byte("MKCOL"),
	MMove:        []byte("MOVE"),
	MMerge:       []byte("MERGE"),
	MMsearch:     []byte("M-SEARCH"),
	MMkactivity:  []byte("MKACTIVITY"),
	MMkcalendar:  []byte("MKCALENDAR"),
	MNotify:      []byte("NOTIFY"),
	MOptions:     []byte("OPTIONS"),
	MPost:        []byte("POST"),
	MPropfind:    []byte("PROPFIND"),
	MPut:         []byte("PUT"),
	MPurge:       []byte("PURGE"),
	MPatch:       []byte("PATCH"),
	MProppatch:   []byte("PROPPATCH"),
	MReport:      []byte("REPORT"),
	MSubscribe:   []byte("SUBSCRIBE"),
	MSearch:      []byte("SEARCH"),
	MTrace:       []byte("TRACE"),
	MUnlock:      []byte("UNLOCK"),
	MUnsubscribe: []byte("UNSUBSCRIBE"),
	MOther:       []byte("OTHER"),
}

// Name returns the ASCII method name.
func (m HTTPMethod) Name() []byte {
	if int(m) >= len(Method2Name) {
		return Method2Name[MUndef]
	}
	return Method2Name[m]
}

func (m HTTPMethod) String() string {
	return string(m.Name())
}

// methodFirstByte picks the initial candidate method for the first byte
// of a request-line token. Unrecognized first bytes return (MUndef,
// false); the caller reports ErrInvalidMethod.
//
// Every initial guess is the root of that byte's fork table (or simply
// the only method starting with that byte); later bytes fork away from
// it per §4.2's explicit fork table, mirrored in methodNext below.
func methodFirstByte(c byte) (HTTPMethod, bool) {
	switch c {
	case 'C':
		return MConnect, true // forks: CHECKOUT, COPY
	case 'D':
		return MDelete, true
	case 'G':
		return MGet, true
	case 'H':
		return MHead, true
	case 'L':
		return MLock, true
	case 'M':
		return MMkcol, true // forks: MOVE, MERGE, MSEARCH, MKACTIVITY, MKCALENDAR
	case 'N':
		return MNotify, true
	case 'O':
		return MOptions, true
	case 'P':
		return MPost, true // forks: PROPFIND (+ PROPPATCH), PUT (+ PURGE), PATCH
	case 'R':
		return MReport, true
	case 'S':
		return MSubscribe, true // forks: SEARCH
	case 'T':
		return MTrace, true
	case 'U':
		return MUnlock, true // forks: UNSUBSCRIBE
	}
	return MUndef, false
}

// methodNext advances method matching by one byte. index is the
// 0-based position of c within the candidate's name (the first byte,
// matched by methodFirstByte, is index 0; the next call passes index 1).
// It returns the (possibly forked) candidate and whether c was accepted.
func methodNext(candidate HTTPMethod, index int, c byte) (HTTPMethod, bool) {
	name := candidate.Name()
	if index < len(name) && c == name[index] {
		return candidate, true
	}
	switch candidate {
	case MConnect:
		switch {
		case index == 1 && c == 'H':
			return MCheckout, true
		case index == 2 && c == 'P':
			return MCopy, true
		}
	case MMkcol:
		switch {
		case index == 1 && c == 'O':
			return MMove, true
		case index == 1 && c == 'E':
			return MMerge, true
		case index == 1 && c == '-':
			return MMsearch, true
		case index == 2 && c == 'A':
			return MMkactivity, true
		case index == 3 && c == 'A':
			return MMkcalendar, true
		}
	case MSubscribe:
		if index == 1 && c == 'E' {
			return MSearch, true
		}
	case MPost:
		switch {
		case index == 1 && c == 'R':
			return MPropfind, true
		case index == 1 && c == 'U':
			return MPut, true
		case index == 1 && c == 'A':
			return MPatch, true
		}
	case MPut:
		if index == 2 && c == 'R' {
			return MPurge, true
		}
	case MUnlock:
		if index == 2 && c == 'S' {
			return MUnsubscribe, true
		}
	case MPropfind:
		if index == 4 && c == 'P' {
			return MProppatch, true
		}
	}
	return candidate, false
}

// methodDone returns true if index bytes have fully matched candidate's
// name (i.e. the method token is complete and the next byte should be
// the SP terminating it).
func methodDone(candidate HTTPMethod, index int) bool {
	return index == len(candidate.Name())
}
