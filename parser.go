// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// Parser is a resumable, byte-at-a-time HTTP/1.x message parser. It never
// buffers a whole message: Execute consumes whatever slice it is handed,
// drives Callbacks as regions of interest open and close, and returns
// ready to resume on the next call with more bytes. The zero value is not
// usable; construct one with New.
type Parser struct {
	// Type is the current message's effective type. For a Both parser
	// this narrows to Request or Response on the first significant byte
	// (or, after a leading 'H', on the byte that follows it) of every
	// message and is reset back to Both when the next message
	// begins (ctorType records what the embedder actually asked for).
	Type Type

	// Strict enables the pickier character classes and rejects the
	// leniencies documented in Invariant 5 (bare LF line endings, SP
	// between a header name and its ':', TAB/FF/high-bit URL bytes).
	// SP inside a header name (followed by more name bytes) is rejected
	// in both modes. Defaults to false.
	Strict bool

	Version      Version
	Method       HTTPMethod
	StatusCode   uint16
	ResponseType ResponseType
	Upgrade      bool
	Errno        Errno

	ctorType state2type

	state state
	index int // small counter reused by method/version/status matching

	nread int // bytes consumed in the current header region (§Invariant 3)

	flags         Flags
	contentLength uint64
	bodyComplete  bool // true once the most recently parsed message's body finished

	urlState urlState

	nameMatcher  headerNameMatcher
	valueMatcher headerValueMatcher
	matchedHdr   hdrID

	clenTmp     uint64
	clenStarted bool

	chunkRemaining uint64

	verMajorTmp   uint16
	verMinorTmp   uint16
	sawMajorDigit bool
	sawMinorDigit bool
}

// state2type is just Type; ctorType's purpose is explained in the comment
// on the Type field above.
type state2type = Type

// New constructs a Parser that decodes messages of the given Type. Pass
// Both to have the parser narrow itself on the first byte of each message.
func New(t Type) *Parser {
	p := &Parser{ctorType: t}
	p.initMessage()
	return p
}

// initMessage resets all per-message state and picks the starting state
// for p.ctorType. Called by New and again by emitMessageBegin when each
// new message begins.
func (p *Parser) initMessage() {
	p.Type = p.ctorType
	p.Method = MUndef
	p.StatusCode = 0
	p.ResponseType = RTNone
	p.Upgrade = false
	p.Errno = ErrNone
	p.Version = Version{Major: 1, Minor: 0}
	p.flags.Reset()
	p.index = 0
	p.nread = 0
	p.contentLength = noContentLength
	p.bodyComplete = false
	p.clenTmp = 0
	p.clenStarted = false
	p.chunkRemaining = 0
	switch p.ctorType {
	case Request:
		p.state = sStartReq
	case Response:
		p.state = sStartRes
	default:
		p.state = sStartReqOrRes
	}
}

// BodyIsFinal reports whether the most recently parsed message's body has
// completed (i.e. OnMessageComplete has already fired for it).
func (p *Parser) BodyIsFinal() bool {
	return p.bodyComplete
}

// needsEOF reports whether, absent an explicit framing mechanism, the end
// of the message can only be signalled by the connection closing (§4.6).
func (p *Parser) needsEOF() bool {
	if p.Type == Request {
		return false
	}
	if p.StatusCode/100 == 1 || p.StatusCode == 204 || p.StatusCode == 304 {
		return false
	}
	if p.flags.Test(FSkipBody) {
		return false
	}
	if p.flags.Test(FChunked) {
		return false
	}
	if p.contentLength != noContentLength {
		return false
	}
	return true
}

// ShouldKeepAlive reports whether the connection should remain open once
// the current message completes (§4.6).
func (p *Parser) ShouldKeepAlive() bool {
	if p.Version.AtLeast(1, 1) {
		if p.flags.Test(FConnectionClose) {
			return false
		}
	} else if !p.flags.Test(FConnectionKeepAlive) {
		return false
	}
	return !p.needsEOF()
}

// Pause toggles the parser's paused state. Pause(true) is the only way to
// set ErrPaused; Pause(false) clears it. Calling either while the parser
// already holds a different, non-recoverable error is a programming
// error and panics, mirroring the original implementation's assertion
// that pause() is never called on an already-failed parser.
func (p *Parser) Pause(on bool) {
	if p.Errno != ErrNone && p.Errno != ErrPaused {
		panic("httpstream: Pause called on a parser already in a non-Paused error state")
	}
	if on {
		p.Errno = ErrPaused
		return
	}
	p.Errno = ErrNone
}

// Execute feeds data to the parser and drives cb for every region that
// opens or closes while consuming it. It returns the number of bytes of
// data it consumed; per Invariant 1 that equals len(data) unless an error
// (other than Paused, which is recoverable) was raised partway through, in
// which case the return value is the offset of the offending byte and
// p.Errno names the failure. When headers complete with Upgrade set or
// for a CONNECT request, parsing stops without an error and the return
// value is the offset just past the blank line that ended the headers.
//
// Passing a zero-length data signals end-of-stream; see §4.1 item 2 for
// the states in which that is legal.
func (p *Parser) Execute(cb Callbacks, data []byte) int {
	if cb == nil {
		cb = NoopCallbacks{}
	}
	if p.Errno != ErrNone {
		return 0
	}
	if len(data) == 0 {
		return p.executeEOF(cb)
	}

	urlMark, statusMark, fieldMark, valueMark, bodyMark := -1, -1, -1, -1, -1
	switch p.state {
	case sReqURL:
		urlMark = 0
	case sResStatusText:
		statusMark = 0
	case sHeaderField:
		fieldMark = 0
	case sHeaderValue:
		valueMark = 0
	case sBodyIdentity, sBodyIdentityEOF, sChunkData:
		bodyMark = 0
	}

	i := 0
	for i < len(data) {
		switch p.state {
		case sBodyIdentity:
			if bodyMark < 0 {
				bodyMark = i
			}
			remain := uint64(len(data) - i)
			take := remain
			if take > p.contentLength {
				take = p.contentLength
			}
			i += int(take)
			p.contentLength -= take
			if p.contentLength == 0 {
				if err := p.closeBody(cb, data, i, &bodyMark); err != ErrNone {
					p.Errno = err
					return i
				}
				ns, err := p.finishMessage(cb)
				if err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = ns
			}
			continue
		case sBodyIdentityEOF:
			if bodyMark < 0 {
				bodyMark = i
			}
			i = len(data)
			continue
		case sChunkData:
			if bodyMark < 0 {
				bodyMark = i
			}
			remain := uint64(len(data) - i)
			take := remain
			if take > p.chunkRemaining {
				take = p.chunkRemaining
			}
			i += int(take)
			p.chunkRemaining -= take
			if p.chunkRemaining == 0 {
				if err := p.closeBody(cb, data, i, &bodyMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = sChunkDataAlmostDone
			}
			continue
		}

		if inHeaderRegion(p.state) {
			p.nread++
			if p.nread > headerSizeLimit {
				p.Errno = ErrHeaderOverflow
				return i
			}
		}

		c := data[i]
	reprocess:
		switch p.state {
		case sDead:
			if c != '\r' && c != '\n' {
				p.Errno = ErrClosedConnection
				return i
			}

		case sStartReqOrRes:
			if c == '\r' || c == '\n' {
				break
			}
			if err := p.emitMessageBegin(cb); err != ErrNone {
				p.Errno = err
				return i
			}
			switch c {
			case 'H':
				p.index = 1
				p.state = sStartReqOrResH
			case 'E':
				p.Type = Response
				p.ResponseType = RTEvent
				p.index = 1
				p.state = sResHTTPStart
			default:
				p.Type = Request
				cand, ok := methodFirstByte(c)
				if !ok {
					p.Errno = ErrInvalidMethod
					return i
				}
				p.Method = cand
				p.index = 1
				p.state = sReqMethod
			}

		case sStartReqOrResH:
			switch c {
			case 'T':
				p.Type = Response
				p.ResponseType = RTHttp
				p.index = 2
				p.state = sResHTTPStart
			case 'E':
				p.Type = Request
				p.Method = MHead
				p.index = 2
				p.state = sReqMethod
			default:
				p.Errno = ErrInvalidMethod
				return i
			}

		case sStartReq:
			if c == '\r' || c == '\n' {
				break
			}
			if err := p.emitMessageBegin(cb); err != ErrNone {
				p.Errno = err
				return i
			}
			cand, ok := methodFirstByte(c)
			if !ok {
				p.Errno = ErrInvalidMethod
				return i
			}
			p.Method = cand
			p.index = 1
			p.state = sReqMethod

		case sStartRes:
			if c == '\r' || c == '\n' {
				break
			}
			if err := p.emitMessageBegin(cb); err != ErrNone {
				p.Errno = err
				return i
			}
			switch c {
			case 'H':
				p.ResponseType = RTHttp
			case 'E':
				p.ResponseType = RTEvent
			default:
				p.Errno = ErrInvalidVersion
				return i
			}
			p.index = 1
			p.state = sResHTTPStart

		case sReqMethod:
			if c == ' ' {
				if !methodDone(p.Method, p.index) {
					p.Errno = ErrInvalidMethod
					return i
				}
				p.state = sReqURL
				p.urlState = uSpacesBeforeURL
				break
			}
			cand, ok := methodNext(p.Method, p.index, c)
			if !ok {
				p.Errno = ErrInvalidMethod
				return i
			}
			p.Method = cand
			p.index++

		case sReqURL:
			if c == ' ' {
				if p.urlState == uSpacesBeforeURL {
					break
				}
				if err := p.closeURL(cb, data, i, &urlMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = sReqHTTPStart
				p.index = 0
				break
			}
			if c == '\r' || c == '\n' {
				if p.urlState == uSpacesBeforeURL {
					p.Errno = ErrInvalidURL
					return i
				}
				if err := p.closeURL(cb, data, i, &urlMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.Version = Version{Major: 0, Minor: 9}
				p.state = sHeaderFieldStart
				goto reprocess
			}
			ns := urlNext(p.urlState, c, p.Strict)
			if ns == uURLDead {
				p.Errno = ErrInvalidURL
				return i
			}
			if urlMark < 0 {
				urlMark = i
			}
			p.urlState = ns

		case sReqHTTPStart:
			if c != "HTTP/"[p.index] {
				p.Errno = ErrInvalidVersion
				return i
			}
			p.index++
			if p.index == len("HTTP/") {
				p.state = sReqHTTPMajor
				p.verMajorTmp, p.sawMajorDigit = 0, false
			}

		case sReqHTTPMajor:
			if isDigit(c) {
				v := p.verMajorTmp*10 + uint16(c-'0')
				if v > 99 {
					p.Errno = ErrInvalidVersion
					return i
				}
				p.verMajorTmp = v
				p.sawMajorDigit = true
				break
			}
			if c == '.' && p.sawMajorDigit {
				p.state = sReqHTTPMinor
				p.verMinorTmp, p.sawMinorDigit = 0, false
				break
			}
			p.Errno = ErrInvalidVersion
			return i

		case sReqHTTPMinor:
			if isDigit(c) {
				v := p.verMinorTmp*10 + uint16(c-'0')
				if v > 99 {
					p.Errno = ErrInvalidVersion
					return i
				}
				p.verMinorTmp = v
				p.sawMinorDigit = true
				break
			}
			if !p.sawMinorDigit {
				p.Errno = ErrInvalidVersion
				return i
			}
			p.Version = Version{Major: p.verMajorTmp, Minor: p.verMinorTmp}
			switch c {
			case '\r':
				p.state = sReqLineAlmostDone
			case '\n':
				if p.Strict {
					p.Errno = ErrStrict
					return i
				}
				p.state = sHeaderFieldStart
			default:
				p.Errno = ErrInvalidVersion
				return i
			}

		case sReqLineAlmostDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			p.state = sHeaderFieldStart

		case sResHTTPStart:
			lit := "HTTP/"
			if p.ResponseType == RTEvent {
				lit = "EVENT/"
			}
			if c != lit[p.index] {
				p.Errno = ErrInvalidVersion
				return i
			}
			p.index++
			if p.index == len(lit) {
				p.state = sResHTTPMajor
				p.verMajorTmp, p.sawMajorDigit = 0, false
			}

		case sResHTTPMajor:
			if isDigit(c) {
				v := p.verMajorTmp*10 + uint16(c-'0')
				if v > 99 {
					p.Errno = ErrInvalidVersion
					return i
				}
				p.verMajorTmp = v
				p.sawMajorDigit = true
				break
			}
			if c == '.' && p.sawMajorDigit {
				p.state = sResHTTPMinor
				p.verMinorTmp, p.sawMinorDigit = 0, false
				break
			}
			p.Errno = ErrInvalidVersion
			return i

		case sResHTTPMinor:
			if isDigit(c) {
				v := p.verMinorTmp*10 + uint16(c-'0')
				if v > 99 {
					p.Errno = ErrInvalidVersion
					return i
				}
				p.verMinorTmp = v
				p.sawMinorDigit = true
				break
			}
			if c == ' ' && p.sawMinorDigit {
				p.Version = Version{Major: p.verMajorTmp, Minor: p.verMinorTmp}
				p.state = sResSpaceBeforeStatus
				break
			}
			p.Errno = ErrInvalidVersion
			return i

		case sResSpaceBeforeStatus:
			if c == ' ' {
				break
			}
			if !isDigit(c) {
				p.Errno = ErrInvalidStatus
				return i
			}
			p.state = sResStatus
			p.index = 0
			p.StatusCode = 0
			goto reprocess

		case sResStatus:
			if !isDigit(c) {
				p.Errno = ErrInvalidStatus
				return i
			}
			p.StatusCode = p.StatusCode*10 + uint16(c-'0')
			p.index++
			if p.index == 3 {
				p.state = sResStatusSpaceOrCR
			}

		case sResStatusSpaceOrCR:
			switch c {
			case ' ':
				p.state = sResStatusText
			case '\r':
				p.state = sResLineAlmostDone
			case '\n':
				if p.Strict {
					p.Errno = ErrStrict
					return i
				}
				p.state = sHeaderFieldStart
			default:
				p.Errno = ErrInvalidStatus
				return i
			}

		case sResStatusText:
			if statusMark < 0 {
				statusMark = i
			}
			switch c {
			case '\r':
				if err := p.closeStatus(cb, data, i, &statusMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = sResLineAlmostDone
			case '\n':
				if err := p.closeStatus(cb, data, i, &statusMark); err != ErrNone {
					p.Errno = err
					return i
				}
				if p.Strict {
					p.Errno = ErrStrict
					return i
				}
				p.state = sHeaderFieldStart
			}

		case sResLineAlmostDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			p.state = sHeaderFieldStart

		case sHeaderFieldStart:
			if c == '\r' {
				p.state = sHeadersAlmostDone
				break
			}
			if c == '\n' {
				i++
				ns, stop, retIdx, err := p.headersComplete(cb, data, i)
				if err != ErrNone {
					p.Errno = err
					return retIdx
				}
				if stop {
					return retIdx
				}
				p.state = ns
				continue
			}
			if !isHeaderTokenChar(c) {
				p.Errno = ErrInvalidHeaderToken
				return i
			}
			fieldMark = i
			p.nameMatcher.reset()
			p.nameMatcher.step(c)
			p.state = sHeaderField

		case sHeaderField:
			switch {
			case c == ':':
				if err := p.closeField(cb, data, i, &fieldMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.matchedHdr = p.nameMatcher.result()
				p.valueMatcher.reset()
				p.clenTmp, p.clenStarted = 0, false
				p.state = sHeaderValueDiscardWS
			case c == ' ' && !p.Strict:
				if err := p.closeField(cb, data, i, &fieldMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.matchedHdr = p.nameMatcher.result()
				p.state = sHeaderFieldSpace
			default:
				if !isHeaderTokenChar(c) {
					p.Errno = ErrInvalidHeaderToken
					return i
				}
				p.nameMatcher.step(c)
			}

		case sHeaderFieldSpace:
			switch c {
			case ' ', '\t':
			case ':':
				p.valueMatcher.reset()
				p.clenTmp, p.clenStarted = 0, false
				p.state = sHeaderValueDiscardWS
			default:
				p.Errno = ErrInvalidHeaderToken
				return i
			}

		case sHeaderValueDiscardWS:
			switch c {
			case ' ', '\t':
			case '\r':
				p.state = sHeaderValueDiscardWSCR
			case '\n':
				if p.Strict {
					p.Errno = ErrStrict
					return i
				}
				if err := p.endHeaderValue(cb, data, i, &valueMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = sHeaderFieldStart
			default:
				p.state = sHeaderValueStart
				goto reprocess
			}

		case sHeaderValueDiscardWSCR:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			if err := p.endHeaderValue(cb, data, i, &valueMark); err != ErrNone {
				p.Errno = err
				return i
			}
			p.state = sHeaderValueLWS

		case sHeaderValueStart:
			valueMark = i
			if p.matchedHdr == hdrUpgrade {
				p.flags.Set(FUpgrade)
			}
			p.state = sHeaderValue
			goto reprocess

		case sHeaderValue:
			if c == '\r' {
				if err := p.endHeaderValue(cb, data, i, &valueMark); err != ErrNone {
					p.Errno = err
					return i
				}
				p.state = sHeaderAlmostDone
				break
			}
			if c == '\n' {
				if err := p.endHeaderValue(cb, data, i, &valueMark); err != ErrNone {
					p.Errno = err
					return i
				}
				if p.Strict {
					p.Errno = ErrStrict
					return i
				}
				p.state = sHeaderValueLWS
				break
			}
			switch p.matchedHdr {
			case hdrContentLength:
				if !isDigit(c) {
					p.Errno = ErrInvalidContentLength
					return i
				}
				if (maxUint64-10)/10 < p.clenTmp {
					p.Errno = ErrInvalidContentLength
					return i
				}
				p.clenTmp = p.clenTmp*10 + uint64(c-'0')
				p.clenStarted = true
			case hdrConnection, hdrTransferEncoding:
				p.valueMatcher.step(c)
			}

		case sHeaderAlmostDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			p.state = sHeaderValueLWS

		case sHeaderValueLWS:
			if c == ' ' || c == '\t' {
				p.state = sHeaderValueDiscardWS
				goto reprocess
			}
			p.state = sHeaderFieldStart
			goto reprocess

		case sHeadersAlmostDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			i++
			ns, stop, retIdx, err := p.headersComplete(cb, data, i)
			if err != ErrNone {
				p.Errno = err
				return retIdx
			}
			if stop {
				return retIdx
			}
			p.state = ns
			continue

		case sChunkSizeStart:
			d, ok := hexDigit(c)
			if !ok {
				p.Errno = ErrInvalidChunkSize
				return i
			}
			p.chunkRemaining = uint64(d)
			p.state = sChunkSize

		case sChunkSize:
			if d, ok := hexDigit(c); ok {
				if (maxUint64-16)/16 < p.chunkRemaining {
					p.Errno = ErrInvalidChunkSize
					return i
				}
				p.chunkRemaining = p.chunkRemaining*16 + uint64(d)
				break
			}
			switch c {
			case '\r':
				p.state = sChunkSizeAlmostDone
			case ';', ' ', '\t':
				p.state = sChunkParameters
			default:
				p.Errno = ErrInvalidChunkSize
				return i
			}

		case sChunkParameters:
			if c == '\r' {
				p.state = sChunkSizeAlmostDone
			}

		case sChunkSizeAlmostDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			p.nread = 0
			if p.chunkRemaining == 0 {
				p.flags.Set(FTrailing)
				p.state = sHeaderFieldStart
			} else {
				p.state = sChunkData
			}

		case sChunkDataAlmostDone:
			if c != '\r' {
				p.Errno = ErrLFExpected
				return i
			}
			p.state = sChunkDataDone

		case sChunkDataDone:
			if c != '\n' {
				p.Errno = ErrLFExpected
				return i
			}
			p.state = sChunkSizeStart
		}

		i++
	}

	if urlMark >= 0 {
		if cb.OnURL(p, data[urlMark:len(data)]) != ErrNone {
			p.Errno = ErrCBURL
			return len(data)
		}
	}
	if statusMark >= 0 {
		if cb.OnStatus(p, data[statusMark:len(data)]) != ErrNone {
			p.Errno = ErrCBStatus
			return len(data)
		}
	}
	if fieldMark >= 0 {
		if cb.OnHeaderField(p, data[fieldMark:len(data)]) != ErrNone {
			p.Errno = ErrCBHeaderField
			return len(data)
		}
	}
	if valueMark >= 0 {
		if cb.OnHeaderValue(p, data[valueMark:len(data)]) != ErrNone {
			p.Errno = ErrCBHeaderValue
			return len(data)
		}
	}
	if bodyMark >= 0 {
		if cb.OnBody(p, data[bodyMark:len(data)]) != ErrNone {
			p.Errno = ErrCBBody
			return len(data)
		}
	}
	return len(data)
}

// executeEOF handles a zero-length Execute call (§4.1 item 2).
func (p *Parser) executeEOF(cb Callbacks) int {
	switch p.state {
	case sBodyIdentityEOF:
		if cb.OnMessageComplete(p) != ErrNone {
			p.Errno = ErrCBMessageComplete
			return 0
		}
		p.bodyComplete = true
		p.state = p.newMessageState()
		return 0
	case sDead, sStartReqOrRes, sStartReq, sStartRes:
		return 0
	default:
		p.Errno = ErrInvalidEOFState
		return 0
	}
}

func (p *Parser) emitMessageBegin(cb Callbacks) Errno {
	p.initMessage()
	if cb.OnMessageBegin(p) != ErrNone {
		return ErrCBMessageBegin
	}
	return ErrNone
}

// headersComplete runs the decision made once the blank line ending the
// header block has been fully consumed (the CRLF or bare LF is already
// reflected in i): it recomputes Upgrade, invokes OnHeadersComplete, and
// picks the state that follows depending on Upgrade/CONNECT, SkipBody,
// chunked transfer-encoding, or Content-Length (§4.1's "HeadersDone"
// decision). stop is true for the Upgrade/CONNECT short-circuit, in which
// case retIdx is the index the caller should return from Execute.
func (p *Parser) headersComplete(cb Callbacks, data []byte, i int) (ns state, stop bool, retIdx int, errno Errno) {
	p.nread = 0

	// A blank line reached while Trailing is set ends a chunked message's
	// trailer section, not its original headers: go straight to
	// new_message without re-running on_headers_complete or the
	// Upgrade/body-framing branch below.
	if p.flags.Test(FTrailing) {
		next, err := p.finishMessage(cb)
		return next, false, 0, err
	}

	p.Upgrade = p.flags.Test(FUpgrade)

	action, cerr := cb.OnHeadersComplete(p)
	if cerr != ErrNone {
		return 0, true, i, ErrCBHeadersComplete
	}
	if action == CBSkipBody {
		p.flags.Set(FSkipBody)
	}

	if p.Upgrade || p.Method == MConnect {
		if err := p.emitMessageComplete(cb); err != ErrNone {
			return 0, true, i, err
		}
		return 0, true, i, ErrNone
	}
	if p.flags.Test(FSkipBody) {
		next, err := p.finishMessage(cb)
		return next, false, 0, err
	}
	if p.flags.Test(FChunked) {
		return sChunkSizeStart, false, 0, ErrNone
	}
	if p.contentLength == 0 {
		next, err := p.finishMessage(cb)
		return next, false, 0, err
	}
	if p.contentLength != noContentLength {
		return sBodyIdentity, false, 0, ErrNone
	}
	if p.Type == Request || !p.needsEOF() {
		next, err := p.finishMessage(cb)
		return next, false, 0, err
	}
	return sBodyIdentityEOF, false, 0, ErrNone
}

func (p *Parser) emitMessageComplete(cb Callbacks) Errno {
	p.bodyComplete = true
	if cb.OnMessageComplete(p) != ErrNone {
		return ErrCBMessageComplete
	}
	return ErrNone
}

func (p *Parser) finishMessage(cb Callbacks) (state, Errno) {
	if err := p.emitMessageComplete(cb); err != ErrNone {
		return 0, err
	}
	return p.newMessageState(), ErrNone
}

// newMessageState returns the state the parser should resume in: sDead if
// the connection cannot be reused, otherwise the appropriate start state
// for p.ctorType. Per-message fields are left as they are until the next
// message begins, so they can still be inspected after completion.
func (p *Parser) newMessageState() state {
	if p.Strict && !p.ShouldKeepAlive() {
		return sDead
	}
	switch p.ctorType {
	case Request:
		return sStartReq
	case Response:
		return sStartRes
	}
	return sStartReqOrRes
}

func inHeaderRegion(s state) bool {
	switch s {
	case sStartReqOrRes, sStartReqOrResH, sStartReq, sStartRes,
		sReqMethod, sReqURL, sReqHTTPStart, sReqHTTPMajor, sReqHTTPMinor, sReqLineAlmostDone,
		sResHTTPStart, sResHTTPMajor, sResHTTPMinor, sResSpaceBeforeStatus,
		sResStatus, sResStatusSpaceOrCR, sResStatusText, sResLineAlmostDone,
		sHeaderFieldStart, sHeaderField, sHeaderFieldSpace,
		sHeaderValueDiscardWS, sHeaderValueDiscardWSCR, sHeaderValueStart, sHeaderValue,
		sHeaderAlmostDone, sHeaderValueLWS, sHeadersAlmostDone,
		sChunkSizeStart, sChunkSize, sChunkParameters, sChunkSizeAlmostDone:
		return true
	}
	return false
}

func isHeaderTokenChar(c byte) bool {
	return c != ':' && c > 0x20 && c < 0x7f
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// markSpan resolves an open mark (a start offset, or -1 if not open) into
// a closed Span covering [*mark, end), the way the teacher's PField is
// filled in once a region's extent is known.
func markSpan(mark *int, end int) (Span, bool) {
	if *mark < 0 {
		return Span{}, false
	}
	var sp Span
	sp.Set(*mark, end)
	return sp, true
}

func (p *Parser) closeURL(cb Callbacks, data []byte, end int, mark *int) Errno {
	sp, ok := markSpan(mark, end)
	if !ok {
		return ErrNone
	}
	if cb.OnURL(p, sp.Get(data)) != ErrNone {
		return ErrCBURL
	}
	*mark = -1
	return ErrNone
}

func (p *Parser) closeStatus(cb Callbacks, data []byte, end int, mark *int) Errno {
	sp, ok := markSpan(mark, end)
	if !ok {
		return ErrNone
	}
	if cb.OnStatus(p, sp.Get(data)) != ErrNone {
		return ErrCBStatus
	}
	*mark = -1
	return ErrNone
}

func (p *Parser) closeField(cb Callbacks, data []byte, end int, mark *int) Errno {
	sp, ok := markSpan(mark, end)
	if !ok {
		return ErrNone
	}
	if cb.OnHeaderField(p, sp.Get(data)) != ErrNone {
		return ErrCBHeaderField
	}
	*mark = -1
	return ErrNone
}

func (p *Parser) closeBody(cb Callbacks, data []byte, end int, mark *int) Errno {
	sp, ok := markSpan(mark, end)
	if !ok {
		return ErrNone
	}
	if cb.OnBody(p, sp.Get(data)) != ErrNone {
		return ErrCBBody
	}
	*mark = -1
	return ErrNone
}

// endHeaderValue closes the header-value span (if one is open) and, for
// the handful of headers the parser special-cases (§4.4), commits the
// side effects their now-complete value implies: Content-Length's numeric
// accumulator, and Connection/Transfer-Encoding's recognized keywords.
func (p *Parser) endHeaderValue(cb Callbacks, data []byte, end int, mark *int) Errno {
	if sp, ok := markSpan(mark, end); ok {
		if cb.OnHeaderValue(p, sp.Get(data)) != ErrNone {
			return ErrCBHeaderValue
		}
		*mark = -1
	}
	switch p.matchedHdr {
	case hdrContentLength:
		if !p.clenStarted {
			return ErrInvalidContentLength
		}
		p.contentLength = p.clenTmp
	case hdrConnection:
		switch p.valueMatcher.matched() {
		case valKeepAlive:
			p.flags.Set(FConnectionKeepAlive)
		case valClose:
			p.flags.Set(FConnectionClose)
		}
	case hdrTransferEncoding:
		if p.valueMatcher.matched() == valChunked {
			p.flags.Set(FChunked)
		}
	}
	return ErrNone
}
