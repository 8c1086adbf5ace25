// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// CBAction is the result a Callbacks hook returns to the parser.
type CBAction uint8

const (
	// CBContinue asks the parser to keep going normally.
	CBContinue CBAction = iota
	// CBSkipBody is only honored when returned from OnHeadersComplete;
	// it makes the parser skip the entity body for this message. A
	// SkipBody returned from any other hook is silently ignored, per
	// spec.
	CBSkipBody
)

// Callbacks is the set of notification hooks an embedder supplies to
// Parser.Execute. Every hook receives spans of the buffer passed to the
// current Execute call; a hook must not retain the slice past its own
// call, since the next Execute call may reuse or overwrite the backing
// array (the parser itself never buffers the message).
//
// A hook aborts parsing by returning a non-zero Errno, which the parser
// reports back as the corresponding CB* errno (§7).
type Callbacks interface {
	OnMessageBegin(p *Parser) Errno
	OnURL(p *Parser, data []byte) Errno
	OnStatus(p *Parser, data []byte) Errno
	OnHeaderField(p *Parser, data []byte) Errno
	OnHeaderValue(p *Parser, data []byte) Errno
	OnHeadersComplete(p *Parser) (CBAction, Errno)
	OnBody(p *Parser, data []byte) Errno
	OnMessageComplete(p *Parser) Errno
}

// NoopCallbacks implements Callbacks with no-op hooks that always
// succeed. Embedders compose it into their own callback type and
// override only the hooks they care about, the same way generated gRPC
// server stubs embed an Unimplemented base type.
type NoopCallbacks struct{}

func (NoopCallbacks) OnMessageBegin(p *Parser) Errno { return ErrNone }
func (NoopCallbacks) OnURL(p *Parser, data []byte) Errno { return ErrNone }
func (NoopCallbacks) OnStatus(p *Parser, data []byte) Errno { return ErrNone }
func (NoopCallbacks) OnHeaderField(p *Parser, data []byte) Errno { return ErrNone }
func (NoopCallbacks) OnHeaderValue(p *Parser, data []byte) Errno { return ErrNone }
func (NoopCallbacks) OnHeadersComplete(p *Parser) (CBAction, Errno) {
	return CBContinue, ErrNone
}
func (NoopCallbacks) OnBody(p *Parser, data []byte) Errno { return ErrNone }
func (NoopCallbacks) OnMessageComplete(p *Parser) Errno   { return ErrNone }

var _ Callbacks = NoopCallbacks{}
