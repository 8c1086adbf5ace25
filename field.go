// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// Span marks a contiguous byte range ("mark" in the spec vocabulary)
// inside the buffer passed to a single Execute call. Unlike the teacher's
// PField (which lives as long as the parsed message and indexes into a
// buffer the caller keeps around), a Span is only ever valid for the
// duration of the Execute call that produced it: the parser never keeps
// a buffer alive between calls, so a Span is re-anchored at offset 0 of
// the new buffer whenever a region is still open across an Execute
// boundary.
type Span struct {
	Offs int
	Len  int
}

// Set points the span at [start:end).
func (s *Span) Set(start, end int) {
	if end < start {
		panic("httpstream: invalid span range")
	}
	s.Offs = start
	s.Len = end - start
}

// Get returns the byte slice the span refers to inside buf.
func (s Span) Get(buf []byte) []byte {
	return buf[s.Offs : s.Offs+s.Len]
}
