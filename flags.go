// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

// Flags packs the per-message parser flags into a bit set, the same way
// the teacher library packs recognized-header bits into HdrFlags.
type Flags uint16

const (
	FConnectionKeepAlive Flags = 1 << iota
	FConnectionClose
	FChunked
	FTrailing
	FUpgrade
	FSkipBody
)

// Set sets f in the flag set.
func (fl *Flags) Set(f Flags) {
	*fl |= f
}

// Clear clears f in the flag set.
func (fl *Flags) Clear(f Flags) {
	*fl &^= f
}

// Test returns true if f is set.
func (fl Flags) Test(f Flags) bool {
	return fl&f != 0
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = 0
}
