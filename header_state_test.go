// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

import "testing"

func feedName(t *testing.T, name string) *headerNameMatcher {
	t.Helper()
	m := &headerNameMatcher{}
	m.reset()
	for i := 0; i < len(name); i++ {
		m.step(name[i])
	}
	return m
}

func TestHeaderNameRecognizesAll(t *testing.T) {
	cases := []struct {
		name string
		id   hdrID
	}{
		{"connection", hdrConnection},
		{"Connection", hdrConnection},
		{"CONNECTION", hdrConnection},
		{"proxy-connection", hdrConnection},
		{"content-length", hdrContentLength},
		{"Content-Length", hdrContentLength},
		{"transfer-encoding", hdrTransferEncoding},
		{"upgrade", hdrUpgrade},
		{"Upgrade", hdrUpgrade},
	}
	for _, c := range cases {
		m := feedName(t, c.name)
		if got := m.result(); got != c.id {
			t.Errorf("name %q: result() = %v, want %v", c.name, got, c.id)
		}
	}
}

func TestHeaderNameDisambiguatesConnectionPrefix(t *testing.T) {
	m := &headerNameMatcher{}
	m.reset()
	for i := 0; i < len("con"); i++ {
		m.step("con"[i])
	}
	if m.cands&candConnection == 0 || m.cands&candContentLength == 0 {
		t.Fatalf("after 'con', both Connection and Content-Length should still be candidates, got %v", m.cands)
	}
	m.step('n')
	if m.cands&candContentLength != 0 {
		t.Errorf("after 'conn', Content-Length should have been eliminated, got %v", m.cands)
	}
	if m.cands&candConnection == 0 {
		t.Errorf("after 'conn', Connection should still be a candidate, got %v", m.cands)
	}
}

func TestHeaderNameUnrecognizedIsOther(t *testing.T) {
	m := feedName(t, "x-custom-header")
	if got := m.result(); got != hdrOther {
		t.Errorf("result() for unrecognized header = %v, want hdrOther", got)
	}
}

func TestHeaderNamePrefixAloneIsNotMatched(t *testing.T) {
	m := feedName(t, "connec")
	if got := m.result(); got != hdrOther {
		t.Errorf("result() for partial prefix %q = %v, want hdrOther (no full match yet)", "connec", got)
	}
}

func feedValue(t *testing.T, val string) *headerValueMatcher {
	t.Helper()
	m := &headerValueMatcher{}
	m.reset()
	for i := 0; i < len(val); i++ {
		m.step(val[i])
	}
	return m
}

func TestHeaderValueRecognizesKeywords(t *testing.T) {
	cases := []struct {
		val string
		cnd valueCand
	}{
		{"chunked", valChunked},
		{"Chunked", valChunked},
		{"CHUNKED", valChunked},
		{"keep-alive", valKeepAlive},
		{"Keep-Alive", valKeepAlive},
		{"close", valClose},
		{"Close", valClose},
	}
	for _, c := range cases {
		m := feedValue(t, c.val)
		if got := m.matched(); got != c.cnd {
			t.Errorf("value %q: matched() = %v, want %v", c.val, got, c.cnd)
		}
	}
}

func TestHeaderValueTrailingByteInvalidatesMatch(t *testing.T) {
	m := feedValue(t, "keep-alive-ish")
	if got := m.matched(); got != 0 {
		t.Errorf("matched() for %q = %v, want 0 (trailing bytes after a full match must not count)", "keep-alive-ish", got)
	}
}

func TestHeaderValueUnrecognizedMatchesNothing(t *testing.T) {
	m := feedValue(t, "gzip")
	if got := m.matched(); got != 0 {
		t.Errorf("matched() for %q = %v, want 0", "gzip", got)
	}
}
