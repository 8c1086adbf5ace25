// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

import "testing"

var methodTokens = []struct {
	tok string
	m   HTTPMethod
}{
	{"GET", MGet},
	{"HEAD", MHead},
	{"POST", MPost},
	{"PUT", MPut},
	{"DELETE", MDelete},
	{"CONNECT", MConnect},
	{"CHECKOUT", MCheckout},
	{"COPY", MCopy},
	{"OPTIONS", MOptions},
	{"LOCK", MLock},
	{"MKCOL", MMkcol},
	{"MOVE", MMove},
	{"MERGE", MMerge},
	{"M-SEARCH", MMsearch},
	{"MKACTIVITY", MMkactivity},
	{"MKCALENDAR", MMkcalendar},
	{"NOTIFY", MNotify},
	{"PROPFIND", MPropfind},
	{"PROPPATCH", MProppatch},
	{"PURGE", MPurge},
	{"PATCH", MPatch},
	{"REPORT", MReport},
	{"SUBSCRIBE", MSubscribe},
	{"SEARCH", MSearch},
	{"TRACE", MTrace},
	{"UNLOCK", MUnlock},
	{"UNSUBSCRIBE", MUnsubscribe},
}

func TestMethodForkTree(t *testing.T) {
	for _, tc := range methodTokens {
		cand, ok := methodFirstByte(tc.tok[0])
		if !ok {
			t.Fatalf("%s: methodFirstByte(%q) rejected", tc.tok, tc.tok[0])
		}
		for idx := 1; idx < len(tc.tok); idx++ {
			cand, ok = methodNext(cand, idx, tc.tok[idx])
			if !ok {
				t.Fatalf("%s: methodNext at index %d on %q rejected", tc.tok, idx, tc.tok[idx])
			}
		}
		if cand != tc.m {
			t.Errorf("%s: resolved to %v, want %v", tc.tok, cand, tc.m)
		}
		if !methodDone(cand, len(tc.tok)) {
			t.Errorf("%s: methodDone false at full length", tc.tok)
		}
		if string(cand.Name()) != tc.tok {
			t.Errorf("Name() = %q, want %q", cand.Name(), tc.tok)
		}
	}
}

func TestMethodInvalidDeviation(t *testing.T) {
	cand, ok := methodFirstByte('G')
	if !ok || cand != MGet {
		t.Fatalf("methodFirstByte('G') = %v/%v", cand, ok)
	}
	if _, ok := methodNext(cand, 1, 'Z'); ok {
		t.Error("methodNext(MGet, 1, 'Z') should be rejected")
	}
}
