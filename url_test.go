// Copyright 2024 httpstream Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package httpstream

import "testing"

func driveURL(t *testing.T, url string, strict bool) urlState {
	t.Helper()
	s := uSpacesBeforeURL
	for i := 0; i < len(url); i++ {
		s = urlNext(s, url[i], strict)
		if s == uURLDead {
			t.Fatalf("urlNext dead at byte %d (%q) of %q", i, url[i], url)
		}
	}
	return s
}

func TestURLAcceptsCommonForms(t *testing.T) {
	cases := []string{
		"/",
		"*",
		"/path/to/thing",
		"/path?query=1&x=2",
		"/path#frag",
		"http://example.com/path",
		"http://user:pw@example.com:8080/path?q#f",
	}
	for _, c := range cases {
		driveURL(t, c, false)
	}
}

func TestURLRejectsDoubleAt(t *testing.T) {
	s := uServerStart
	s = urlNext(s, 'a', false)
	s = urlNext(s, '@', false)
	if s != uServerWithAt {
		t.Fatalf("after one '@', state = %v, want uServerWithAt", s)
	}
	s = urlNext(s, '@', false)
	if s != uURLDead {
		t.Error("second '@' in authority should be dead")
	}
}

func TestURLStrictRejectsTabAndHighBit(t *testing.T) {
	if urlNext(uPath, '\t', true) != uURLDead {
		t.Error("strict mode should reject TAB in URL path")
	}
	if urlNext(uPath, 0x80, true) != uURLDead {
		t.Error("strict mode should reject high-bit byte in URL path")
	}
	if urlNext(uPath, '\t', false) == uURLDead {
		t.Error("non-strict mode should accept TAB in URL path")
	}
	if urlNext(uPath, 0x80, false) == uURLDead {
		t.Error("non-strict mode should accept high-bit byte in URL path")
	}
}

func TestURLSpaceAlwaysDead(t *testing.T) {
	if urlNext(uPath, ' ', false) != uURLDead {
		t.Error("SP should always end/kill URL matching")
	}
}
