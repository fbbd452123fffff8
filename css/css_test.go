package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestParseLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache.css")
	defer teardown()
	//
	for _, tc := range []struct {
		in   string
		want Length
	}{
		{"12px", Len(12, PX)},
		{"1.5em", Len(1.5, EM)},
		{"50%", Len(50, PCT)},
		{" 0 ", Len(0, UnitNone)},
		{"-2PT", Len(-2, PT)},
	} {
		l, err := ParseLength(tc.in)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", tc.in, err)
			continue
		}
		if l != tc.want {
			t.Errorf("expected %q to parse as %v, is %v", tc.in, tc.want, l)
		}
	}
	for _, bad := range []string{"", "px", "12furlong", "1..2em"} {
		if _, err := ParseLength(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestLengthDimen(t *testing.T) {
	du, ok := Len(10, PT).Dimen()
	if !ok || du != 10*dimen.PT {
		t.Errorf("expected 10pt to convert to %d DU, is %d", 10*dimen.PT, du)
	}
	du, ok = Len(1, IN).Dimen()
	if !ok || du != 72*dimen.PT {
		t.Errorf("expected 1in to be 72pt, is %d", du)
	}
	if _, ok = Len(2, EM).Dimen(); ok {
		t.Error("expected em length to be non-convertable")
	}
}

func TestFontSizeMatch(t *testing.T) {
	fs, err := ParseFontSize("x-large")
	if err != nil {
		t.Fatal(err)
	}
	var k FontKeyword
	switch m := fs.Match(); m {
	case m.Keyword(&k):
		t.Logf("keyword = %s", k)
	default:
		t.Errorf("expected x-large to be a keyword, isn't: %#v", fs)
	}
	if k != XLarge {
		t.Errorf("expected keyword to be x-large, is %s", k)
	}
	fs, _ = ParseFontSize("2em")
	var l Length
	switch m := fs.Match(); m {
	case m.Larger(), m.Smaller():
		t.Errorf("expected 2em not to be a relative step")
	case m.Length(&l):
		t.Logf("length = %s", l)
	}
	if l != Len(2, EM) {
		t.Errorf("expected length 2em, is %s", l)
	}
	if _, err := ParseFontSize("huge"); err == nil {
		t.Error("expected 'huge' to be rejected as font size")
	}
}

func TestResolveFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache.css")
	defer teardown()
	//
	base := Len(16, PT)
	parent := Len(20, PT)
	for _, tc := range []struct {
		size   FontSize
		parent *Length
		want   float64
	}{
		{SizeKeyword(Large), nil, 18},
		{SizeKeyword(XXSmall), &parent, 9},
		{SizeKeyword(Medium), &parent, 16},
		{Larger(), &parent, 24},
		{Smaller(), &parent, 20 / 1.2},
		{JustLength(Len(1.5, EM)), &parent, 30},
		{JustLength(Len(2, EX)), &parent, 24},
		{JustLength(Len(50, PCT)), &parent, 10},
		{JustLength(Len(50, PCT)), nil, 8},
		{Larger(), nil, 16 * 1.2},
	} {
		l, err := ResolveFontSize(base, tc.parent, tc.size)
		if !assert.NoError(t, err) {
			continue
		}
		assert.InDelta(t, tc.want, l.Value, 1e-9, "font size %s", tc.size)
		assert.Equal(t, PT, l.Unit, "font size %s", tc.size)
	}
	l, err := ResolveFontSize(base, &parent, JustLength(Len(12, PX)))
	assert.NoError(t, err)
	assert.Equal(t, Len(12, PX), l, "absolute lengths pass through")
}

func TestResolveFontSizeRelativeParent(t *testing.T) {
	rel := Len(2, EM)
	_, err := ResolveFontSize(Len(16, PT), &rel, Larger())
	assert.ErrorIs(t, err, ErrRelativeParent)
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "img/a.png", ResolveURL("", "img/a.png"))
	assert.Equal(t, "http://x.org/css/img/a.png", ResolveURL("http://x.org/css", "img/a.png"))
	assert.Equal(t, "http://x.org/css/img/a.png", ResolveURL("http://x.org/css/", "img/a.png"))
	assert.Equal(t, "base//rel", ResolveURL("base//", "rel"), "only one slash is stripped")
	assert.Equal(t, "base/../x", ResolveURL("base", "../x"), "no normalization")
}
