package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPropertyMap(t *testing.T) {
	pm := PropertyMap{}
	pm.Set("color", " Red ")
	pm.Add("color", "blue")
	pm.Set("font-family", `"Times New Roman"`)
	if p, _ := pm.Get("color"); p != "red" {
		t.Errorf("expected color to be 'red', is %q", p)
	}
	if p, _ := pm.Get("font-family"); p != `"Times New Roman"` {
		t.Errorf("expected quoted value to keep its case, is %q", p)
	}
	c := pm.Clone()
	c.Set("color", "green")
	if p, _ := pm.Get("color"); p != "red" {
		t.Errorf("expected clone to be independent, color is %q", p)
	}
	assert.Equal(t, "color: red\nfont-family: \"Times New Roman\"\n", pm.String())
	assert.Equal(t, []string{"color", "font-family"}, pm.Keys())
	var null PropertyMap
	assert.False(t, null.IsSet("color"))
}

func TestCascading(t *testing.T) {
	for _, k := range []string{"color", "font-size", "font-family", "list-style-type", "text-align"} {
		if !IsCascading(k) {
			t.Errorf("expected %s to be inherited", k)
		}
	}
	for _, k := range []string{"margin-top", "display", "width", "background-color"} {
		if IsCascading(k) {
			t.Errorf("expected %s not to be inherited", k)
		}
	}
}

func TestSplitCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("padding", "3px")
	assert.NoError(t, err)
	assert.Equal(t, KeyValue{"padding-left", "3px"}, kv[3])
	kv, err = SplitCompoundProperty("margin", "1px 2px 3px")
	assert.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"margin-top", "1px"}, {"margin-right", "2px"},
		{"margin-bottom", "3px"}, {"margin-left", "2px"},
	}, kv)
	kv, err = SplitCompoundProperty("border-width", "1px 2px")
	assert.NoError(t, err)
	assert.Equal(t, KeyValue{"border-bottom-width", "1px"}, kv[2])
	kv, err = SplitCompoundProperty("border-radius", "4px")
	assert.NoError(t, err)
	assert.Equal(t, "border-top-left-radius", kv[0].Key)
	_, err = SplitCompoundProperty("border-style", "a b c d e")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("font", "12pt serif")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, Property("medium"), InitialValue("font-size"))
	assert.Equal(t, NullStyle, InitialValue("no-such-property"))
	pm := InitialProperties()
	pm.Set("font-size", "12pt")
	assert.Equal(t, Property("medium"), InitialValue("font-size"), "initial values must not be aliased")
	assert.Equal(t, Property("block"), DisplayForElement("div"))
	assert.Equal(t, Property("none"), DisplayForElement("head"))
	assert.Equal(t, Property("inline"), DisplayForElement("custom-element"))
}
