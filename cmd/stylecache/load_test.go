package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStylesheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	dir := t.TempDir()
	write(t, dir, "css/base.css", `@import "../main.css"; p { color: red }`)
	top := write(t, dir, "main.css", `@import "css/base.css"; @import url(http://x.org/remote.css); p { color: blue }`)
	sheets, err := loadStylesheets(top)
	require.NoError(t, err)
	require.Len(t, sheets, 2, "cyclic import is loaded once, remote import skipped")
	assert.Equal(t, filepath.Join(dir, "css/base.css"), sheets[0].origin)
	assert.Equal(t, top, sheets[1].origin)
	imports, err := importsOf(top, "http://y.org/")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://y.org/css/base.css", "http://x.org/remote.css"}, imports)
}

func TestLoadHTMLDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	dir := t.TempDir()
	write(t, dir, "site.css", `h1 { color: green }`)
	path := write(t, dir, "index.html", `<html><head>
<link rel="stylesheet" href="site.css"><link rel="stylesheet" href="https://cdn.org/x.css">
<style>p { color: red }</style></head>
<body><h1 id="top">Title</h1><p>Text</p></body></html>`)
	doc, sheets, err := loadDocument(path)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, `h1 { color: green }`, sheets[0].text)
	assert.Equal(t, `p { color: red }`, sheets[1].text)
	h, ok := doc.ByID("top")
	require.True(t, ok)
	assert.Equal(t, "h1", doc.TagName(h))
	_, _, err = loadDocument(write(t, dir, "doc.txt", "x"))
	assert.Error(t, err)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a: 1\n    b: 2", indent("a: 1\nb: 2\n"))
}
