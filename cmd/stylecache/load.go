package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/stylecache/douceurengine"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/memdoc"
)

// source is the text of a stylesheet and where it came from.
type source struct {
	origin string
	text   string
}

// loadDocument reads a document. For HTML documents the document's own
// stylesheets are returned as well.
func loadDocument(path string) (*memdoc.Document, []source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err := memdoc.FromYAML(f)
		return doc, nil, err
	case ".html", ".htm", ".xhtml":
	default:
		return nil, nil, fmt.Errorf("cannot tell document type of %s", path)
	}
	doc, src, err := memdoc.FromHTML(f)
	if err != nil {
		return nil, nil, err
	}
	var sheets []source
	for _, link := range src.Links {
		if isRemote(link) {
			continue
		}
		loaded, err := loadStylesheets(filepath.Join(filepath.Dir(path), filepath.FromSlash(link)))
		if err != nil {
			return nil, nil, err
		}
		sheets = append(sheets, loaded...)
	}
	for i, text := range src.Styles {
		sheets = append(sheets, source{origin: fmt.Sprintf("%s <style> #%d", path, i+1), text: text})
	}
	return doc, sheets, nil
}

// loadStylesheets reads a stylesheet file, preceded by the local files it
// imports.
func loadStylesheets(path string) ([]source, error) {
	return loadImported(path, make(map[string]bool))
}

func loadImported(path string, seen map[string]bool) ([]source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	imports, err := parseImports(string(text), "")
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	var sheets []source
	for _, imp := range imports {
		if isRemote(imp) {
			continue
		}
		loaded, err := loadImported(filepath.Join(filepath.Dir(path), filepath.FromSlash(imp)), seen)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, loaded...)
	}
	return append(sheets, source{origin: path, text: string(text)}), nil
}

func importsOf(path, base string) ([]string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseImports(string(text), base)
}

func parseImports(text, base string) ([]string, error) {
	e := douceurengine.New()
	sheet, err := e.CreateStylesheet(text, engine.DefaultLevel, base, false)
	if err != nil {
		return nil, err
	}
	defer e.DestroyStylesheet(sheet)
	return sheet.(*douceurengine.Stylesheet).Imports(), nil
}

// isRemote is true for targets which do not name a local file.
func isRemote(target string) bool {
	return target == "" || strings.Contains(target, "://") || strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "data:")
}
