// stylecache computes the CSS styles of elements of a document.
//
// The document is either an HTML file or a YAML fixture as read by package
// memdoc. Stylesheets are taken from the command line and, for HTML
// documents, from <style> elements and local <link rel="stylesheet">
// targets.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylecache"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/provider"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

var traceKeys = []string{
	"stylecache", "stylecache.cache", "stylecache.cascade", "stylecache.css",
	"stylecache.engine", "stylecache.memdoc", "stylecache.provider", "stylecache.style",
}

func setupTracing(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var level tracing.TraceLevel
	switch strings.ToLower(cmd.String("trace")) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error", "":
		level = tracing.LevelError
	default:
		return ctx, fmt.Errorf("unknown trace level %q", cmd.String("trace"))
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return ctx, nil
}

func main() {
	app := &cli.Command{
		Name:            "stylecache",
		Usage:           "computes CSS styles of document elements",
		HideHelpCommand: true,
		Before:          setupTracing,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"}, Value: "error", Usage: "trace `LEVEL` (debug, info, error)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "style",
				Usage:     "Prints the computed style of elements",
				ArgsUsage: "NODE...",
				Action:    runStyle,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "doc", Aliases: []string{"d"}, Required: true, Usage: "load document from `FILE` (.html, .htm or .yaml)"},
					&cli.StringSliceFlag{Name: "css", Aliases: []string{"c"}, Usage: "add stylesheet from `FILE`, may be repeated"},
					&cli.StringFlag{Name: "base", Usage: "base `URL` of stylesheets"},
					&cli.StringFlag{Name: "level", Value: "3", Usage: "CSS `LEVEL` of stylesheets (1, 2, 2.1, 3)"},
					&cli.StringFlag{Name: "media", Value: "screen", Usage: "select styles for `MEDIA`"},
					&cli.StringFlag{Name: "pseudo", Value: "none", Usage: "`PSEUDO`-element (none, first-line, first-letter, before, after)"},
					&cli.StringFlag{Name: "inline", Usage: "inline style `DECLARATIONS` for the elements, overriding style attributes"},
					&cli.BoolFlag{Name: "dump", Usage: "dump the style cache after resolving"},
				},
			},
			{
				Name:      "imports",
				Usage:     "Lists @import targets of stylesheets",
				ArgsUsage: "FILE...",
				Action:    runImports,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base", Usage: "base `URL` to resolve targets against"},
				},
			},
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stylecache: %v\n", err)
		os.Exit(1)
	}
}

func runStyle(_ context.Context, cmd *cli.Command) (err error) {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no nodes given")
	}
	media, err := engine.ParseMedia(cmd.String("media"))
	if err != nil {
		return err
	}
	doc, sheets, err := loadDocument(cmd.String("doc"))
	if err != nil {
		return err
	}
	for _, file := range cmd.StringSlice("css") {
		loaded, err := loadStylesheets(file)
		if err != nil {
			return err
		}
		sheets = append(sheets, loaded...)
	}
	session := stylecache.New(stylecache.WithMedia(media))
	defer func() {
		err = multierr.Append(err, session.Close())
	}()
	session.SetProvider(provider.FromClient(doc))
	for _, sheet := range sheets {
		if err := session.AddStylesheet(sheet.text, cmd.String("level"), cmd.String("base")); err != nil {
			return fmt.Errorf("stylesheet %s: %w", sheet.origin, err)
		}
	}
	for _, arg := range cmd.Args().Slice() {
		handle := arg
		if h, ok := doc.ByID(arg); ok {
			handle = h
		} else if doc.Node(arg) == nil {
			return fmt.Errorf("no element %q", arg)
		}
		var style string
		if inline := cmd.String("inline"); inline != "" {
			style, err = session.GetStyle(handle, cmd.String("pseudo"), inline)
		} else {
			style, err = session.NodeStyle(handle, cmd.String("pseudo"))
		}
		if err != nil {
			return fmt.Errorf("element %q: %w", arg, err)
		}
		fmt.Printf("%s <%s>\n%s\n", handle, doc.TagName(handle), indent(style))
	}
	if cmd.Bool("dump") {
		session.DumpCache(os.Stdout)
	}
	return nil
}

func runImports(_ context.Context, cmd *cli.Command) error {
	for _, file := range cmd.Args().Slice() {
		imports, err := importsOf(file, cmd.String("base"))
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", file)
		for _, imp := range imports {
			fmt.Printf("    %s\n", imp)
		}
	}
	return nil
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return "    " + strings.Join(lines, "\n    ")
}
