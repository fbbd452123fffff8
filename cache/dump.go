package cache

import (
	"fmt"
	"io"

	"github.com/npillmayer/stylecache/engine"
	tp "github.com/xlab/treeprint"
)

// Dump prints the cache as a tree, for debugging.
func (c *Cache) Dump(w io.Writer) {
	fmt.Fprintf(w, "cache (%d entries)\n", c.Len())
	printer := tp.New()
	c.Each(func(e *Entry) {
		label := e.ID.String()
		if e.Payload != nil {
			label += fmt.Sprintf(" [%v]", e.Payload)
		}
		branch := printer.AddBranch(label)
		for p := engine.PseudoNone; p < engine.PseudoCount; p++ {
			if e.Slots[p].State != Absent {
				branch.AddNode(fmt.Sprintf("%s: %s", p, e.Slots[p].State))
			}
		}
	})
	fmt.Fprint(w, printer.String())
}
