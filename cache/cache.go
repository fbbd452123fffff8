package cache

import (
	"fmt"
	"sort"

	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/nodeid"
	"go.uber.org/multierr"
)

// SlotState tells what a pseudo-element slot of an entry holds.
type SlotState uint8

// Slot states.
const (
	Absent   SlotState = iota // no style
	Raw                       // selected, not yet composed with ancestors
	Resolved                  // composed, final until Clear
)

func (s SlotState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Raw:
		return "raw"
	case Resolved:
		return "resolved"
	}
	return fmt.Sprintf("state(%d)", s)
}

// Slot is a pseudo-element slot of a cache entry.
type Slot struct {
	Style engine.ComputedStyle
	State SlotState
}

// Entry is the cache record for a node.
type Entry struct {
	ID      nodeid.ID
	Payload interface{} // owned by the host, never interpreted
	Slots   [engine.PseudoCount]Slot
	seq     uint64 // insertion sequence number
}

// Slot returns the slot for a pseudo-element.
func (e *Entry) Slot(p engine.Pseudo) Slot {
	return e.Slots[p]
}

// HasStyles is true if any slot holds a style.
func (e *Entry) HasStyles() bool {
	for _, s := range e.Slots {
		if s.State != Absent {
			return true
		}
	}
	return false
}

// DestroyFunc releases a style handle.
type DestroyFunc func(engine.ComputedStyle) error

// ReleaseFunc is called once for every entry with a payload when the entry is
// removed from the cache.
type ReleaseFunc func(id nodeid.ID, payload interface{})

// Cache is the node style cache. Create one with New.
type Cache struct {
	entries map[nodeid.ID]*Entry
	seq     uint64
	destroy DestroyFunc
	release ReleaseFunc
}

// New creates an empty cache. destroy is called for every style which leaves
// the cache, release for every payload. Either may be nil.
func New(destroy DestroyFunc, release ReleaseFunc) *Cache {
	return &Cache{
		entries: make(map[nodeid.ID]*Entry),
		destroy: destroy,
		release: release,
	}
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Lookup finds the entry for a node.
func (c *Cache) Lookup(id nodeid.ID) (*Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Upsert creates or updates the entry for a node.
//
// A nil payload and nil styles mean "not supplied" and leave the entry's
// current values alone. Supplied styles are stored as raw styles; raw
// styles they replace are destroyed. Resolved slots are never overwritten,
// the corresponding supplied style is destroyed instead.
func (c *Cache) Upsert(id nodeid.ID, payload interface{}, styles *engine.StyleSet) (*Entry, error) {
	e, ok := c.entries[id]
	if !ok {
		c.seq++
		e = &Entry{ID: id, seq: c.seq}
		c.entries[id] = e
		tracer().Debugf("new cache entry for node %q", id)
	}
	if payload != nil {
		e.Payload = payload
	}
	if styles == nil {
		return e, nil
	}
	var err error
	for p, style := range styles {
		slot := &e.Slots[p]
		if slot.State == Resolved {
			if style != slot.Style {
				err = multierr.Append(err, c.destroyStyle(style))
			}
			continue
		}
		old := slot.Style
		slot.Style = style
		slot.State = Raw
		if style == nil {
			slot.State = Absent
		}
		if old != nil && old != style {
			err = multierr.Append(err, c.destroyStyle(old))
		}
	}
	return e, wrapDestroy("upsert", err)
}

// Install puts a resolved style into a slot of an existing entry and
// destroys the slot's previous style. The slot is updated before the old
// style is destroyed, so the entry is never observed holding a destroyed
// style.
func (c *Cache) Install(id nodeid.ID, p engine.Pseudo, style engine.ComputedStyle) error {
	e, ok := c.entries[id]
	if !ok {
		return fmt.Errorf("cache: no entry for node %q", id)
	}
	old := e.Slots[p].Style
	e.Slots[p] = Slot{Style: style, State: Resolved}
	if old != nil && old != style {
		return wrapDestroy("install", c.destroyStyle(old))
	}
	return nil
}

// MarkResolved declares the style in a slot final, as is.
func (c *Cache) MarkResolved(id nodeid.ID, p engine.Pseudo) error {
	e, ok := c.entries[id]
	if !ok || e.Slots[p].State == Absent {
		return fmt.Errorf("cache: no style for node %q/%s", id, p)
	}
	e.Slots[p].State = Resolved
	return nil
}

// Remove drops the entry for a node. Every style of the entry is destroyed,
// and the payload, if present, is released. Destroy errors are reported,
// the entry is removed anyway.
func (c *Cache) Remove(id nodeid.ID) error {
	e, ok := c.entries[id]
	if !ok {
		return nil
	}
	delete(c.entries, id)
	return wrapDestroy("remove", c.teardown(e))
}

func (c *Cache) teardown(e *Entry) error {
	var err error
	for p := range e.Slots {
		if e.Slots[p].Style != nil {
			err = multierr.Append(err, c.destroyStyle(e.Slots[p].Style))
		}
		e.Slots[p] = Slot{}
	}
	if e.Payload != nil {
		if c.release != nil {
			c.release(e.ID, e.Payload)
		}
		e.Payload = nil
	}
	return err
}

// Clear removes all entries, in insertion order. Errors from destroying
// styles are accumulated and returned; the cache is empty in any case.
func (c *Cache) Clear() error {
	entries := c.ordered()
	c.entries = make(map[nodeid.ID]*Entry)
	var err error
	for _, e := range entries {
		err = multierr.Append(err, c.teardown(e))
	}
	tracer().Debugf("cleared %d cache entries", len(entries))
	return wrapDestroy("clear", err)
}

// Each calls f for every entry, in insertion order.
func (c *Cache) Each(f func(*Entry)) {
	for _, e := range c.ordered() {
		f(e)
	}
}

func (c *Cache) ordered() []*Entry {
	entries := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})
	return entries
}

func (c *Cache) destroyStyle(s engine.ComputedStyle) error {
	if s == nil || c.destroy == nil {
		return nil
	}
	return c.destroy(s)
}

func wrapDestroy(op string, err error) error {
	if err == nil {
		return nil
	}
	tracer().Errorf("cache %s: %v", op, err)
	return engine.Wrap(engine.EngineDestroyFailed, "cache "+op, err)
}
