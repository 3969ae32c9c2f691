package state

import (
	"log"
	"sync"
)

// DisplayList is the drawing model: an insertion-ordered list of drawable
// items plus a redo stack. The list and the redo stack are disjoint; items
// only move between them through Undo and Redo. Every mutation fires
// OnChange so the UI can repaint.
type DisplayList struct {
	items []Item
	redo  []Item
	mu    sync.RWMutex

	OnChange func() // set by the UI to trigger a redraw
}

func NewDisplayList() *DisplayList {
	return &DisplayList{
		items: make([]Item, 0),
	}
}

func (d *DisplayList) notify() {
	if d.OnChange != nil {
		d.OnChange()
	}
}

// itemID names an item in log output.
func itemID(it Item) string {
	if id, ok := it.(interface{ ItemID() string }); ok {
		return id.ItemID()
	}
	return "clear"
}

// Begin appends a new item started by fresh user input. Queued redo items
// are invalidated.
func (d *DisplayList) Begin(it Item) {
	d.mu.Lock()
	d.items = append(d.items, it)
	d.redo = nil
	d.mu.Unlock()

	log.Printf("[LIST] Begin %s", itemID(it))
	d.notify()
}

// Extend grows the most recent item while the pointer drags. No-op when
// the list is empty.
func (d *DisplayList) Extend(p Point) {
	d.mu.Lock()
	if len(d.items) == 0 {
		d.mu.Unlock()
		return
	}
	d.items[len(d.items)-1].Extend(p)
	d.mu.Unlock()
	d.notify()
}

// Undo moves the tail item onto the redo stack. Returns false when there
// is nothing to undo.
func (d *DisplayList) Undo() bool {
	d.mu.Lock()
	if len(d.items) == 0 {
		d.mu.Unlock()
		return false
	}
	last := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	d.redo = append(d.redo, last)
	remaining := len(d.items)
	d.mu.Unlock()

	log.Printf("[LIST] Undo %s: %d items remain", itemID(last), remaining)
	d.notify()
	return true
}

// Redo moves the top of the redo stack back onto the list. Returns false
// when there is nothing to redo.
func (d *DisplayList) Redo() bool {
	d.mu.Lock()
	if len(d.redo) == 0 {
		d.mu.Unlock()
		return false
	}
	top := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	d.items = append(d.items, top)
	restored := len(d.items)
	d.mu.Unlock()

	log.Printf("[LIST] Redo %s: %d items on list", itemID(top), restored)
	d.notify()
	return true
}

// Clear appends a clear-marker. Consecutive clears collapse to a single
// marker, but a clear is still fresh input, so the redo stack always
// empties.
func (d *DisplayList) Clear() {
	d.mu.Lock()
	if n := len(d.items); n == 0 || !isClear(d.items[n-1]) {
		d.items = append(d.items, clearMark{})
	}
	d.redo = nil
	d.mu.Unlock()
	d.notify()
}

// Replay resets the surface and displays every item in insertion order.
// The result depends on nothing but the current list contents.
func (d *DisplayList) Replay(s Surface) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s.Reset()
	for _, it := range d.items {
		it.Display(s)
	}
}

// Items returns a snapshot copy of the display list.
func (d *DisplayList) Items() []Item {
	d.mu.RLock()
	defer d.mu.RUnlock()

	items := make([]Item, len(d.items))
	copy(items, d.items)
	return items
}

func (d *DisplayList) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.items)
}

func (d *DisplayList) RedoLen() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.redo)
}
