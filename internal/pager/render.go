package pager

import (
	"fmt"
	"strings"
)

// Control IDs understood by Session.Handle. Renderers may add their own
// controls (detail slots); those are routed by the hosting code, not Handle.
const (
	ControlFirst = "first"
	ControlPrev  = "prev"
	ControlPage  = "page" // current page indicator, always disabled
	ControlNext  = "next"
	ControlLast  = "last"
	ControlJump  = "jump"
	ControlStop  = "stop"
)

// EllipsisLabel replaces a navigation label when the control is disabled.
const EllipsisLabel = "…"

// Control describes one interactive control on a rendered page.
type Control struct {
	ID       string
	Label    string
	Disabled bool
}

// RenderSpec is the abstract description of one rendered page: its textual
// content plus the controls attached to it. How it is turned into pixels or
// platform messages is up to the Frontend.
type RenderSpec struct {
	Content  string
	Controls []Control
}

// View is the read-only pagination state handed to renderers.
type View struct {
	Page      int // zero-based current page
	PerPage   int
	PageCount int // valid only when HasCount
	HasCount  bool
	Total     int
}

// PageRenderer turns one fetched page into a RenderSpec. A single session
// type serves heterogeneous content by swapping the renderer.
type PageRenderer[T any] interface {
	FormatPage(view View, items []T) RenderSpec
}

// IndexedRenderer renders entries as a numbered listing. Numbering continues
// across pages, and a "Page X/Y (N ...)" footer is appended when there is
// more than one page.
type IndexedRenderer[T any] struct {
	Header string
	Format func(T) string
	Noun   string // footer noun, defaults to "entries"
}

// FormatPage implements PageRenderer.
func (r IndexedRenderer[T]) FormatPage(view View, items []T) RenderSpec {
	var b strings.Builder
	if r.Header != "" {
		b.WriteString(r.Header)
		b.WriteString("\n")
	}
	start := view.Page * view.PerPage
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", start+i+1, r.Format(item))
	}
	if view.HasCount && view.PageCount > 1 {
		noun := r.Noun
		if noun == "" {
			noun = "entries"
		}
		fmt.Fprintf(&b, "\nPage %d/%d (%d %s)", view.Page+1, view.PageCount, view.Total, noun)
	}
	return RenderSpec{Content: strings.TrimRight(b.String(), "\n")}
}
