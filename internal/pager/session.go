package pager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultIdleTimeout is the inactivity window after which a session
	// expires and stops accepting callbacks.
	DefaultIdleTimeout = 3 * time.Minute

	noticeNotOwner    = "This pagination menu cannot be controlled by you, sorry!"
	noticeInactive    = "This menu is no longer active."
	noticeTookTooLong = "Took too long"
)

// Options configures a session.
type Options struct {
	// OwnerID is the only identity allowed to drive the session, besides
	// AdminID.
	OwnerID string

	// AdminID is an administrative override identity. Empty disables the
	// override.
	AdminID string

	// IdleTimeout overrides DefaultIdleTimeout when positive.
	IdleTimeout time.Duration

	// Errors receives delivery failures. Defaults to a no-op sink.
	Errors ErrorSink
}

type nopSink struct{}

func (nopSink) ReportError(context.Context, error) {}

// Session is one interactive pagination instance bound to a single authorized
// driver. All callbacks are expected to arrive serially; the internal mutex
// only guards against stray concurrent callbacks corrupting position or
// control state.
type Session[T any] struct {
	id       string
	source   PageSource[T]
	renderer PageRenderer[T]
	frontend Frontend
	perPage  int

	ownerID     string
	adminID     string
	idleTimeout time.Duration
	errs        ErrorSink

	mu         sync.Mutex
	current    int
	msg        MessageRef
	lastSpec   RenderSpec
	finished   bool
	lastActive time.Time
}

// NewSession creates a session over source, rendering pages with renderer and
// delivering them through frontend. perPage is the page size the renderer
// numbers entries with; use the source's page size.
func NewSession[T any](source PageSource[T], renderer PageRenderer[T], frontend Frontend, perPage int, opts Options) *Session[T] {
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	errs := opts.Errors
	if errs == nil {
		errs = nopSink{}
	}
	return &Session[T]{
		id:          uuid.NewString(),
		source:      source,
		renderer:    renderer,
		frontend:    frontend,
		perPage:     perPage,
		ownerID:     opts.OwnerID,
		adminID:     opts.AdminID,
		idleTimeout: idle,
		errs:        errs,
		lastActive:  time.Now(),
	}
}

// ID returns the session's unique identifier.
func (s *Session[T]) ID() string { return s.id }

// CurrentPage returns the zero-based current page index.
func (s *Session[T]) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Finished reports whether the session has terminated.
func (s *Session[T]) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// LastRender returns the most recently rendered spec.
func (s *Session[T]) LastRender() RenderSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSpec
}

// Start fetches page 0, renders it as a fresh message and captures the
// message handle for later in-place edits.
func (s *Session[T]) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.source.Page(ctx, 0)
	if err != nil {
		return err
	}
	s.current = 0
	spec := s.compose(items)
	ref, err := s.frontend.Send(ctx, spec)
	if err != nil {
		return err
	}
	s.msg = ref
	s.lastSpec = spec
	s.lastActive = time.Now()
	return nil
}

// ShowPage navigates to an arbitrary page without range validation. Callers
// use it for transitions that are constructed in-range (first/last).
func (s *Session[T]) ShowPage(ctx context.Context, callerID string, page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	return s.showPageLocked(ctx, page)
}

// ShowCheckedPage navigates to page if it is within range, and silently does
// nothing otherwise. On an unbounded source every non-negative index is
// attempted and a not-found result from the source is swallowed.
func (s *Session[T]) ShowCheckedPage(ctx context.Context, callerID string, page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	return s.showCheckedLocked(ctx, page)
}

// FirstPage navigates to page 0.
func (s *Session[T]) FirstPage(ctx context.Context, callerID string) error {
	return s.ShowPage(ctx, callerID, 0)
}

// PrevPage navigates one page back.
func (s *Session[T]) PrevPage(ctx context.Context, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	return s.showCheckedLocked(ctx, s.current-1)
}

// NextPage navigates one page forward.
func (s *Session[T]) NextPage(ctx context.Context, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	return s.showCheckedLocked(ctx, s.current+1)
}

// LastPage navigates to the final page. It is only reachable through a
// control that exists when the page count is known.
func (s *Session[T]) LastPage(ctx context.Context, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	count, known := s.source.PageCount()
	if !known {
		return nil
	}
	return s.showPageLocked(ctx, count-1)
}

// JumpToPage opens the page-number sub-dialog and navigates to the submitted
// 1-based page. Bad input and abandoned dialogs are reported to the caller as
// notices; neither mutates the current page.
func (s *Session[T]) JumpToPage(ctx context.Context, callerID string) error {
	s.mu.Lock()
	if !s.admit(ctx, callerID) {
		s.mu.Unlock()
		return nil
	}
	placeholder := "Enter a number"
	count, known := s.source.PageCount()
	if known {
		placeholder = fmt.Sprintf("Enter a number between 1 and %d", count)
	}
	s.mu.Unlock()

	// The dialog wait happens outside the lock; the session stays live for
	// other callbacks while the prompt is open.
	value, err := s.frontend.PromptPageNumber(ctx, placeholder)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			s.notify(ctx, callerID, noticeTookTooLong)
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		// The session died while the dialog was open; discard the submission.
		s.notify(ctx, callerID, noticeTookTooLong)
		return nil
	}
	if !isDigits(value) {
		s.notify(ctx, callerID, fmt.Sprintf("Expected a number, not %q", value))
		return nil
	}
	page, convErr := strconv.Atoi(value)
	if convErr != nil {
		s.notify(ctx, callerID, strings.Replace(placeholder, "Enter", "Expected", 1))
		return nil
	}
	before := s.current
	if err := s.showCheckedLocked(ctx, page-1); err != nil {
		return err
	}
	if s.current == before && page-1 != before {
		// The checked navigation was a no-op: out of range.
		s.notify(ctx, callerID, strings.Replace(placeholder, "Enter", "Expected", 1))
	}
	return nil
}

// Stop disables every control, performs one final render and marks the
// session terminated.
func (s *Session[T]) Stop(ctx context.Context, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return nil
	}
	s.finishLocked(ctx)
	return nil
}

// Entry returns the entry behind a zero-based slot on the current page. ok is
// false when the slot is empty or the page vanished; both are soft conditions
// the caller renders as a closed detail view.
func (s *Session[T]) Entry(ctx context.Context, callerID string, slot int) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admit(ctx, callerID) {
		return zero, false, nil
	}
	items, err := s.source.Page(ctx, s.current)
	if err != nil {
		if errors.Is(err, ErrNoPage) {
			return zero, false, nil
		}
		return zero, false, err
	}
	if slot < 0 || slot >= len(items) {
		return zero, false, nil
	}
	s.lastActive = time.Now()
	return items[slot], true, nil
}

// Handle routes a navigation control callback by control ID. Renderer-added
// controls (detail slots) are routed by the hosting code instead.
func (s *Session[T]) Handle(ctx context.Context, callerID, controlID string) error {
	switch controlID {
	case ControlFirst:
		return s.FirstPage(ctx, callerID)
	case ControlPrev:
		return s.PrevPage(ctx, callerID)
	case ControlNext:
		return s.NextPage(ctx, callerID)
	case ControlLast:
		return s.LastPage(ctx, callerID)
	case ControlJump:
		return s.JumpToPage(ctx, callerID)
	case ControlStop:
		return s.Stop(ctx, callerID)
	case ControlPage:
		return nil
	}
	return fmt.Errorf("unknown control %q", controlID)
}

// ExpireIfIdle terminates the session when its inactivity window has elapsed.
// It reports whether the session is finished (and can be dropped by the
// registry), regardless of who finished it.
func (s *Session[T]) ExpireIfIdle(ctx context.Context, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return true
	}
	if now.Sub(s.lastActive) <= s.idleTimeout {
		return false
	}
	s.finishLocked(ctx)
	return true
}

// admit runs the per-callback gate: identity first, then liveness. It
// delivers the rejection notice itself and reports false when the callback
// must not proceed.
func (s *Session[T]) admit(ctx context.Context, callerID string) bool {
	if callerID != s.ownerID && (s.adminID == "" || callerID != s.adminID) {
		s.notify(ctx, callerID, noticeNotOwner)
		return false
	}
	if !s.finished && time.Since(s.lastActive) > s.idleTimeout {
		s.finishLocked(ctx)
	}
	if s.finished {
		s.notify(ctx, callerID, noticeInactive)
		return false
	}
	return true
}

func (s *Session[T]) showPageLocked(ctx context.Context, page int) error {
	items, err := s.source.Page(ctx, page)
	if err != nil {
		return err
	}
	s.current = page
	spec := s.compose(items)
	if s.msg != nil {
		if err := s.frontend.Edit(ctx, s.msg, spec); err != nil {
			return err
		}
	} else {
		ref, err := s.frontend.Send(ctx, spec)
		if err != nil {
			return err
		}
		s.msg = ref
	}
	s.lastSpec = spec
	s.lastActive = time.Now()
	return nil
}

func (s *Session[T]) showCheckedLocked(ctx context.Context, page int) error {
	count, known := s.source.PageCount()
	if known {
		if page < 0 || page >= count {
			return nil
		}
	} else if page < 0 {
		return nil
	}
	err := s.showPageLocked(ctx, page)
	if errors.Is(err, ErrNoPage) {
		// Unbounded source ran out of pages; stay put.
		return nil
	}
	return err
}

// finishLocked is the shared terminal path for Stop and idle expiry: one last
// render with every control inert.
func (s *Session[T]) finishLocked(ctx context.Context) {
	s.finished = true
	spec := RenderSpec{Content: s.lastSpec.Content}
	spec.Controls = make([]Control, len(s.lastSpec.Controls))
	copy(spec.Controls, s.lastSpec.Controls)
	for i := range spec.Controls {
		spec.Controls[i].Disabled = true
	}
	if s.msg != nil {
		if err := s.frontend.Edit(ctx, s.msg, spec); err != nil {
			s.errs.ReportError(ctx, err)
		}
	}
	s.lastSpec = spec
}

// compose merges the renderer's output with the navigation control row.
func (s *Session[T]) compose(items []T) RenderSpec {
	count, known := s.source.PageCount()
	view := View{
		Page:      s.current,
		PerPage:   s.perPage,
		PageCount: count,
		HasCount:  known,
		Total:     s.source.TotalEntries(),
	}
	spec := s.renderer.FormatPage(view, items)

	paginating := !known || count > 1
	if !paginating {
		return spec
	}

	controls := make([]Control, 0, len(spec.Controls)+7)
	atFirst := s.current == 0
	atLast := known && s.current+1 == count
	useEnds := known && count >= 2

	if useEnds {
		controls = append(controls, Control{ID: ControlFirst, Label: "≪", Disabled: atFirst})
	}
	prev := Control{ID: ControlPrev, Label: strconv.Itoa(s.current), Disabled: atFirst}
	if atFirst {
		prev.Label = EllipsisLabel
	}
	controls = append(controls, prev)
	controls = append(controls, Control{ID: ControlPage, Label: strconv.Itoa(s.current + 1), Disabled: true})
	next := Control{ID: ControlNext, Label: strconv.Itoa(s.current + 2), Disabled: atLast}
	if atLast {
		next.Label = EllipsisLabel
	}
	controls = append(controls, next)
	if useEnds {
		controls = append(controls, Control{ID: ControlLast, Label: "≫", Disabled: atLast})
	}
	controls = append(controls, spec.Controls...)
	controls = append(controls,
		Control{ID: ControlJump, Label: "Skip to page..."},
		Control{ID: ControlStop, Label: "Quit"},
	)
	spec.Controls = controls
	return spec
}

func (s *Session[T]) notify(ctx context.Context, callerID, message string) {
	if err := s.frontend.Notify(ctx, callerID, message); err != nil {
		s.errs.ReportError(ctx, err)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
