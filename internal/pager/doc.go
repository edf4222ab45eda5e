// Package pager implements the generic interactive pagination engine.
//
// A Session renders a logical page sequence on top of a PageSource, tracks
// the current position, recomputes navigation-control state on every
// transition, supports a direct "jump to page N" sub-dialog, enforces session
// ownership and expires after a window of inactivity.
//
// # Composition
//
// Three small contracts make one session type serve heterogeneous content:
//
//   - PageSource[T] supplies pages and (optionally) a total page count
//   - PageRenderer[T] turns one fetched page into a RenderSpec
//   - Frontend delivers specs to the interactive caller and hosts the
//     jump sub-dialog
//
// The session owns the navigation controls (first/prev/current/next/last,
// jump, stop); renderers may contribute extra controls such as per-slot
// detail actions.
//
// # Control state
//
// After every successful transition: first/prev are disabled exactly on page
// 0 and next/last exactly on the final page (when the count is known);
// prev/next labels show the 1-based index of the page they navigate to,
// replaced by an ellipsis when disabled; first/last only exist at all when
// the page count is known and at least 2.
//
// # Lifecycle
//
// A session is created per browsing request and driven only by its owner (or
// the administrative override identity). It terminates on an explicit stop or
// after the idle window, in both cases re-rendering once with every control
// inert. Callbacks arriving after termination are rejected with a notice and
// no state change. Track sessions in a Registry and drive it from a
// background job to reap abandoned sessions.
package pager
