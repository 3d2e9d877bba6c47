// Package codegen provides the dispatch-based rendering engine shared by
// all astir backends. The engine maps a node's Kind to a registered
// handler and otherwise holds no state: everything scope-sensitive
// (indentation depth, the indentation unit) travels through a Context
// passed by value, so a backend value can serve concurrent renders and
// depth is restored on every exit path, error exits included.
package codegen

import (
	"fmt"
	"strings"

	"github.com/astir-lang/astir/internal/ir"
)

// HandlerFunc renders one node variant. Handlers recurse through the
// emitter they are given, never by calling each other directly, so that
// every child lookup goes through dispatch and missing coverage surfaces
// as an UnimplementedError instead of a panic.
type HandlerFunc func(e *Emitter, ctx Context, n ir.Node) (string, error)

// Context carries the scope-sensitive rendering state.
type Context struct {
	Depth  int    // current indentation depth
	Indent string // indentation unit, fixed per render
}

// Nested returns a context one indentation level deeper. Context is a
// value type, so the caller's depth is untouched.
func (c Context) Nested() Context {
	c.Depth++
	return c
}

// Margin returns the indentation prefix for the current depth.
func (c Context) Margin() string {
	return strings.Repeat(c.Indent, c.Depth)
}

// UnimplementedError reports a node variant with no registered handler in
// the active backend. It aborts the enclosing render; the engine never
// falls back to empty text.
type UnimplementedError struct {
	Kind ir.Kind
	Node string // diagnostic name of the offending node
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented construct %s (%s)", e.Kind, e.Node)
}

// Emitter is the handler registry for one backend.
type Emitter struct {
	handlers map[ir.Kind]HandlerFunc
}

// NewEmitter creates an empty registry.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[ir.Kind]HandlerFunc)}
}

// Register binds a handler to a node kind. Exactly one handler serves a
// kind; registering again replaces the earlier binding (last registration
// wins), which is the documented resolution rule for would-be overlaps.
func (e *Emitter) Register(kind ir.Kind, h HandlerFunc) {
	e.handlers[kind] = h
}

// Handles reports whether a handler is registered for the kind.
func (e *Emitter) Handles(kind ir.Kind) bool {
	_, ok := e.handlers[kind]
	return ok
}

// Emit resolves the node's handler by its runtime Kind and renders it.
func (e *Emitter) Emit(ctx Context, n ir.Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("emit: nil node")
	}
	h, ok := e.handlers[n.Kind()]
	if !ok {
		return "", &UnimplementedError{Kind: n.Kind(), Node: n.DiagName()}
	}
	return h(e, ctx, n)
}

// Backend renders a whole tree to target-language source text. A failed
// render returns no partial output.
type Backend interface {
	Render(root ir.Node) (string, error)
}
