// Package nodes exposes the model as loadable, connectable units for a
// node-graph host: each node declares its input widgets and executes once
// per graph evaluation. The host owns scheduling and persistence.
package nodes

import (
	"context"
	"fmt"
)

// InputKind enumerates the widget types the host understands.
type InputKind string

const (
	InputFloat  InputKind = "FLOAT"
	InputInt    InputKind = "INT"
	InputString InputKind = "STRING"
	InputBool   InputKind = "BOOLEAN"
	InputChoice InputKind = "CHOICE"
	InputImage  InputKind = "IMAGE"
	InputLink   InputKind = "LINK" // an upstream node's output
)

// InputSpec describes one input widget.
type InputSpec struct {
	Name      string
	Kind      InputKind
	Default   any
	Options   []string // for InputChoice
	LinkType  string   // for InputLink: the upstream output type name
	Tooltip   string
	Optional  bool
	Multiline bool
}

// Spec describes a node to the host.
type Spec struct {
	Name        string
	DisplayName string
	Category    string
	Inputs      []InputSpec
	Outputs     []string
}

// Inputs is the widget-value map the host hands to Execute.
type Inputs map[string]any

// Outputs is the value map a node hands back, keyed by output name.
type Outputs map[string]any

// Node is a loadable unit in the host's graph.
type Node interface {
	Spec() Spec
	Execute(ctx context.Context, in Inputs) (Outputs, error)
}

// Float reads a float input, accepting int widen, falling back to def.
func (in Inputs) Float(name string, def float64) float64 {
	switch v := in[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Int reads an int input, falling back to def.
func (in Inputs) Int(name string, def int) int {
	switch v := in[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// String reads a string input, falling back to def.
func (in Inputs) String(name, def string) string {
	if v, ok := in[name].(string); ok {
		return v
	}
	return def
}

// Bool reads a bool input, falling back to def.
func (in Inputs) Bool(name string, def bool) bool {
	if v, ok := in[name].(bool); ok {
		return v
	}
	return def
}

// link fetches a typed upstream value, erroring when the host wired nothing
// or the wrong node into the socket.
func link[T any](in Inputs, name string) (T, error) {
	var zero T
	raw, ok := in[name]
	if !ok {
		return zero, fmt.Errorf("required input %q not connected", name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("input %q has unexpected type %T", name, raw)
	}
	return v, nil
}
