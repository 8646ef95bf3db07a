package nodes

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/model"
)

// Registry holds the nodes this plugin contributes to the host.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]Node)}
}

// Register adds a node, rejecting duplicate names.
func (r *Registry) Register(n Node) error {
	name := n.Spec().Name
	if name == "" {
		return fmt.Errorf("node has empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.nodes[name]; exists {
		return fmt.Errorf("node %q already registered", name)
	}
	r.nodes[name] = n
	return nil
}

// Get looks a node up by name.
func (r *Registry) Get(name string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[name]
	return n, ok
}

// Names returns registered node names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default builds the registry with the full node set wired to the given
// weight store.
func Default(store model.WeightStore, device model.Device, logger *zap.Logger) (*Registry, error) {
	r := NewRegistry()
	all := []Node{
		NewModelLoader(store, logger),
		NewFeatureUtilsLoader(store, logger),
		NewVocoderLoader(store),
		NewSampler(device, logger),
	}
	for _, n := range all {
		if err := r.Register(n); err != nil {
			return nil, err
		}
	}
	return r, nil
}
