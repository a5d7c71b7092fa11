package realtime

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Tree is an in-memory JSON document addressed by slash paths. Leaves are
// strings, json.Number, bools and slices; inner nodes are
// map[string]any. Empty inner nodes do not exist: writing null removes a
// node and prunes parents that become empty.
type Tree struct {
	mu   sync.RWMutex
	root map[string]any
}

func NewTree() *Tree {
	return &Tree{root: make(map[string]any)}
}

// Get returns the node at path encoded as JSON, or null when absent.
func (t *Tree) Get(path string) (json.RawMessage, error) {
	segs, err := validPath(path)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return json.Marshal(lookup(t.root, segs))
}

// Set replaces the node at path. A null value removes it.
func (t *Tree) Set(path string, value any) error {
	segs, err := validPath(path)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(segs) == 0 {
		m, ok := value.(map[string]any)
		if value != nil && !ok {
			return fmt.Errorf("%w: root must be an object", ErrInvalidValue)
		}
		t.root = m
		if t.root == nil {
			t.root = make(map[string]any)
		}
		return nil
	}
	place(t.root, segs, value)
	return nil
}

// Update writes each child of values relative to path. Child keys may be
// nested paths.
func (t *Tree) Update(path string, values map[string]any) error {
	base, err := validPath(path)
	if err != nil {
		return err
	}
	for key := range values {
		if _, err = validPath(key); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for key, v := range values {
		segs := append(append([]string{}, base...), SplitPath(key)...)
		if len(segs) == 0 {
			continue
		}
		place(t.root, segs, v)
	}
	return nil
}

// Children returns the direct children of the node at path.
func (t *Tree) Children(path string) (map[string]json.RawMessage, error) {
	segs, err := validPath(path)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	node, _ := lookup(t.root, segs).(map[string]any)
	out := make(map[string]json.RawMessage, len(node))
	for k, v := range node {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = data
	}
	return out, nil
}

func lookup(node any, segs []string) any {
	for _, s := range segs {
		m, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node = m[s]
	}
	return node
}

// place sets root[segs] = value, creating inner nodes on the way and
// pruning them when value is empty.
func place(root map[string]any, segs []string, value any) {
	if isEmpty(value) {
		remove(root, segs)
		return
	}

	node := root
	for _, s := range segs[:len(segs)-1] {
		child, ok := node[s].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[s] = child
		}
		node = child
	}
	node[segs[len(segs)-1]] = value
}

func remove(node map[string]any, segs []string) bool {
	if len(segs) == 1 {
		delete(node, segs[0])
		return len(node) == 0
	}
	child, ok := node[segs[0]].(map[string]any)
	if !ok {
		return false
	}
	if remove(child, segs[1:]) {
		delete(node, segs[0])
	}
	return len(node) == 0
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	m, ok := value.(map[string]any)
	return ok && len(m) == 0
}

// DecodeValue parses a wire value with numbers kept as json.Number and
// resolves server timestamp placeholders to now.
func DecodeValue(raw json.RawMessage, now time.Time) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return resolveServerValues(v, now), nil
}

func resolveServerValues(v any, now time.Time) any {
	switch node := v.(type) {
	case map[string]any:
		if len(node) == 1 && node[ServerValueKey] == ServerValueTimestamp {
			return json.Number(strconv.FormatInt(now.UnixMilli(), 10))
		}
		for k, child := range node {
			resolved := resolveServerValues(child, now)
			if isEmpty(resolved) {
				delete(node, k)
				continue
			}
			node[k] = resolved
		}
		if len(node) == 0 {
			return nil
		}
		return node
	case []any:
		for i, child := range node {
			node[i] = resolveServerValues(child, now)
		}
		return node
	default:
		return v
	}
}

func validPath(path string) ([]string, error) {
	segs := SplitPath(path)
	for _, s := range segs {
		if s == "." || s == ".." || s == ServerValueKey {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return segs, nil
}

// Overlaps reports whether a write at one path can change the value at the
// other: one is a prefix of the other.
func Overlaps(a, b string) bool {
	as, bs := SplitPath(a), SplitPath(b)
	n := min(len(as), len(bs))
	for i := 0; i < n; i++ {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
