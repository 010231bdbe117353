// Package schema infers a typed tree from a JSON (or YAML) defaults document.
//
// The document is both the schema and the default values: every object
// becomes a struct, every list an array, objects keyed "row_col" become
// matrices and objects keyed by integers become arrays ordered by key.
// Key order is preserved, so generated code follows the document.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind is the shape of a Node.
type Kind int

const (
	KindStruct Kind = iota
	KindArray
	KindMatrix
	KindString
	KindInt
	KindFloat
	KindBool
)

var kindNames = [...]string{"struct", "array", "matrix", "string", "int", "float", "bool"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Scalar reports whether k is a leaf value kind.
func (k Kind) Scalar() bool {
	return k >= KindString
}

// ErrUnsupported is returned for document values that have no static type.
var ErrUnsupported = errors.New("schema: unsupported value")

// Node is one value of the document together with its inferred type.
type Node struct {
	Kind Kind
	// Key is the document key the node was found under, empty for the root and array items.
	Key string
	// GoName is the exported Go identifier for Key.
	GoName string
	// TypeName is the Go type name of a struct node.
	TypeName string

	// Fields of a struct, in document order.
	Fields []*Node
	// Items of an array, or the cells of a matrix in row-major order.
	Items []*Node
	// Rows and Cols of a matrix.
	Rows, Cols int

	// Value is the scalar's literal text as written in the document.
	Value string
}

// Len is the number of items of an array or cells of a matrix.
func (n *Node) Len() int {
	return len(n.Items)
}

// Elem is the representative element of an array or matrix: its first item.
func (n *Node) Elem() *Node {
	if len(n.Items) == 0 {
		return nil
	}
	return n.Items[0]
}

// Options control naming.
type Options struct {
	// RootName is the type name of the document root. Defaults to "Config".
	RootName string
	// TypeNames renames the struct found under a key, e.g. {"send": "SendChannel"}.
	// Array items take the name of their array's key.
	TypeNames map[string]string
}

var matrixKey = regexp.MustCompile(`^(\d+)_(\d+)$`)

// Parse reads a JSON or YAML document and infers its schema.
func Parse(data []byte, opts Options) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schema: empty document")
	}

	root, err := build(doc.Content[0], "", nil)
	if err != nil {
		return nil, err
	}
	if root.Kind != KindStruct {
		return nil, fmt.Errorf("schema: document root is a %s, want an object: %w", root.Kind, ErrUnsupported)
	}

	if opts.RootName == "" {
		opts.RootName = "Config"
	}
	if err := assignTypeNames(root, opts); err != nil {
		return nil, err
	}
	return root, nil
}

// build converts a yaml node found under key at path into a Node.
func build(y *yaml.Node, key string, path []string) (*Node, error) {
	if y.Kind == yaml.AliasNode {
		y = y.Alias
	}
	where := pathString(path, key)

	switch y.Kind {
	case yaml.MappingNode:
		return buildMapping(y, key, path)

	case yaml.SequenceNode:
		items := make([]*yaml.Node, len(y.Content))
		copy(items, y.Content)
		if m, ok, err := buildListMatrix(items, key, path); ok || err != nil {
			return m, err
		}
		return buildArray(items, key, path)

	case yaml.ScalarNode:
		n := &Node{Key: key, Value: y.Value}
		switch y.ShortTag() {
		case "!!str":
			n.Kind = KindString
		case "!!int":
			n.Kind = KindInt
		case "!!float":
			n.Kind = KindFloat
		case "!!bool":
			n.Kind = KindBool
		default:
			return nil, fmt.Errorf("schema: %s: %s value: %w", where, y.ShortTag(), ErrUnsupported)
		}
		return n, nil
	}

	return nil, fmt.Errorf("schema: %s: yaml node kind %d: %w", where, y.Kind, ErrUnsupported)
}

func buildMapping(y *yaml.Node, key string, path []string) (*Node, error) {
	where := pathString(path, key)
	if len(y.Content) == 0 {
		return nil, fmt.Errorf("schema: %s: empty object: %w", where, ErrUnsupported)
	}

	keys := make([]string, 0, len(y.Content)/2)
	values := make([]*yaml.Node, 0, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		keys = append(keys, y.Content[i].Value)
		values = append(values, y.Content[i+1])
	}

	if m, ok, err := buildKeyedMatrix(keys, values, key, path); ok || err != nil {
		return m, err
	}

	if idx, ok := integerKeys(keys); ok {
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return idx[order[a]] < idx[order[b]] })
		items := make([]*yaml.Node, len(order))
		for i, o := range order {
			items[i] = values[o]
		}
		return buildArray(items, key, path)
	}

	n := &Node{Kind: KindStruct, Key: key}
	seen := make(map[string]string, len(keys))
	for i, k := range keys {
		f, err := build(values[i], k, child(path, key))
		if err != nil {
			return nil, err
		}
		f.GoName = GoName(k)
		if prev, dup := seen[f.GoName]; dup {
			return nil, fmt.Errorf("schema: %s: keys %q and %q both map to Go field %s", where, prev, k, f.GoName)
		}
		seen[f.GoName] = k
		n.Fields = append(n.Fields, f)
	}
	return n, nil
}

// buildKeyedMatrix recognises objects whose keys are all "row_col" and cover a full grid.
func buildKeyedMatrix(keys []string, values []*yaml.Node, key string, path []string) (*Node, bool, error) {
	type cell struct{ r, c int }
	cells := make(map[cell]*yaml.Node, len(keys))
	rows, cols := 0, 0
	for i, k := range keys {
		m := matrixKey.FindStringSubmatch(k)
		if m == nil {
			return nil, false, nil
		}
		r, _ := strconv.Atoi(m[1])
		c, _ := strconv.Atoi(m[2])
		cells[cell{r, c}] = values[i]
		rows = max(rows, r+1)
		cols = max(cols, c+1)
	}
	if len(cells) != rows*cols {
		return nil, false, nil
	}

	grid := make([][]*yaml.Node, rows)
	for r := range grid {
		grid[r] = make([]*yaml.Node, cols)
		for c := range grid[r] {
			grid[r][c] = cells[cell{r, c}]
		}
	}
	m, err := buildMatrix(grid, key, path)
	return m, true, err
}

// buildListMatrix recognises lists of equal-length lists of scalars.
func buildListMatrix(items []*yaml.Node, key string, path []string) (*Node, bool, error) {
	if len(items) == 0 {
		return nil, false, nil
	}
	grid := make([][]*yaml.Node, len(items))
	for r, it := range items {
		if it.Kind != yaml.SequenceNode || len(it.Content) == 0 || len(it.Content) != len(items[0].Content) {
			return nil, false, nil
		}
		for _, c := range it.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, false, nil
			}
		}
		grid[r] = it.Content
	}
	m, err := buildMatrix(grid, key, path)
	return m, true, err
}

func buildMatrix(grid [][]*yaml.Node, key string, path []string) (*Node, error) {
	where := pathString(path, key)
	n := &Node{Kind: KindMatrix, Key: key, Rows: len(grid), Cols: len(grid[0])}
	for _, row := range grid {
		for _, y := range row {
			c, err := build(y, "", child(path, key))
			if err != nil {
				return nil, err
			}
			if !c.Kind.Scalar() {
				return nil, fmt.Errorf("schema: %s: matrix cells must be scalars, got %s: %w", where, c.Kind, ErrUnsupported)
			}
			n.Items = append(n.Items, c)
		}
	}
	if err := unifyItems(n.Items, where); err != nil {
		return nil, err
	}
	return n, nil
}

func buildArray(items []*yaml.Node, key string, path []string) (*Node, error) {
	where := pathString(path, key)
	if len(items) == 0 {
		return nil, fmt.Errorf("schema: %s: empty list has no element type: %w", where, ErrUnsupported)
	}

	n := &Node{Kind: KindArray, Key: key}
	for _, y := range items {
		it, err := build(y, "", child(path, key))
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, it)
	}
	if err := unifyItems(n.Items, where); err != nil {
		return nil, err
	}
	return n, nil
}

// unifyItems checks that all items share one shape. Ints are widened to floats
// when the items mix both.
func unifyItems(items []*Node, where string) error {
	for _, it := range items[1:] {
		if err := sameShape(items[0], it); err != nil {
			return fmt.Errorf("schema: %s: %w", where, err)
		}
	}
	widen(items)
	return nil
}

// sameShape reports whether a and b can share a Go type.
func sameShape(a, b *Node) error {
	if a.Kind.Scalar() && b.Kind.Scalar() {
		if a.Kind == b.Kind || numeric(a.Kind) && numeric(b.Kind) {
			return nil
		}
		return fmt.Errorf("items mix %s and %s: %w", a.Kind, b.Kind, ErrUnsupported)
	}
	if a.Kind != b.Kind {
		return fmt.Errorf("items mix %s and %s: %w", a.Kind, b.Kind, ErrUnsupported)
	}

	switch a.Kind {
	case KindStruct:
		if len(a.Fields) != len(b.Fields) {
			return fmt.Errorf("struct items have %d and %d fields: %w", len(a.Fields), len(b.Fields), ErrUnsupported)
		}
		for i := range a.Fields {
			if a.Fields[i].Key != b.Fields[i].Key {
				return fmt.Errorf("struct items differ at field %d (%q vs %q): %w", i, a.Fields[i].Key, b.Fields[i].Key, ErrUnsupported)
			}
			if err := sameShape(a.Fields[i], b.Fields[i]); err != nil {
				return fmt.Errorf("field %q: %w", a.Fields[i].Key, err)
			}
		}
	case KindArray:
		if a.Len() != b.Len() {
			return fmt.Errorf("array items have lengths %d and %d: %w", a.Len(), b.Len(), ErrUnsupported)
		}
		return sameShape(a.Elem(), b.Elem())
	case KindMatrix:
		if a.Rows != b.Rows || a.Cols != b.Cols {
			return fmt.Errorf("matrix items are %dx%d and %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrUnsupported)
		}
		return sameShape(a.Elem(), b.Elem())
	}
	return nil
}

// widen turns every int leaf into a float when the matching leaf of any sibling is a float.
func widen(items []*Node) {
	if len(items) == 0 {
		return
	}
	switch first := items[0]; {
	case first.Kind.Scalar():
		float := false
		for _, it := range items {
			float = float || it.Kind == KindFloat
		}
		if !float {
			return
		}
		for _, it := range items {
			if it.Kind == KindInt {
				it.Kind = KindFloat
			}
		}

	case first.Kind == KindStruct:
		for i := range first.Fields {
			column := make([]*Node, len(items))
			for j, it := range items {
				column[j] = it.Fields[i]
			}
			widen(column)
		}

	default:
		// Arrays and matrices: widen position by position across items, then within each item.
		for i := range first.Items {
			column := make([]*Node, len(items))
			for j, it := range items {
				column[j] = it.Items[i]
			}
			widen(column)
		}
		for _, it := range items {
			widen(it.Items)
		}
	}
}

func numeric(k Kind) bool {
	return k == KindInt || k == KindFloat
}

// integerKeys returns the keys as integers when every key is a non-negative integer.
func integerKeys(keys []string) ([]int, bool) {
	idx := make([]int, len(keys))
	for i, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil || v < 0 {
			return nil, false
		}
		idx[i] = v
	}
	return idx, true
}

// child returns a copy of path extended by key.
func child(path []string, key string) []string {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	return append(p, key)
}

func pathString(path []string, key string) string {
	s := ""
	for _, p := range child(path, key) {
		if p != "" {
			s += "/" + p
		}
	}
	if s == "" {
		return "/"
	}
	return s
}
