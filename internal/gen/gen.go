// Package gen renders a schema tree as Go source: the struct types, their
// defaults, and one OSC getter and setter per leaf, plus SyncAll, Register
// and the Fields table.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/chabad360/oscconfig/internal/schema"
	"github.com/chabad360/oscconfig/osc"
)

// DefaultOSCImport is the import path of the osc package used by generated code.
const DefaultOSCImport = "github.com/chabad360/oscconfig/osc"

// ErrNameCollision is returned when two leaves or types would share a Go name.
var ErrNameCollision = errors.New("gen: name collision")

// Options control the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Source names the input document in the file header.
	Source string
	// OSCImport overrides DefaultOSCImport.
	OSCImport string
}

// dim is one index of an indexed leaf.
type dim struct {
	param string
	n     int
}

// leaf is one accessor pair.
type leaf struct {
	node *schema.Node
	name string // accessor suffix, e.g. SendLutY
	addr string // address pattern, e.g. /send/%d/lut/Y
	expr string // Go expression of the field, e.g. c.Send[sendIdx].Lut.Y
	dims []dim
}

func (l *leaf) elem() *schema.Node {
	if l.node.Kind.Scalar() {
		return l.node
	}
	return l.node.Elem()
}

// returnsError reports whether the setter can fail.
func (l *leaf) returnsError() bool {
	return len(l.dims) > 0 || !l.node.Kind.Scalar()
}

type generator struct {
	opts   Options
	root   *schema.Node
	leaves []*leaf
	out    bytes.Buffer

	needSliceArgs bool
	needBoolTags  bool
	needIntArg    bool
	needIntArgs   bool
	needBoolArgs  bool
}

// Generate returns the gofmt-formatted Go source for root.
func Generate(root *schema.Node, opts Options) ([]byte, error) {
	if root == nil || root.Kind != schema.KindStruct {
		return nil, errors.New("gen: root must be a struct")
	}
	if opts.Package == "" {
		return nil, errors.New("gen: package name is required")
	}
	if opts.OSCImport == "" {
		opts.OSCImport = DefaultOSCImport
	}
	if opts.Source == "" {
		opts.Source = "a defaults document"
	}

	g := &generator{opts: opts, root: root}
	if err := checkKeys(root, ""); err != nil {
		return nil, err
	}
	g.collect(root, "", "", "", "c", nil)
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	g.scan()

	g.header()
	g.types(root, "", false, map[string]bool{})
	if err := g.defaults(); err != nil {
		return nil, err
	}
	g.errorsAndChecks()
	for _, l := range g.leaves {
		g.getter(l)
		g.setter(l)
	}
	g.syncAll()
	g.register()
	g.fields()
	g.helpers()

	src, err := format.Source(g.out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format generated code: %w", err)
	}
	return src, nil
}

func (g *generator) printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
}

// checkKeys rejects keys that cannot be written into a struct tag or that would put OSC
// pattern characters or extra path segments into an address.
func checkKeys(n *schema.Node, path string) error {
	for _, f := range n.Fields {
		p := path + "/" + f.Key
		if strings.ContainsAny(f.Key, "\"`\\, ") {
			return fmt.Errorf("gen: key %q at %s cannot be used in a struct tag", f.Key, p)
		}
		if strings.ContainsAny(f.Key, osc.ReservedAddressChars+"/") {
			return fmt.Errorf("gen: key %q at %s contains an OSC pattern character", f.Key, p)
		}
		if err := checkKeys(f, p); err != nil {
			return err
		}
	}
	for _, it := range n.Items {
		if err := checkKeys(it, path); err != nil {
			return err
		}
	}
	return nil
}

// collect walks n and records every leaf. Arrays of scalars and matrices are leaves,
// arrays of anything else add an index.
func (g *generator) collect(n *schema.Node, key, name, addr, expr string, dims []dim) {
	switch {
	case n.Kind == schema.KindStruct:
		for _, f := range n.Fields {
			g.collect(f, f.Key, name+f.GoName, addr+"/"+f.Key, expr+"."+f.GoName, dims)
		}

	case n.Kind == schema.KindArray && !n.Elem().Kind.Scalar():
		d := dim{param: paramName(key, dims), n: n.Len()}
		next := append(dims[:len(dims):len(dims)], d)
		g.collect(n.Elem(), key, name, addr+"/%d", expr+"["+d.param+"]", next)

	default:
		g.leaves = append(g.leaves, &leaf{node: n, name: name, addr: addr, expr: expr, dims: dims})
	}
}

func paramName(key string, dims []dim) string {
	base := schema.ParamName(key)
	p := base
	for i := 2; taken(p, dims); i++ {
		p = base + strconv.Itoa(i)
	}
	return p
}

func taken(p string, dims []dim) bool {
	for _, d := range dims {
		if d.param == p {
			return true
		}
	}
	return false
}

func (g *generator) checkNames() error {
	leaves := make(map[string]string, len(g.leaves))
	for _, l := range g.leaves {
		if prev, ok := leaves[l.name]; ok {
			return fmt.Errorf("%w: %s and %s both have accessors named %s", ErrNameCollision, prev, l.addr, l.name)
		}
		leaves[l.name] = l.addr
	}

	var err error
	walkStructs(g.root, func(n *schema.Node) {
		if n.TypeName == "Field" && err == nil {
			err = fmt.Errorf("%w: struct type Field is reserved", ErrNameCollision)
		}
	})
	return err
}

func walkStructs(n *schema.Node, fn func(*schema.Node)) {
	if n.Kind == schema.KindStruct {
		fn(n)
		for _, f := range n.Fields {
			walkStructs(f, fn)
		}
		return
	}
	for _, it := range n.Items {
		walkStructs(it, fn)
	}
}

// scan decides which helpers the generated file needs.
func (g *generator) scan() {
	for _, l := range g.leaves {
		k := l.elem().Kind
		multi := !l.node.Kind.Scalar()
		switch {
		case k == schema.KindBool && multi:
			g.needBoolTags = true
			g.needBoolArgs = true
		case k == schema.KindInt && multi:
			g.needIntArgs = true
		case k == schema.KindInt:
			g.needIntArg = true
		}
		if l.node.Kind == schema.KindArray && k != schema.KindBool {
			g.needSliceArgs = true
		}
	}
}

func (g *generator) header() {
	g.printf("// Code generated by oscgen from %s. DO NOT EDIT.\n\n", g.opts.Source)
	g.printf("package %s\n\n", g.opts.Package)
	g.printf("import (\n\"errors\"\n\"fmt\"\n")
	if g.needIntArg || g.needIntArgs {
		g.printf("\"math\"\n")
	}
	g.printf("\n%q\n)\n\n", g.opts.OSCImport)
}

// types emits every struct type below n in preorder.
func (g *generator) types(n *schema.Node, addr string, indexed bool, seen map[string]bool) {
	switch n.Kind {
	case schema.KindArray:
		g.types(n.Elem(), addr+"/%d", true, seen)
		return
	case schema.KindStruct:
	default:
		return
	}
	if seen[n.TypeName] {
		return
	}
	seen[n.TypeName] = true

	if n == g.root {
		g.printf("// %s is the root of the configuration tree.\n", n.TypeName)
	} else {
		g.printf("// %s is the value at %s.\n", n.TypeName, addr)
	}
	g.printf("type %s struct {\n", n.TypeName)
	for _, f := range n.Fields {
		tag := fmt.Sprintf("yaml:%q json:%q", f.Key, f.Key)
		if f.Kind.Scalar() && !indexed {
			tag += fmt.Sprintf(" env:%q", envName(addr+"/"+f.Key))
		}
		g.printf("%s %s `%s`\n", f.GoName, goType(f), tag)
	}
	g.printf("}\n\n")

	for _, f := range n.Fields {
		g.types(f, addr+"/"+f.Key, indexed, seen)
	}
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9]+`)

// envName turns an address into an environment variable name: /analog_format/framerate
// becomes ANALOG_FORMAT_FRAMERATE.
func envName(addr string) string {
	return strings.ToUpper(strings.Trim(nonWord.ReplaceAllString(addr, "_"), "_"))
}

func goType(n *schema.Node) string {
	switch n.Kind {
	case schema.KindStruct:
		return n.TypeName
	case schema.KindArray:
		return fmt.Sprintf("[%d]%s", n.Len(), goType(n.Elem()))
	case schema.KindMatrix:
		return fmt.Sprintf("[%d][%d]%s", n.Rows, n.Cols, goType(n.Elem()))
	case schema.KindString:
		return "string"
	case schema.KindInt:
		return "int"
	case schema.KindFloat:
		return "float64"
	case schema.KindBool:
		return "bool"
	}
	return "interface{}"
}

func (g *generator) defaults() error {
	lit, err := literal(g.root, false)
	if err != nil {
		return err
	}
	name := g.root.TypeName
	g.printf("// Default%s returns the configuration described by %s.\n", name, g.opts.Source)
	g.printf("func Default%s() *%s {\nreturn &%s\n}\n\n", name, name, lit)
	return nil
}

// literal renders n as a Go composite literal or constant. elide drops the type of
// composite literals that are elements of an enclosing array.
func literal(n *schema.Node, elide bool) (string, error) {
	var sb strings.Builder
	typ := goType(n)
	if elide {
		typ = ""
	}

	switch n.Kind {
	case schema.KindStruct:
		sb.WriteString(typ + "{\n")
		for _, f := range n.Fields {
			v, err := literal(f, false)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s: %s,\n", f.GoName, v)
		}
		sb.WriteString("}")

	case schema.KindArray:
		sb.WriteString(typ + "{")
		if n.Elem().Kind.Scalar() {
			vals := make([]string, len(n.Items))
			for i, it := range n.Items {
				v, err := literal(it, true)
				if err != nil {
					return "", err
				}
				vals[i] = v
			}
			sb.WriteString(strings.Join(vals, ", "))
		} else {
			sb.WriteString("\n")
			for _, it := range n.Items {
				v, err := literal(it, true)
				if err != nil {
					return "", err
				}
				sb.WriteString(v + ",\n")
			}
		}
		sb.WriteString("}")

	case schema.KindMatrix:
		sb.WriteString(typ + "{\n")
		for r := 0; r < n.Rows; r++ {
			vals := make([]string, n.Cols)
			for c := range vals {
				v, err := literal(n.Items[r*n.Cols+c], true)
				if err != nil {
					return "", err
				}
				vals[c] = v
			}
			sb.WriteString("{" + strings.Join(vals, ", ") + "},\n")
		}
		sb.WriteString("}")

	case schema.KindString:
		return strconv.Quote(n.Value), nil

	case schema.KindInt:
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return "", fmt.Errorf("gen: int value %q: %w", n.Value, err)
		}
		return strconv.FormatInt(v, 10), nil

	case schema.KindFloat:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return "", fmt.Errorf("gen: float value %q has no Go literal", n.Value)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil

	case schema.KindBool:
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return "", fmt.Errorf("gen: bool value %q: %w", n.Value, err)
		}
		return strconv.FormatBool(v), nil
	}
	return sb.String(), nil
}

func (g *generator) errorsAndChecks() {
	g.printf("// ErrIndexOutOfRange is returned by accessors given an index outside the bounds of its array.\n")
	g.printf("var ErrIndexOutOfRange = errors.New(%q)\n\n", g.opts.Package+": index out of range")
	g.printf("// ErrLength is returned by array and matrix setters given the wrong number of values.\n")
	g.printf("var ErrLength = errors.New(%q)\n\n", g.opts.Package+": wrong number of values")
	g.printf(`func checkIndex(name string, idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%%s %%d not in [0, %%d): %%w", name, idx, n, ErrIndexOutOfRange)
	}
	return nil
}

`)
}

func (g *generator) checks(dims []dim, ret string) {
	for _, d := range dims {
		g.printf("if err := checkIndex(%q, %s, %d); err != nil {\nreturn %serr\n}\n", d.param, d.param, d.n, ret)
	}
}

// addrExpr is the Go expression of the concrete address of l.
func addrExpr(l *leaf) string {
	if len(l.dims) == 0 {
		return strconv.Quote(l.addr)
	}
	return fmt.Sprintf("fmt.Sprintf(%q, %s)", l.addr, dimArgs(l.dims))
}

func dimArgs(dims []dim) string {
	ps := make([]string, len(dims))
	for i, d := range dims {
		ps[i] = d.param
	}
	return strings.Join(ps, ", ")
}

func dimParams(dims []dim) string {
	var sb strings.Builder
	for _, d := range dims {
		sb.WriteString(d.param + " int, ")
	}
	return sb.String()
}

func tagChar(k schema.Kind) string {
	switch k {
	case schema.KindString:
		return "s"
	case schema.KindBool:
		return "T"
	}
	return "f"
}

// typeTags is the type tag string listed in Fields.
func typeTags(l *leaf) string {
	return strings.Repeat(tagChar(l.elem().Kind), max(l.node.Len(), 1))
}

func (g *generator) getter(l *leaf) {
	root := g.root.TypeName
	g.printf("// Get%s writes the %s message into buf and returns its length.\n", l.name, l.addr)
	g.printf("func (c *%s) Get%s(buf []byte%s) (int, error) {\n", root, l.name, strings.TrimSuffix(", "+dimParams(l.dims), ", "))
	g.checks(l.dims, "0, ")

	addr := addrExpr(l)
	k := l.elem().Kind
	switch l.node.Kind {
	case schema.KindArray:
		if k == schema.KindBool {
			g.printf("return osc.WriteMessage(buf, %s, boolTags(%s[:]))\n", addr, l.expr)
		} else {
			g.printf("return osc.WriteMessage(buf, %s, %q, sliceArgs(%s[:])...)\n", addr, typeTags(l), l.expr)
		}

	case schema.KindMatrix:
		g.printf("m := &%s\n", l.expr)
		var rows []string
		for r := 0; r < l.node.Rows; r++ {
			cells := make([]string, l.node.Cols)
			for c := range cells {
				cells[c] = fmt.Sprintf("m[%d][%d]", r, c)
			}
			rows = append(rows, strings.Join(cells, ", "))
		}
		if k == schema.KindBool {
			g.printf("return osc.WriteMessage(buf, %s, boolTags([]bool{\n%s,\n}))\n", addr, strings.Join(rows, ",\n"))
		} else {
			g.printf("return osc.WriteMessage(buf, %s, %q,\n%s)\n", addr, typeTags(l), strings.Join(rows, ",\n"))
		}

	default:
		if k == schema.KindBool {
			g.printf("return osc.WriteMessage(buf, %s, osc.BoolTypeTag(%s))\n", addr, l.expr)
		} else {
			g.printf("return osc.WriteMessage(buf, %s, %q, %s)\n", addr, tagChar(k), l.expr)
		}
	}
	g.printf("}\n\n")
}

func (g *generator) setter(l *leaf) {
	root := g.root.TypeName
	elem := goType(l.elem())

	switch l.node.Kind {
	case schema.KindArray:
		n := l.node.Len()
		g.printf("// Set%s copies v into %s. v must hold %d values.\n", l.name, l.addr, n)
		g.printf("func (c *%s) Set%s(%sv []%s) error {\n", root, l.name, dimParams(l.dims), elem)
		g.checks(l.dims, "")
		g.printf("if len(v) != %d {\nreturn fmt.Errorf(\"Set%s: got %%d values, want %d: %%w\", len(v), ErrLength)\n}\n", n, l.name, n)
		g.printf("copy(%s[:], v)\nreturn nil\n}\n\n", l.expr)

	case schema.KindMatrix:
		g.printf("// Set%s sets one cell of %s.\n", l.name, l.addr)
		g.printf("func (c *%s) Set%s(%srow, col int, v %s) error {\n", root, l.name, dimParams(l.dims), elem)
		g.checks(l.dims, "")
		g.checks([]dim{{"row", l.node.Rows}, {"col", l.node.Cols}}, "")
		g.printf("%s[row][col] = v\nreturn nil\n}\n\n", l.expr)

	default:
		g.printf("// Set%s sets %s.\n", l.name, l.addr)
		if !l.returnsError() {
			g.printf("func (c *%s) Set%s(v %s) {\n%s = v\n}\n\n", root, l.name, elem, l.expr)
			return
		}
		g.printf("func (c *%s) Set%s(%sv %s) error {\n", root, l.name, dimParams(l.dims), elem)
		g.checks(l.dims, "")
		g.printf("%s = v\nreturn nil\n}\n\n", l.expr)
	}
}

// groups splits leaves into runs that share the same indices, so each run can be
// driven by one loop nest.
func groups(leaves []*leaf) [][]*leaf {
	var out [][]*leaf
	for _, l := range leaves {
		if n := len(out); n > 0 && sameDims(out[n-1][0].dims, l.dims) {
			out[n-1] = append(out[n-1], l)
			continue
		}
		out = append(out, []*leaf{l})
	}
	return out
}

func sameDims(a, b []dim) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (g *generator) loops(dims []dim, body func()) {
	for _, d := range dims {
		g.printf("for %s := range %d {\n", d.param, d.n)
	}
	body()
	for range dims {
		g.printf("}\n")
	}
}

func (g *generator) syncAll() {
	g.printf("// SyncAll encodes every field of c, each index of indexed fields included, and passes\n")
	g.printf("// each message to emit. buf is reused for every message.\n")
	g.printf("func (c *%s) SyncAll(buf []byte, emit func([]byte) error) error {\n", g.root.TypeName)
	g.printf(`flush := func(n int, err error) error {
	if err != nil {
		return err
	}
	return emit(buf[:n])
}

`)
	for _, grp := range groups(g.leaves) {
		g.loops(grp[0].dims, func() {
			for _, l := range grp {
				g.printf("if err := flush(c.Get%s(buf%s)); err != nil {\nreturn err\n}\n", l.name, strings.TrimSuffix(", "+dimArgs(l.dims), ", "))
			}
		})
	}
	g.printf("return nil\n}\n\n")
}

func scalarReader(k schema.Kind) string {
	switch k {
	case schema.KindString:
		return "msg.StringArg(0)"
	case schema.KindBool:
		return "msg.BoolArg(0)"
	case schema.KindInt:
		return "intArg(msg, 0)"
	}
	return "msg.FloatArg(0)"
}

func multiReader(k schema.Kind) string {
	switch k {
	case schema.KindString:
		return "msg.StringArgs()"
	case schema.KindBool:
		return "boolArgs(msg)"
	case schema.KindInt:
		return "intArgs(msg)"
	}
	return "msg.FloatArgs()"
}

func (g *generator) register() {
	g.printf("// Register adds a method for every concrete address of c to d. Each method decodes the\n")
	g.printf("// message arguments and stores them through the matching setter.\n")
	g.printf("func (c *%s) Register(d *osc.Dispatcher) error {\n", g.root.TypeName)
	g.printf("var errs []error\nadd := func(addr string, f osc.MethodFunc) {\nerrs = append(errs, d.AddMethodFunc(addr, f))\n}\n\n")

	for _, grp := range groups(g.leaves) {
		g.loops(grp[0].dims, func() {
			for _, l := range grp {
				g.handler(l)
			}
		})
	}
	g.printf("return errors.Join(errs...)\n}\n\n")
}

func (g *generator) handler(l *leaf) {
	args := ""
	if len(l.dims) > 0 {
		args = dimArgs(l.dims) + ", "
	}
	k := l.elem().Kind

	g.printf("add(%s, func(msg *osc.Message) error {\n", addrExpr(l))
	switch l.node.Kind {
	case schema.KindArray:
		g.printf("v, err := %s\nif err != nil {\nreturn err\n}\n", multiReader(k))
		g.printf("return c.Set%s(%sv)\n", l.name, args)

	case schema.KindMatrix:
		n, cols := l.node.Len(), l.node.Cols
		g.printf("v, err := %s\nif err != nil {\nreturn err\n}\n", multiReader(k))
		g.printf("if len(v) != %d {\nreturn fmt.Errorf(\"%%s: got %%d values, want %d: %%w\", msg.Address, len(v), ErrLength)\n}\n", n, n)
		g.printf("for i, x := range v {\nif err := c.Set%s(%si/%d, i%%%d, x); err != nil {\nreturn err\n}\n}\nreturn nil\n", l.name, args, cols, cols)

	default:
		g.printf("v, err := %s\nif err != nil {\nreturn err\n}\n", scalarReader(k))
		if l.returnsError() {
			g.printf("return c.Set%s(%sv)\n", l.name, args)
		} else {
			g.printf("c.Set%s(v)\nreturn nil\n", l.name)
		}
	}
	g.printf("})\n")
}

func (g *generator) fields() {
	g.printf(`// Field describes one address of the configuration tree.
type Field struct {
	// Address is the address pattern, with one %%d per index.
	Address string
	// TypeTags is the type tag string of the encoded message. Bools are listed as T.
	TypeTags string
	// Dims are the index ranges, outermost first.
	Dims []int
}

`)
	g.printf("// Fields lists every address in the order SyncAll emits them.\nvar Fields = []Field{\n")
	for _, l := range g.leaves {
		g.printf("{Address: %q, TypeTags: %q", l.addr, typeTags(l))
		if len(l.dims) > 0 {
			ns := make([]string, len(l.dims))
			for i, d := range l.dims {
				ns[i] = strconv.Itoa(d.n)
			}
			g.printf(", Dims: []int{%s}", strings.Join(ns, ", "))
		}
		g.printf("},\n")
	}
	g.printf("}\n\n")
}

func (g *generator) helpers() {
	if g.needSliceArgs {
		g.printf(`func sliceArgs[T any](v []T) []interface{} {
	args := make([]interface{}, len(v))
	for i := range v {
		args[i] = v[i]
	}
	return args
}

`)
	}
	if g.needBoolTags {
		g.printf(`func boolTags(v []bool) string {
	tags := ""
	for _, b := range v {
		tags += osc.BoolTypeTag(b)
	}
	return tags
}

`)
	}
	if g.needIntArg {
		g.printf(`func intArg(msg *osc.Message, i int) (int, error) {
	v, err := msg.FloatArg(i)
	return int(math.Round(v)), err
}

`)
	}
	if g.needIntArgs {
		g.printf(`func intArgs(msg *osc.Message) ([]int, error) {
	fs, err := msg.FloatArgs()
	if err != nil {
		return nil, err
	}
	vs := make([]int, len(fs))
	for i, f := range fs {
		vs[i] = int(math.Round(f))
	}
	return vs, nil
}

`)
	}
	if g.needBoolArgs {
		g.printf(`func boolArgs(msg *osc.Message) ([]bool, error) {
	vs := make([]bool, len(msg.Arguments))
	for i := range vs {
		v, err := msg.BoolArg(i)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
`)
	}
}
