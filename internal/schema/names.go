package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nonWord = regexp.MustCompile(`[^A-Za-z0-9]+`)

// GoName turns a document key into an exported Go identifier: "analog_format" becomes
// "AnalogFormat" and "scaleX" becomes "ScaleX". The rest of each word keeps its case.
func GoName(key string) string {
	var sb strings.Builder
	for _, part := range nonWord.Split(key, -1) {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}

	name := sb.String()
	if name == "" {
		return "X"
	}
	if unicode.IsDigit(rune(name[0])) {
		return "F" + name
	}
	return name
}

// ParamName is the name of the index parameter for an array found under key, e.g. "sendIdx".
func ParamName(key string) string {
	name := GoName(key)
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Idx"
}

// assignTypeNames gives every struct node a Go type name. Array items share the name
// of their array. A name that is already taken by a struct at another path falls back
// to the parent type name followed by the field name.
func assignTypeNames(root *Node, opts Options) error {
	used := map[string]string{opts.RootName: "/"}
	root.TypeName = opts.RootName
	return nameFields(root, "", opts, used)
}

func nameFields(s *Node, path string, opts Options, used map[string]string) error {
	for _, f := range s.Fields {
		structs := structsUnder(f)
		if len(structs) == 0 {
			continue
		}

		p := path + "/" + f.Key
		name, renamed := opts.TypeNames[f.Key]
		if !renamed {
			name = GoName(f.Key)
		}
		if owner, taken := used[name]; taken && owner != p {
			if renamed {
				return fmt.Errorf("schema: type name %s for %s is already used by %s", name, p, owner)
			}
			name = s.TypeName + GoName(f.Key)
			if owner, taken := used[name]; taken && owner != p {
				return fmt.Errorf("schema: type name %s for %s is already used by %s", name, p, owner)
			}
		}
		used[name] = p

		for _, st := range structs {
			st.TypeName = name
			if err := nameFields(st, p, opts, used); err != nil {
				return err
			}
		}
	}
	return nil
}

// structsUnder returns n itself when it is a struct, or every struct item of n when it is
// a (possibly nested) array.
func structsUnder(n *Node) []*Node {
	switch n.Kind {
	case KindStruct:
		return []*Node{n}
	case KindArray:
		var out []*Node
		for _, it := range n.Items {
			out = append(out, structsUnder(it)...)
		}
		return out
	}
	return nil
}
