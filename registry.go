package cellz

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// TagKey is the struct tag key holding annotation directives.
const TagKey = "cellz"

// Registry maps annotation kind names to kinds so struct tags can name them.
// It is filled when the program is assembled and read afterwards; it is
// safe for concurrent use.
type Registry struct {
	kinds map[string]reflect.Type
	mu    sync.RWMutex
}

// NewRegistry creates a Registry holding kinds. It panics when two kinds
// share a name, which is a programming error.
func NewRegistry(kinds ...Annotation) *Registry {
	r := &Registry{kinds: make(map[string]reflect.Type, len(kinds))}
	if err := r.Register(kinds...); err != nil {
		panic(err)
	}
	return r
}

// Register adds kinds, identified by the name their zero value reports.
func (r *Registry) Register(kinds ...Annotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range kinds {
		name := k.Name()
		if existing, ok := r.kinds[name]; ok {
			return fmt.Errorf("%w: %q is %s", ErrDuplicateKind, name, existing)
		}
		r.kinds[name] = reflect.TypeOf(k)
	}
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.kinds[name]
	return t, ok
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Parse turns the value of a cellz struct tag into annotations, in order.
//
// Directives are separated by ';'. A directive is a kind name, optionally
// followed by its parameters as a YAML flow mapping:
//
//	optional; strReplace{pattern: '^', replacement: ' '}; trim
//
// Unknown parameters are rejected.
func (r *Registry) Parse(tag string) ([]Annotation, error) {
	directives, err := splitDirectives(tag)
	if err != nil {
		return nil, err
	}
	out := make([]Annotation, 0, len(directives))
	for _, d := range directives {
		a, err := r.parseDirective(d)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *Registry) parseDirective(directive string) (Annotation, error) {
	name, args := directive, ""
	if i := strings.IndexByte(directive, '{'); i >= 0 {
		if !strings.HasSuffix(directive, "}") {
			return nil, fmt.Errorf("%w: directive %q: parameters must end with '}'", ErrInvalidTag, directive)
		}
		name, args = strings.TrimSpace(directive[:i]), directive[i:]
	}
	t, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	ptr := t.Kind() == reflect.Pointer
	var target reflect.Value
	if ptr {
		target = reflect.New(t.Elem())
	} else {
		target = reflect.New(t)
	}
	if args != "" {
		dec := yaml.NewDecoder(strings.NewReader(args))
		dec.KnownFields(true)
		if err := dec.Decode(target.Interface()); err != nil {
			return nil, fmt.Errorf("%w: directive %q: %w", ErrInvalidTag, directive, err)
		}
	}
	if !ptr {
		target = target.Elem()
	}
	a, ok := target.Interface().(Annotation)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not implement Annotation", ErrUnknownKind, t)
	}
	return a, nil
}

// splitDirectives splits a tag on ';' outside quotes and brackets.
func splitDirectives(tag string) ([]string, error) {
	var (
		out   []string
		depth int
		quote rune
		start int
	)
	emit := func(end int) {
		if d := strings.TrimSpace(tag[start:end]); d != "" {
			out = append(out, d)
		}
	}
	for i, c := range tag {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '{' || c == '[':
			depth++
		case c == '}' || c == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q at offset %d in %q", ErrInvalidTag, c, i, tag)
			}
		case c == ';' && depth == 0:
			emit(i)
			start = i + 1
		}
	}
	if quote != 0 || depth != 0 {
		return nil, fmt.Errorf("%w: unterminated quote or bracket in %q", ErrInvalidTag, tag)
	}
	emit(len(tag))
	return out, nil
}
