package analyze

import (
	"fmt"
	"strings"

	"unchecker-generator/internal/common"
)

// WildcardKind distinguishes plain types from the wildcard forms allowed in
// type arguments.
type WildcardKind int

const (
	NotWildcard       WildcardKind = iota
	WildcardUnbounded              // ?
	WildcardExtends                // ? extends B
	WildcardSuper                  // ? super B
)

// TypeRef is a Java type expression as written in a signature.
type TypeRef struct {
	// Name is a primitive ("int"), a type variable ("T"), or a simple or
	// qualified class name. Empty for wildcards.
	Name string
	// Args are the type arguments, in order.
	Args []TypeRef
	// Dims is the number of array dimensions, including a trailing vararg.
	Dims int
	// Varargs renders the last dimension as "...".
	Varargs bool
	// Wildcard marks ?, ? extends B and ? super B; Bound holds B.
	Wildcard WildcardKind
	Bound    *TypeRef
}

// Void is the return type of methods that produce no value.
var Void = TypeRef{Name: "void"}

var primitives = map[string]struct{}{
	"boolean": {}, "byte": {}, "char": {}, "short": {},
	"int": {}, "long": {}, "float": {}, "double": {},
}

// IsVoid reports whether t is the void pseudo-type.
func (t TypeRef) IsVoid() bool {
	return t.Name == "void" && t.Dims == 0 && t.Wildcard == NotWildcard
}

// IsPrimitive reports whether t is a primitive, non-array type.
func (t TypeRef) IsPrimitive() bool {
	_, ok := primitives[t.Name]
	return ok && t.Dims == 0
}

// String renders the type the way it would appear in Java source.
func (t TypeRef) String() string {
	var b strings.Builder
	t.write(&b)

	return b.String()
}

func (t TypeRef) write(b *strings.Builder) {
	switch t.Wildcard {
	case WildcardUnbounded:
		b.WriteString("?")
		return
	case WildcardExtends, WildcardSuper:
		if t.Wildcard == WildcardExtends {
			b.WriteString("? extends ")
		} else {
			b.WriteString("? super ")
		}

		if t.Bound != nil {
			t.Bound.write(b)
		}

		return
	}

	b.WriteString(t.Name)

	if len(t.Args) > 0 {
		b.WriteByte('<')

		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			a.write(b)
		}

		b.WriteByte('>')
	}

	for i := range t.Dims {
		if t.Varargs && i == t.Dims-1 {
			b.WriteString("...")
		} else {
			b.WriteString("[]")
		}
	}
}

// BaseName is the unqualified name without type arguments or array
// brackets: "List" for java.util.List<T>[].
func (t TypeRef) BaseName() string {
	if t.Wildcard != NotWildcard {
		if t.Bound != nil {
			return t.Bound.BaseName()
		}

		return "?"
	}

	return common.SimpleName(t.Name)
}

// Equal reports whether two type expressions render identically.
func (t TypeRef) Equal(o TypeRef) bool {
	return t.String() == o.String()
}

// Bindings maps type variable names to the types they stand for.
type Bindings map[string]TypeRef

// Substitute replaces type variables bound in b, recursively.
func (t TypeRef) Substitute(b Bindings) TypeRef {
	if len(b) == 0 {
		return t
	}

	if t.Wildcard != NotWildcard {
		if t.Bound != nil {
			bound := t.Bound.Substitute(b)
			t.Bound = &bound
		}

		return t
	}

	if len(t.Args) == 0 {
		if r, ok := b[t.Name]; ok {
			r.Dims += t.Dims
			r.Varargs = t.Varargs

			return r
		}

		return t
	}

	args := make([]TypeRef, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Substitute(b)
	}

	t.Args = args

	return t
}

// MustParseTypeRef is ParseTypeRef for literals known to be valid.
func MustParseTypeRef(s string) TypeRef {
	t, err := ParseTypeRef(s)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTypeRef parses a single Java type expression.
func ParseTypeRef(s string) (TypeRef, error) {
	sc := &scanner{src: s}

	t, err := sc.parseType()
	if err != nil {
		return TypeRef{}, err
	}

	sc.skipSpace()

	if !sc.eof() {
		return TypeRef{}, sc.errorf("unexpected %q after type", sc.rest())
	}

	return t, nil
}

// scanner is a small hand-written lexer over Java type and signature syntax.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t' || s.src[s.pos] == '\n' || s.src[s.pos] == '\r') {
		s.pos++
	}
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%q at offset %d: %s", s.src, s.pos, fmt.Sprintf(format, args...))
}

// accept consumes c if it is next.
func (s *scanner) accept(c byte) bool {
	s.skipSpace()

	if s.peek() == c {
		s.pos++
		return true
	}

	return false
}

// acceptWord consumes w if it is the next whole word.
func (s *scanner) acceptWord(w string) bool {
	s.skipSpace()

	if !strings.HasPrefix(s.rest(), w) {
		return false
	}

	end := s.pos + len(w)
	if end < len(s.src) && isIdentByte(s.src[end]) {
		return false
	}

	s.pos = end

	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// ident reads one identifier, or returns "".
func (s *scanner) ident() string {
	s.skipSpace()

	start := s.pos
	for !s.eof() && isIdentByte(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// qualifiedIdent reads identifiers joined by single dots. A "..." vararg
// marker is left in place.
func (s *scanner) qualifiedIdent() string {
	first := s.ident()
	if first == "" {
		return ""
	}

	start := s.pos - len(first)

	for s.peek() == '.' && s.pos+1 < len(s.src) && isIdentByte(s.src[s.pos+1]) {
		s.pos++
		if s.ident() == "" {
			break
		}
	}

	return s.src[start:s.pos]
}

func (s *scanner) parseType() (TypeRef, error) {
	s.skipSpace()

	if s.accept('?') {
		switch {
		case s.acceptWord("extends"):
			b, err := s.parseType()
			if err != nil {
				return TypeRef{}, err
			}

			return TypeRef{Wildcard: WildcardExtends, Bound: &b}, nil
		case s.acceptWord("super"):
			b, err := s.parseType()
			if err != nil {
				return TypeRef{}, err
			}

			return TypeRef{Wildcard: WildcardSuper, Bound: &b}, nil
		default:
			return TypeRef{Wildcard: WildcardUnbounded}, nil
		}
	}

	name := s.qualifiedIdent()
	if name == "" || ('0' <= name[0] && name[0] <= '9') {
		return TypeRef{}, s.errorf("expected a type")
	}

	t := TypeRef{Name: name}

	if s.accept('<') {
		for {
			arg, err := s.parseType()
			if err != nil {
				return TypeRef{}, err
			}

			t.Args = append(t.Args, arg)

			if s.accept(',') {
				continue
			}

			if s.accept('>') {
				break
			}

			return TypeRef{}, s.errorf("expected ',' or '>' in type arguments")
		}
	}

	for {
		s.skipSpace()

		if strings.HasPrefix(s.rest(), "...") {
			s.pos += 3
			t.Dims++
			t.Varargs = true

			break
		}

		if !s.accept('[') {
			break
		}

		if !s.accept(']') {
			return TypeRef{}, s.errorf("expected ']'")
		}

		t.Dims++
	}

	return t, nil
}

// TypeParam is a declared type variable with optional upper bounds.
type TypeParam struct {
	Name   string
	Bounds []TypeRef
}

// String renders the declaration form: "T" or "T extends A & B".
func (p TypeParam) String() string {
	if len(p.Bounds) == 0 {
		return p.Name
	}

	bounds := common.Map(p.Bounds, TypeRef.String)

	return p.Name + " extends " + strings.Join(bounds, " & ")
}

// ParseTypeParam parses "T" or "T extends A & B".
func ParseTypeParam(s string) (TypeParam, error) {
	sc := &scanner{src: s}

	p, err := sc.parseTypeParam()
	if err != nil {
		return TypeParam{}, err
	}

	sc.skipSpace()

	if !sc.eof() {
		return TypeParam{}, sc.errorf("unexpected %q after type parameter", sc.rest())
	}

	return p, nil
}

func (s *scanner) parseTypeParam() (TypeParam, error) {
	name := s.ident()
	if !common.IsIdentifier(name) {
		return TypeParam{}, s.errorf("expected a type parameter name")
	}

	p := TypeParam{Name: name}

	if s.acceptWord("extends") {
		for {
			b, err := s.parseType()
			if err != nil {
				return TypeParam{}, err
			}

			p.Bounds = append(p.Bounds, b)

			if !s.accept('&') {
				break
			}
		}
	}

	return p, nil
}

// DeclareTypeParams renders a declaration list such as "<T, R extends Number>",
// or "" when there are none.
func DeclareTypeParams(ps []TypeParam) string {
	if len(ps) == 0 {
		return ""
	}

	return "<" + strings.Join(common.Map(ps, TypeParam.String), ", ") + ">"
}

// UseTypeParams renders the names only, as type arguments: "<T, R>".
func UseTypeParams(ps []TypeParam) string {
	if len(ps) == 0 {
		return ""
	}

	names := common.Map(ps, func(p TypeParam) string { return p.Name })

	return "<" + strings.Join(names, ", ") + ">"
}
