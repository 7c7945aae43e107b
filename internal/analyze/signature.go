package analyze

import (
	"strings"

	"unchecker-generator/internal/common"
)

// ParseSignature parses a method declaration in Java syntax, without a body:
//
//	[public] [abstract|default|static] [<V>] Ret name(T a, U b) [throws X, Y] [;]
//
// Parameter names are optional and ignored.
func ParseSignature(s string) (MethodInfo, error) {
	sc := &scanner{src: s}

	var m MethodInfo

	for {
		switch {
		case sc.acceptWord("public"):
			continue
		case sc.acceptWord("abstract"):
			m.Abstract = true
			continue
		case sc.acceptWord("default"):
			m.Default = true
			continue
		case sc.acceptWord("static"):
			m.Static = true
			continue
		}

		break
	}

	if sc.accept('<') {
		for {
			p, err := sc.parseTypeParam()
			if err != nil {
				return MethodInfo{}, err
			}

			m.TypeParams = append(m.TypeParams, p)

			if sc.accept(',') {
				continue
			}

			if sc.accept('>') {
				break
			}

			return MethodInfo{}, sc.errorf("expected ',' or '>' in method type parameters")
		}
	}

	ret, err := sc.parseType()
	if err != nil {
		return MethodInfo{}, err
	}

	m.Return = ret

	m.Name = sc.ident()
	if !common.IsIdentifier(m.Name) {
		return MethodInfo{}, sc.errorf("expected a method name")
	}

	if !sc.accept('(') {
		return MethodInfo{}, sc.errorf("expected '('")
	}

	if !sc.accept(')') {
		for {
			sc.acceptWord("final")

			p, err := sc.parseType()
			if err != nil {
				return MethodInfo{}, err
			}

			m.Params = append(m.Params, p)

			// Optional parameter name.
			if name := sc.ident(); name != "" && !common.IsIdentifier(name) {
				return MethodInfo{}, sc.errorf("invalid parameter name %q", name)
			}

			if sc.accept(',') {
				continue
			}

			if sc.accept(')') {
				break
			}

			return MethodInfo{}, sc.errorf("expected ',' or ')' in parameter list")
		}
	}

	if sc.acceptWord("throws") {
		for {
			t, err := sc.parseType()
			if err != nil {
				return MethodInfo{}, err
			}

			m.Throws = append(m.Throws, t)

			if !sc.accept(',') {
				break
			}
		}
	}

	sc.accept(';')
	sc.skipSpace()

	if !sc.eof() {
		return MethodInfo{}, sc.errorf("unexpected %q after signature", sc.rest())
	}

	return m, nil
}

// String renders the method in signature syntax, the inverse of
// ParseSignature up to parameter names and whitespace.
func (m MethodInfo) String() string {
	var b strings.Builder

	switch {
	case m.Static:
		b.WriteString("static ")
	case m.Default:
		b.WriteString("default ")
	}

	if len(m.TypeParams) > 0 {
		b.WriteString(DeclareTypeParams(m.TypeParams))
		b.WriteByte(' ')
	}

	b.WriteString(m.Return.String())
	b.WriteByte(' ')
	b.WriteString(m.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(common.Map(m.Params, TypeRef.String), ", "))
	b.WriteByte(')')

	if len(m.Throws) > 0 {
		b.WriteString(" throws ")
		b.WriteString(strings.Join(common.Map(m.Throws, TypeRef.String), ", "))
	}

	return b.String()
}
