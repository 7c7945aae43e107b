package gen

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
)

// Param is one parameter of a generated method.
type Param struct {
	Type analyze.TypeRef
	Name string
}

// ParamNames derives a name for each parameter type, in order.
//
// The candidate is the type's base name lower-cased if it is all upper
// case ("T" gives "t"), else its first character lower-cased ("int" and
// "Integer" both give "i"). The first parameter using a candidate gets it
// bare; later ones get 1, 2, ... appended, so (int, int, String) gives
// i, i1, s and (int, int, Integer) gives i, i1, i2.
func ParamNames(types []analyze.TypeRef) []string {
	var (
		names = make([]string, len(types))
		taken = make(map[string]bool, len(types))
		next  = make(map[string]int, len(types))
	)

	for i, t := range types {
		base := paramBase(t)

		n := next[base]

		name := base
		if n > 0 {
			name = base + strconv.Itoa(n)
		}

		for taken[name] || common.IsKeyword(name) {
			n++
			name = base + strconv.Itoa(n)
		}

		next[base] = n + 1
		taken[name] = true
		names[i] = name
	}

	return names
}

func paramBase(t analyze.TypeRef) string {
	name := t.BaseName()
	if name == "" || name == "?" {
		return "arg"
	}

	if name == strings.ToUpper(name) {
		return strings.ToLower(name)
	}

	r, _ := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(r))
}

// uniqueName returns base, or base followed by the smallest counter that
// is neither taken nor a keyword.
func uniqueName(base string, taken map[string]bool) string {
	if !taken[base] && !common.IsKeyword(base) {
		return base
	}

	for n := 1; ; n++ {
		if name := base + strconv.Itoa(n); !taken[name] {
			return name
		}
	}
}
