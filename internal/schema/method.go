package schema

import (
	"fmt"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
)

// Method converts the method descriptor into an analyze.MethodInfo. The Abstract flag is
// taken as written; Build decides it from the declaring type's kind.
func (m *MethodSpec) Method() (analyze.MethodInfo, error) {
	if m.Signature != "" {
		return analyze.ParseSignature(m.Signature)
	}

	if !common.IsIdentifier(m.Name) {
		return analyze.MethodInfo{}, fmt.Errorf("invalid method name %q", m.Name)
	}

	info := analyze.MethodInfo{
		Name:     m.Name,
		Return:   analyze.Void,
		Abstract: m.Abstract,
		Default:  m.Default,
		Static:   m.Static,
	}

	for _, p := range m.TypeParams {
		tp, err := analyze.ParseTypeParam(p)
		if err != nil {
			return analyze.MethodInfo{}, fmt.Errorf("type parameter: %w", err)
		}

		info.TypeParams = append(info.TypeParams, tp)
	}

	if m.Returns != "" {
		ret, err := analyze.ParseTypeRef(m.Returns)
		if err != nil {
			return analyze.MethodInfo{}, fmt.Errorf("return type: %w", err)
		}

		info.Return = ret
	}

	var err error

	if info.Params, err = parseRefs(m.Params); err != nil {
		return analyze.MethodInfo{}, fmt.Errorf("parameter: %w", err)
	}

	if info.Throws, err = parseRefs(m.Throws); err != nil {
		return analyze.MethodInfo{}, fmt.Errorf("throws: %w", err)
	}

	return info, nil
}

func parseRefs(ss []string) ([]analyze.TypeRef, error) {
	var out []analyze.TypeRef

	for _, s := range ss {
		t, err := analyze.ParseTypeRef(s)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}
