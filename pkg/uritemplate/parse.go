package uritemplate

import "strings"

// operatorChars are the RFC 6570 expression operators, including the ones
// reserved for future extensions. None of them are supported yet; an
// expression starting with one is rejected with ErrUnsupportedOperator.
const operatorChars = "+#./;?&=!@|"

// Parse converts a template source string into a Template.
//
// The source is scanned once, left to right. Text outside braces becomes
// Literal components. Each brace group is split on ',' and every token
// becomes a VarSpec; a trailing '*' marks the variable as exploded.
//
// A '}' outside an expression is kept as literal text. On failure Parse
// returns a *MalformedTemplateError and no template.
//
// Example:
//
//	t, err := uritemplate.Parse("product-query/{id}/culture/{culture}")
func Parse(s string) (*Template, error) {
	var components []Component
	litStart := 0

	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		if i > litStart {
			components = append(components, NewLiteral(s[litStart:i]))
		}

		end := strings.IndexByte(s[i+1:], '}')
		if end < 0 {
			return nil, &MalformedTemplateError{Template: s, Offset: i, Err: ErrUnterminatedExpression}
		}
		exprStart := i + 1
		expr := s[exprStart : exprStart+end]
		if j := strings.IndexByte(expr, '{'); j >= 0 {
			return nil, &MalformedTemplateError{Template: s, Offset: exprStart + j, Err: ErrNestedExpression}
		}

		vars, err := parseExpression(s, expr, exprStart)
		if err != nil {
			return nil, err
		}
		for _, v := range vars {
			components = append(components, v)
		}

		i = exprStart + end
		litStart = i + 1
	}

	if litStart < len(s) {
		components = append(components, NewLiteral(s[litStart:]))
	}

	return &Template{source: s, components: components}, nil
}

// MustParse is like Parse but panics if the template cannot be parsed.
// It simplifies initialization of package-level templates.
func MustParse(s string) *Template {
	t, err := Parse(s)
	if err != nil {
		panic("uritemplate: " + err.Error())
	}
	return t
}

// parseExpression splits the text between braces into variables.
// offset is the byte position of expr within src, used for error reporting.
func parseExpression(src, expr string, offset int) ([]VarSpec, error) {
	if expr == "" {
		return nil, &MalformedTemplateError{Template: src, Offset: offset - 1, Err: ErrEmptyVariable}
	}
	if strings.IndexByte(operatorChars, expr[0]) >= 0 {
		return nil, &MalformedTemplateError{Template: src, Offset: offset, Err: ErrUnsupportedOperator}
	}

	tokens := strings.Split(expr, ",")
	vars := make([]VarSpec, 0, len(tokens))
	pos := offset
	for _, tok := range tokens {
		name, exploded := strings.CutSuffix(tok, "*")
		if strings.IndexByte(name, ':') >= 0 {
			return nil, &MalformedTemplateError{Template: src, Offset: pos, Err: ErrUnsupportedModifier}
		}
		v, err := NewExplodedVarSpec(name, exploded)
		if err != nil {
			return nil, &MalformedTemplateError{Template: src, Offset: pos, Err: ErrEmptyVariable}
		}
		vars = append(vars, v)
		pos += len(tok) + 1
	}
	return vars, nil
}
