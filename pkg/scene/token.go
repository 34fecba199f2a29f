package scene

import "fmt"

// TokenKind names what a highlight token refers to
type TokenKind int

const (
	TokenPoint TokenKind = iota
	TokenLine
	TokenAngle
	TokenTriangle
	TokenPolygon
)

func (k TokenKind) String() string {
	switch k {
	case TokenPoint:
		return "point"
	case TokenLine:
		return "line"
	case TokenAngle:
		return "angle"
	case TokenTriangle:
		return "tri"
	case TokenPolygon:
		return "poly"
	default:
		return "unknown"
	}
}

// ParseTokenKind parses the annotation type names point, line, angle, tri and poly
func ParseTokenKind(name string) (TokenKind, error) {
	switch name {
	case "point":
		return TokenPoint, nil
	case "line":
		return TokenLine, nil
	case "angle":
		return TokenAngle, nil
	case "tri", "triangle":
		return TokenTriangle, nil
	case "poly", "polygon":
		return TokenPolygon, nil
	default:
		return 0, fmt.Errorf("unknown token kind %q", name)
	}
}

// Token refers to entities of a scene by their letters, e.g. an angle "ΒΑΓ"
type Token struct {
	Kind   TokenKind
	Target string
}

// ParseToken parses "kind:target", e.g. "poly:ΑΒΖΗ"
func ParseToken(s string) (Token, error) {
	for i, r := range s {
		if r == ':' {
			kind, err := ParseTokenKind(s[:i])
			if err != nil {
				return Token{}, err
			}
			if s[i+1:] == "" {
				return Token{}, fmt.Errorf("token %q has no target", s)
			}
			return Token{Kind: kind, Target: s[i+1:]}, nil
		}
	}
	return Token{}, fmt.Errorf("token %q must have the form kind:target", s)
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Target
}
