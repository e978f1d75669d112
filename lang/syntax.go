package lang

import "fmt"

// PortDecl is one declared in_ports or out_ports entry: a name and its
// (currently always "bit") type name, still unresolved at this stage.
type PortDecl struct {
	Name string
	Type string
}

// RawValue is the right-hand side of a behaviour statement: either a call
// (RawOperation) or a parenthesized alias list (RawVariables).
type RawValue interface {
	rawValue()
}

// RawOperation is `name(arg, ...)`: a call to a builtin operation or
// another entity.
type RawOperation struct {
	Name string
	Args []string
}

// RawVariables is `(name, ...)`: an alias of existing variables/ports with
// no operation applied.
type RawVariables struct {
	Names []string
}

func (RawOperation) rawValue() {}
func (RawVariables) rawValue() {}

// RawStatement is one behaviour statement: `(targets...) = value;` (a
// variable assignment, PortAssign false) or `(targets...) <= value;` (a
// port assignment, PortAssign true).
type RawStatement struct {
	Targets    []string
	PortAssign bool
	Value      RawValue
}

// RawEntity is one parsed `entity NAME { ... }` block, its ports and
// behaviour not yet resolved against any symbol table.
type RawEntity struct {
	Name      string
	InPorts   []PortDecl
	OutPorts  []PortDecl
	Behaviour []RawStatement
}

// cursor walks a token slice with lookahead, grounded on the original
// parser's iterator-of-tokens style but made concrete so Go's lack of
// generic by-value iterators doesn't get in the way.
type cursor struct {
	tokens []Token
	pos    int
}

func (c *cursor) done() bool { return c.pos >= len(c.tokens) }

func (c *cursor) next() (Token, error) {
	if c.done() {
		return Token{}, ErrUnexpectedEOF
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, nil
}

func (c *cursor) expect(kind Kind) (Token, error) {
	t, err := c.next()
	if err != nil {
		return Token{}, err
	}
	if t.Kind != kind {
		return Token{}, fmt.Errorf("%w: expected %s, got %s at line %d", ErrUnexpectedToken, kind, t.Kind, t.Line)
	}
	return t, nil
}

// Parse turns a flat token stream into a sequence of raw entity
// declarations (SPEC_FULL.md §4.10, grounded on frontend/syntax.rs's
// parse/parse_entity).
func Parse(tokens []Token) ([]RawEntity, error) {
	c := &cursor{tokens: tokens}

	var entities []RawEntity
	for !c.done() {
		tok, err := c.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != KindEntity {
			return nil, fmt.Errorf("%w: expected entity, got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
		}

		entity, err := parseEntity(c)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func parseEntity(c *cursor) (RawEntity, error) {
	nameTok, err := c.expect(KindLiteral)
	if err != nil {
		return RawEntity{}, err
	}
	if _, err := c.expect(KindOpenCurly); err != nil {
		return RawEntity{}, err
	}

	entity := RawEntity{Name: nameTok.Text}

	for {
		tok, err := c.next()
		if err != nil {
			return RawEntity{}, err
		}
		switch tok.Kind {
		case KindCloseCurly:
			return entity, nil
		case KindInPorts:
			ports, err := parsePortBlock(c)
			if err != nil {
				return RawEntity{}, err
			}
			entity.InPorts = ports
		case KindOutPorts:
			ports, err := parsePortBlock(c)
			if err != nil {
				return RawEntity{}, err
			}
			entity.OutPorts = ports
		case KindBehaviour:
			stmts, err := parseBehaviourBlock(c)
			if err != nil {
				return RawEntity{}, err
			}
			entity.Behaviour = stmts
		default:
			return RawEntity{}, fmt.Errorf("%w: expected in_ports/out_ports/behaviour/}, got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
		}
	}
}

// parsePortBlock parses `{ name: type; ... }`, consuming the opening brace
// itself.
func parsePortBlock(c *cursor) ([]PortDecl, error) {
	if _, err := c.expect(KindOpenCurly); err != nil {
		return nil, err
	}

	var ports []PortDecl
	for {
		tok, err := c.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindCloseCurly {
			return ports, nil
		}
		if tok.Kind != KindLiteral {
			return nil, fmt.Errorf("%w: expected port name or }, got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
		}
		if _, err := c.expect(KindColon); err != nil {
			return nil, err
		}
		tyTok, err := c.expect(KindLiteral)
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(KindSemicolon); err != nil {
			return nil, err
		}
		ports = append(ports, PortDecl{Name: tok.Text, Type: tyTok.Text})
	}
}

// parseArgs parses a comma-separated `name, name, ...)` list, with the
// opening paren already consumed by the caller.
func parseArgs(c *cursor) ([]string, error) {
	var args []string
	for {
		tok, err := c.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindCloseParen {
			return args, nil
		}
		if tok.Kind != KindLiteral {
			return nil, fmt.Errorf("%w: expected argument or ), got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
		}
		args = append(args, tok.Text)

		sep, err := c.next()
		if err != nil {
			return nil, err
		}
		switch sep.Kind {
		case KindComma:
		case KindCloseParen:
			return args, nil
		default:
			return nil, fmt.Errorf("%w: expected , or ), got %s at line %d", ErrUnexpectedToken, sep.Kind, sep.Line)
		}
	}
}

func parseValue(c *cursor) (RawValue, error) {
	tok, err := c.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case KindLiteral:
		if _, err := c.expect(KindOpenParen); err != nil {
			return nil, err
		}
		args, err := parseArgs(c)
		if err != nil {
			return nil, err
		}
		return RawOperation{Name: tok.Text, Args: args}, nil
	case KindOpenParen:
		args, err := parseArgs(c)
		if err != nil {
			return nil, err
		}
		return RawVariables{Names: args}, nil
	default:
		return nil, fmt.Errorf("%w: expected a value, got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
	}
}

func parseBehaviourBlock(c *cursor) ([]RawStatement, error) {
	if _, err := c.expect(KindOpenCurly); err != nil {
		return nil, err
	}

	var stmts []RawStatement
	for {
		tok, err := c.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindCloseCurly {
			return stmts, nil
		}
		if tok.Kind != KindOpenParen {
			return nil, fmt.Errorf("%w: expected ( or }, got %s at line %d", ErrUnexpectedToken, tok.Kind, tok.Line)
		}

		targets, err := parseArgs(c)
		if err != nil {
			return nil, err
		}

		assignTok, err := c.next()
		if err != nil {
			return nil, err
		}

		var portAssign bool
		switch assignTok.Kind {
		case KindAssign:
			portAssign = false
		case KindPortAssign:
			portAssign = true
		default:
			return nil, fmt.Errorf("%w: expected = or <=, got %s at line %d", ErrUnexpectedToken, assignTok.Kind, assignTok.Line)
		}

		value, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(KindSemicolon); err != nil {
			return nil, err
		}

		stmts = append(stmts, RawStatement{Targets: targets, PortAssign: portAssign, Value: value})
	}
}
