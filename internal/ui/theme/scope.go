package theme

// Scope is one level of theme nesting. A scope resolves its tokens eagerly
// when it is created, so Resolve is a plain read.
//
// Overrides compose: a partial override supplied to Provide is merged over
// the enclosing scope's resolved tokens, not over the bare default. The
// innermost scope wins.
type Scope struct {
	parent *Scope
	tokens Tokens
}

// NewScope returns a root scope providing base. A zero base resolves to the
// default theme.
func NewScope(base Tokens) *Scope {
	return &Scope{tokens: base.OrDefault()}
}

// Provide returns a child scope whose tokens are this scope's tokens with
// the roles named in o replaced.
func (s *Scope) Provide(o Override) *Scope {
	return &Scope{parent: s, tokens: s.Resolve().With(o)}
}

// ProvideTheme returns a child scope that replaces the tokens wholesale.
func (s *Scope) ProvideTheme(tokens Tokens) *Scope {
	return &Scope{parent: s, tokens: tokens.OrDefault()}
}

// Resolve returns the tokens of the nearest scope. A nil scope resolves to
// the default theme.
func (s *Scope) Resolve() Tokens {
	if s == nil {
		return Default()
	}
	return s.tokens
}

// Parent returns the enclosing scope, or nil for a root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Depth returns the number of enclosing scopes.
func (s *Scope) Depth() int {
	depth := 0
	for p := s.Parent(); p != nil; p = p.parent {
		depth++
	}
	return depth
}
