package parser

import "github.com/c23fe/c23/diag"

// scopeKind classifies an active scope (spec §4.C: "scope stack tracks
// whether the current scope is file/block/function-prototype").
type scopeKind int

const (
	scopeFile scopeKind = iota
	scopeBlock
	scopePrototype
	scopeEnum
)

// namespace is one scope's typedef-name, ordinary-declarator-name, and
// enum-constant sets, mirroring original_source/src/context.rs's
// Namespace. ordinary tracks names bound to a variable or function in
// this scope, so a later declaration reusing the name as the other kind
// (a typedef redeclared as a variable, or vice versa) can be caught.
type namespace struct {
	typedefs      map[string]struct{}
	ordinary      map[string]struct{}
	enumConstants map[string]struct{}
}

func newNamespace() *namespace {
	return &namespace{
		typedefs:      make(map[string]struct{}),
		ordinary:      make(map[string]struct{}),
		enumConstants: make(map[string]struct{}),
	}
}

// State is the parser's typedef/enum-constant environment, scope-kind
// stack, recovery-mode flag, and diagnostics sink (spec §4.C). It is
// caller-addressable: NewState's seed parameter lets a caller make
// typedef names from other translation units known before parsing
// begins, and the zero-valued recovery flag starts unset.
type State struct {
	scopes []*namespace
	kinds  []scopeKind

	// recovering is set while a synchronization point is actively
	// skipping tokens, so nested recovery attempts don't stack.
	recovering bool

	// switchDepth counts the number of enclosing switch bodies. It is
	// independent of the scope-kind stack, since a nested block inside a
	// switch body (e.g. `switch (x) { { case 1: ...; } }`) still lies
	// inside the switch.
	switchDepth int

	Sink *diag.Sink
}

// builtinTypedefNames seeds the outermost scope the way
// original_source/src/context.rs's Context::default seeds its builtin
// namespace. _Bool is omitted here since this module's lexer already
// recognizes it as a keyword rather than deferring it to typedef
// resolution.
var builtinTypedefNames = []string{
	"__builtin_va_list",
	"__uint128_t",
	"_Float16",
	"_Float128",
}

// NewState creates a State with the builtin typedef names installed,
// plus any additional names in seed (e.g. typedef names carried over
// from a previously parsed header).
func NewState(seed ...string) *State {
	s := &State{Sink: diag.NewSink()}
	s.pushScope(scopeFile)

	for _, name := range builtinTypedefNames {
		s.AddTypedefName(name)
	}
	for _, name := range seed {
		s.AddTypedefName(name)
	}

	return s
}

func (s *State) pushScope(kind scopeKind) {
	s.scopes = append(s.scopes, newNamespace())
	s.kinds = append(s.kinds, kind)
}

// PushBlock opens a new block scope, e.g. on entering a compound
// statement.
func (s *State) PushBlock() { s.pushScope(scopeBlock) }

// PushPrototype opens a new function-prototype scope, e.g. on entering
// a parameter-type-list.
func (s *State) PushPrototype() { s.pushScope(scopePrototype) }

// PushEnum opens a new scope for an enum specifier's body. Enumerators
// are inserted into the *enclosing* scope (6.2.1p7 says they live in the
// same scope as the enum itself), but a distinct scope kind lets the
// parser reason about "are we inside an enumerator-list" separately from
// "are we inside a block".
func (s *State) PushEnum() { s.pushScope(scopeEnum) }

// Pop closes the innermost scope, discarding any typedef names or enum
// constants declared within it.
func (s *State) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.kinds = s.kinds[:len(s.kinds)-1]
}

// ScopeKind reports the innermost active scope's kind.
func (s *State) ScopeKind() scopeKind {
	return s.kinds[len(s.kinds)-1]
}

// EnterSwitch marks that parsing has entered a switch statement's body,
// so a `case`/`default` label parsed until the matching LeaveSwitch is
// known to lie inside a switch.
func (s *State) EnterSwitch() { s.switchDepth++ }

// LeaveSwitch closes the innermost active switch body.
func (s *State) LeaveSwitch() { s.switchDepth-- }

// InSwitch reports whether parsing is currently inside a switch
// statement's body.
func (s *State) InSwitch() bool { return s.switchDepth > 0 }

// AddTypedefName records name as a typedef name in the innermost scope.
// Called eagerly — before the remaining declarators in the same
// init-declarator-list are parsed — so that a typedef name reused later
// in the same declaration resolves correctly (spec §4.D invariant 1).
func (s *State) AddTypedefName(name string) {
	s.scopes[len(s.scopes)-1].typedefs[name] = struct{}{}
}

// AddOrdinaryName records name as an ordinary declarator (a variable or
// function, as opposed to a typedef name) in the innermost scope.
func (s *State) AddOrdinaryName(name string) {
	s.scopes[len(s.scopes)-1].ordinary[name] = struct{}{}
}

// IsTypedefNameInCurrentScope reports whether name is already bound as a
// typedef name in the innermost scope (as opposed to IsTypedefName,
// which also searches enclosing scopes).
func (s *State) IsTypedefNameInCurrentScope(name string) bool {
	_, ok := s.scopes[len(s.scopes)-1].typedefs[name]
	return ok
}

// IsOrdinaryNameInCurrentScope reports whether name is already bound as
// an ordinary declarator in the innermost scope.
func (s *State) IsOrdinaryNameInCurrentScope(name string) bool {
	_, ok := s.scopes[len(s.scopes)-1].ordinary[name]
	return ok
}

// AddEnumConstant records name as an enumeration constant in the scope
// enclosing the enum specifier (the caller pops the enum's own PushEnum
// scope first, per 6.2.1p7).
func (s *State) AddEnumConstant(name string) {
	s.scopes[len(s.scopes)-1].enumConstants[name] = struct{}{}
}

// IsTypedefName reports whether name resolves to a typedef name in any
// active scope, searching innermost-first.
func (s *State) IsTypedefName(name string) bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if _, ok := s.scopes[i].typedefs[name]; ok {
			return true
		}
	}
	return false
}

// IsEnumConstant reports whether name resolves to an enumeration
// constant in any active scope, searching innermost-first.
func (s *State) IsEnumConstant(name string) bool {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if _, ok := s.scopes[i].enumConstants[name]; ok {
			return true
		}
	}
	return false
}
