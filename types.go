package minic

import "fmt"

// Type is the four-field type algebra the code generator threads
// through every expression: a declaration-specifier/declarator pair
// plus an "application cursor" into the declarator's operator chain,
// and a bit recording whether an address-of has been applied on top of
// whatever the cursor currently points at. It is a direct port of
// struct type in the reference C implementation.
type Type struct {
	AddressOf bool
	App       int
	Spec      *DeclSpecNode
	Decl      *DeclaratorNode
}

// TypeFromTypeName builds the Type denoted by a standalone type-name,
// as used by sizeof, casts, and compound literals.
func TypeFromTypeName(n *TypeNameNode) Type {
	return Type{
		Spec: n.SpecifierQualifierList,
		Decl: n.Declarator,
	}
}

// IsFullyApplied reports whether every declarator operator has been
// consumed and no address-of remains outstanding — i.e. the type is
// exactly what the declaration-specifiers name.
func (t *Type) IsFullyApplied() bool {
	return !t.AddressOf && t.App == len(t.Decl.Ops)
}

// cursorOp returns the declarator operator the cursor currently sits
// on. Only valid when !IsFullyApplied().
func (t *Type) cursorOp() Node {
	return t.Decl.Ops[t.App]
}

// IsConst reports whether the type in its current state of
// application cannot be stored through.
func (t *Type) IsConst() bool {
	if t.IsFullyApplied() {
		return t.Spec.Qualifiers[QualConst] > 0
	}
	if t.AddressOf {
		// the result of the address-of operator is never modifiable
		return true
	}
	switch op := t.cursorOp().(type) {
	case *FunctionDeclaratorNode, *ArrayDeclaratorNode:
		// arrays and functions can't be modified as a whole
		return true
	case *PointerDeclaratorNode:
		return op.Qualifiers[QualConst] > 0
	default:
		panic(fmt.Sprintf("Type.IsConst: unexpected declarator op %T", op))
	}
}

// IsPointer reports whether the type, as currently applied, denotes a
// pointer — either because an address-of sits on top, or because the
// cursor is parked on a pointer declarator.
func (t *Type) IsPointer() bool {
	if t.IsFullyApplied() {
		return false
	}
	if t.AddressOf {
		return true
	}
	_, ok := t.cursorOp().(*PointerDeclaratorNode)
	return ok
}

// IsArithmetic reports whether the type supports arithmetic: it must
// be fully applied and name an arithmetic builtin base type
// (char/short/int/long/float/double, possibly signed/unsigned).
// void, struct/union, array and pointer types never qualify.
func (t *Type) IsArithmetic() bool {
	if !t.IsFullyApplied() {
		return false
	}
	bt := &t.Spec.BuiltinTypes
	for _, k := range []BuiltinType{BTChar, BTShort, BTInt, BTLong, BTFloat, BTDouble, BTSigned, BTUnsigned} {
		if bt[k] > 0 {
			return true
		}
	}
	return false
}

// ApplyAddressOf takes the address of the current type. Fails if an
// address-of is already outstanding (can't take the address of an
// rvalue produced by &).
func (t *Type) ApplyAddressOf() error {
	if t.AddressOf {
		return fmt.Errorf("can't take address of: %s", t.describe())
	}
	t.AddressOf = true
	return nil
}

// ApplyDeref dereferences the current type once, either by cancelling
// an outstanding address-of or by advancing past a pointer declarator.
func (t *Type) ApplyDeref() error {
	if t.AddressOf {
		t.AddressOf = false
		return nil
	}
	if !t.IsFullyApplied() {
		if _, ok := t.cursorOp().(*PointerDeclaratorNode); ok {
			t.App++
			return nil
		}
	}
	return fmt.Errorf("can't apply dereference operator: %s", t.describe())
}

// ApplyCall advances past a function declarator, as happens when the
// type of a call expression's callee is resolved to its return type.
func (t *Type) ApplyCall() error {
	if t.AddressOf || t.IsFullyApplied() {
		return fmt.Errorf("can't call: %s", t.describe())
	}
	if _, ok := t.cursorOp().(*FunctionDeclaratorNode); ok {
		t.App++
		return nil
	}
	return fmt.Errorf("can't call: %s", t.describe())
}

// ApplySubscript advances past an array declarator, yielding the
// element type. Returns (false, nil) when the type is fully applied
// rather than an error, so callers can distinguish "no more array
// dimensions" from a genuine failure. (Size only calls it with the
// cursor on an array declarator, so it never sees that case.)
func (t *Type) ApplySubscript() (bool, error) {
	if t.AddressOf {
		return false, fmt.Errorf("can't apply array subscripting: %s", t.describe())
	}
	if t.IsFullyApplied() {
		return false, nil
	}
	if _, ok := t.cursorOp().(*ArrayDeclaratorNode); ok {
		t.App++
		return true, nil
	}
	return false, fmt.Errorf("can't apply array subscripting: %s", t.describe())
}

// Size computes the type's size in bytes. A pointer (real or produced
// by address-of) is always 8. A fully-applied builtin type reads off
// char/int/void. An array multiplies its constant dimension by the
// element size; a bare function declarator decays to a function
// pointer's size, per the implicit address-of function designators
// undergo.
func (t *Type) Size() (int, error) {
	if t.AddressOf {
		return 8, nil
	}
	if t.IsFullyApplied() {
		bt := &t.Spec.BuiltinTypes
		switch {
		case bt[BTChar] > 0:
			return 1, nil
		case bt[BTInt] > 0:
			return 4, nil
		case bt[BTVoid] > 0:
			return 0, nil
		}
		return 0, fmt.Errorf("can't determine size of: %s", t.describe())
	}
	switch op := t.cursorOp().(type) {
	case *PointerDeclaratorNode:
		return 8, nil
	case *ArrayDeclaratorNode:
		n, err := constEval(op.Size)
		if err != nil {
			return 0, fmt.Errorf("can't determine size of: %s", t.describe())
		}
		tt := *t
		if _, err := tt.ApplySubscript(); err != nil {
			return 0, fmt.Errorf("can't determine size of: %s", t.describe())
		}
		elemSize, err := tt.Size()
		if err != nil {
			return 0, err
		}
		return int(n) * elemSize, nil
	case *FunctionDeclaratorNode:
		// a function designator automatically decays to its address
		return 8, nil
	default:
		panic(fmt.Sprintf("Type.Size: unexpected declarator op %T", op))
	}
}

func (t *Type) describe() string {
	return fmt.Sprintf("{ addressOf: %v, app: %d, decl: %s }", t.AddressOf, t.App, t.Decl)
}

// constEval evaluates a constant integer expression. Only integer
// literals are supported; anything else is rejected.
func constEval(n Node) (int64, error) {
	if lit, ok := n.(*IntLitNode); ok {
		return lit.Value, nil
	}
	return 0, fmt.Errorf("can't evaluate constant expression: %s", n)
}
