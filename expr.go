package minic

import "fmt"

// sysVCallRegs is the System-V AMD64 integer argument register order.
var sysVCallRegs = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// GenExpr recursively lowers an expression node, returning the Val
// describing where its result ends up. Every branch that isn't part
// of the supported subset returns a diagnostic-bearing error instead
// of guessing at semantics.
func (s *State) GenExpr(n Node) (Val, error) {
	switch t := n.(type) {
	case *IdentNode:
		v, err := s.vars.FindIdent(t.Name)
		if err != nil {
			return Val{}, s.diagf(t.Range(), "%s", err)
		}
		return v, nil

	case *IntLitNode:
		s.out.writeil(fmt.Sprintf("mov rax, %d", t.Value))
		return s.ValPushNew(s.builtin.tInt, 0)

	case *CharLitNode:
		s.out.writeil(fmt.Sprintf("mov rax, %d", t.Value))
		return s.ValPushNew(s.builtin.tInt, 0)

	case *StringLitNode:
		idx := s.internString(t.Value)
		s.out.writeil(fmt.Sprintf("mov rax, s%d", idx))
		return s.ValPushNew(s.builtin.tCharPtr, 0)

	case *UnaryNode:
		return s.genUnary(t)

	case *BinNode:
		return s.genBin(t)

	case *CallNode:
		return s.genCall(t)

	case *SizeofExprNode:
		ty := TypeFromTypeName(t.TypeName)
		size, err := ty.Size()
		if err != nil {
			return Val{}, s.diagf(t.Range(), "can't determine size of: %s", err)
		}
		s.out.writeil(fmt.Sprintf("mov rax, %d", size))
		return s.ValPushNew(s.builtin.tSizeT, 0)

	case *IndexNode, *MemberNode, *MemberPtrNode, *CompoundLiteralNode,
		*ConditionalNode, *CastNode, *AlignofExprNode:
		return Val{}, s.diagf(n.Range(), "unsupported expression form: %s", n)

	default:
		panic(fmt.Sprintf("GenExpr: unhandled node type %T", n))
	}
}

func (s *State) diagf(at Range, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	s.diags.Errorf(at, "%s", err)
	return err
}

const errModifiableLvalue = "operand in this expression shall be a modifiable lvalue"

func (s *State) genUnary(n *UnaryNode) (Val, error) {
	a, err := s.GenExpr(n.A)
	if err != nil {
		return Val{}, err
	}
	switch n.Op {
	case UnaryPreIncr, UnaryPreDecr:
		if !a.ModifiableLvalue() {
			return Val{}, s.diagf(n.Range(), "%s", errModifiableLvalue)
		}
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		if n.Op == UnaryPreIncr {
			s.out.writeil("add rax, 1")
		} else {
			s.out.writeil("sub rax, 1")
		}
		if err := s.ValStore(&a, 0); err != nil {
			return Val{}, err
		}
		return a, nil

	case UnaryPostIncr, UnaryPostDecr:
		if !a.ModifiableLvalue() {
			return Val{}, s.diagf(n.Range(), "%s", errModifiableLvalue)
		}
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		old, err := s.ValPushNew(a.Type, 0)
		if err != nil {
			return Val{}, err
		}
		if n.Op == UnaryPostIncr {
			s.out.writeil("add rax, 1")
		} else {
			s.out.writeil("sub rax, 1")
		}
		if err := s.ValStore(&a, 0); err != nil {
			return Val{}, err
		}
		return old, nil

	case UnaryRef:
		if !a.Lvalue {
			return Val{}, s.diagf(n.Range(), "can't take address of non-lvalue")
		}
		if err := a.Type.ApplyAddressOf(); err != nil {
			return Val{}, s.diagf(n.Range(), "%s", err)
		}
		s.out.writeil("mov rax, rbp")
		s.out.writeil(fmt.Sprintf("sub rax, %d", -a.Base))
		return s.ValPushNew(a.Type, 0)

	case UnaryDeref:
		if err := a.Type.ApplyDeref(); err != nil {
			return Val{}, s.diagf(n.Range(), "%s", err)
		}
		a.Lvalue = true
		a.DerefN++
		return a, nil

	case UnaryNotB:
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		s.out.writeil("not rax")
		return s.ValPushNew(a.Type, 0)

	case UnaryPlus, UnaryMinus, UnaryNot:
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		switch n.Op {
		case UnaryMinus:
			s.out.writeil("neg rax")
		case UnaryNot:
			s.out.writeil("cmp rax, 0")
			s.out.writeil("sete al")
			s.out.writeil("movzx rax, al")
			return s.ValPushNew(s.builtin.tInt, 0)
		}
		return s.ValPushNew(a.Type, 0)

	case UnarySizeof:
		return Val{}, s.diagf(n.Range(), "unsupported unary operator %s", n.Op)

	default:
		panic(fmt.Sprintf("genUnary: unhandled op %v", n.Op))
	}
}

func (s *State) genBin(n *BinNode) (Val, error) {
	a, err := s.GenExpr(n.A)
	if err != nil {
		return Val{}, err
	}
	b, err := s.GenExpr(n.B)
	if err != nil {
		return Val{}, err
	}

	switch n.Op {
	case BinMul:
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		if err := s.ValRead(&b, 1); err != nil {
			return Val{}, err
		}
		s.out.writeil("imul eax, ebx")
		return s.ValPushNew(a.Type, 0)

	case BinAdd:
		return s.genAddSub(n, &a, &b, "add", true)
	case BinSub:
		return s.genAddSub(n, &a, &b, "sub", false)

	case BinLt, BinEq:
		if err := s.ValRead(&a, 0); err != nil {
			return Val{}, err
		}
		if err := s.ValRead(&b, 1); err != nil {
			return Val{}, err
		}
		s.out.writeil("cmp rax, rbx")
		if n.Op == BinLt {
			s.out.writeil("setl al")
		} else {
			s.out.writeil("sete al")
		}
		s.out.writeil("movzx rax, al")
		return s.ValPushNew(s.builtin.tInt, 0)

	case BinAssign:
		if !a.ModifiableLvalue() {
			return Val{}, s.diagf(n.Range(), "%s", errModifiableLvalue)
		}
		if err := s.ValRead(&b, 0); err != nil {
			return Val{}, err
		}
		if err := s.ValStore(&a, 0); err != nil {
			return Val{}, err
		}
		return a, nil

	default:
		return Val{}, s.diagf(n.Range(), "unsupported binary operator %s", n.Op)
	}
}

// genAddSub implements the pointer-arithmetic compatibility matrix
// shared by `+` and `-`: arith+arith, ptr+arith, arith+ptr (add only),
// and ptr-ptr (sub only). Pointer arithmetic is raw byte-offset, with
// no element-size scaling.
func (s *State) genAddSub(n *BinNode, a, b *Val, instr string, isAdd bool) (Val, error) {
	if err := s.ValRead(a, 0); err != nil {
		return Val{}, err
	}
	if err := s.ValRead(b, 1); err != nil {
		return Val{}, err
	}
	s.out.writeil(fmt.Sprintf("%s rax, rbx", instr))

	aArith, bArith := a.Type.IsArithmetic(), b.Type.IsArithmetic()
	aPtr, bPtr := a.Type.IsPointer(), b.Type.IsPointer()

	switch {
	case aArith && bArith:
		return s.ValPushNew(a.Type, 0)
	case aPtr && bArith:
		return s.ValPushNew(a.Type, 0)
	case isAdd && aArith && bPtr:
		return s.ValPushNew(b.Type, 0)
	case !isAdd && aPtr && bPtr:
		return s.ValPushNew(a.Type, 0)
	}
	verb := "add"
	if !isAdd {
		verb = "subtract"
	}
	return Val{}, s.diagf(n.Range(), "can't %s operands", verb)
}

func (s *State) genCall(n *CallNode) (Val, error) {
	funcVal, err := s.GenExpr(n.Callee)
	if err != nil {
		return Val{}, err
	}
	if err := funcVal.Type.ApplyCall(); err != nil {
		return Val{}, s.diagf(n.Range(), "can't call: %s", err)
	}
	resSize, err := funcVal.Type.Size()
	if err != nil {
		return Val{}, s.diagf(n.Range(), "can't determine size of call result: %s", err)
	}

	funcIdent := "<nope>"
	if id, ok := n.Callee.(*IdentNode); ok {
		funcIdent = id.Name
	} else {
		return Val{}, s.diagf(n.Range(), "indirect calls are unsupported")
	}

	if len(n.Args) > len(sysVCallRegs) {
		return Val{}, s.diagf(n.Range(), "too many arguments to `%s` (max %d)", funcIdent, len(sysVCallRegs))
	}

	argVals := make([]Val, 0, len(n.Args))
	for _, arg := range n.Args {
		v, err := s.GenExpr(arg)
		if err != nil {
			return Val{}, err
		}
		argVals = append(argVals, v)
	}
	for i, v := range argVals {
		if err := s.ValRead(&v, 0); err != nil {
			return Val{}, err
		}
		s.out.writeil(fmt.Sprintf("mov %s, rax", sysVCallRegs[i]))
	}

	s.out.writeil(fmt.Sprintf("sub rsp, %d", (-s.sp)+(16+s.sp%16)))
	s.out.writeil(fmt.Sprintf("call %s", funcIdent))

	if resSize > 0 {
		return s.ValPushNew(funcVal.Type, 0)
	}
	return Val{Base: 1, Type: funcVal.Type}, nil
}
