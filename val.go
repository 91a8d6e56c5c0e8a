package minic

import "fmt"

// Val is a value produced while generating an expression: a location
// described by a stack-frame offset and a dereference count, together
// with the Type needed to size reads/writes and an lvalue bit. There
// is no register allocator — every intermediate value is spilled to
// the stack immediately after it's computed (PushNew), and reloaded
// through one of two fixed scratch registers (rax/rbx) whenever it's
// needed again.
type Val struct {
	DerefN int
	Base   int64 // offset from rbp; always negative for locals
	Lvalue bool
	Type   Type
}

// ModifiableLvalue reports whether v can legally appear on the left of
// an assignment or be the operand of ++/--.
func (v *Val) ModifiableLvalue() bool {
	return v.Lvalue && !v.Type.IsConst()
}

func movSizeSuffix(size int) (string, error) {
	switch size {
	case 1:
		return "byte", nil
	case 4:
		return "dword", nil
	case 8:
		return "qword", nil
	}
	return "", fmt.Errorf("unsupported operand size %d", size)
}

// regName names the scratch register regi (0 = rax family, 1 = rbx
// family, 2 = rcx family) sized to hold a value of the given width.
func regName(regi, size int) (string, error) {
	names := [][4]string{
		{"al", "", "eax", "rax"},
		{"bl", "", "ebx", "rbx"},
		{"cl", "", "ecx", "rcx"},
	}
	if regi < 0 || regi >= len(names) {
		return "", fmt.Errorf("no scratch register #%d", regi)
	}
	switch size {
	case 1:
		return names[regi][0], nil
	case 4:
		return names[regi][2], nil
	case 8:
		return names[regi][3], nil
	}
	return "", fmt.Errorf("unsupported operand size %d", size)
}

// ValRead loads v into scratch register regi, zero-extending to the
// full 64-bit register first when the value is narrower than a qword.
// deref_n == 0 reads directly off the stack frame; deref_n > 0 chases
// that many pointer hops starting from the stack slot holding the base
// pointer.
func (s *State) ValRead(v *Val, regi int) error {
	size, err := v.Type.Size()
	if err != nil {
		return err
	}
	if size == 0 {
		return fmt.Errorf("can't read void type")
	}
	reg, err := regName(regi, size)
	if err != nil {
		return err
	}
	movs, err := movSizeSuffix(size)
	if err != nil {
		return err
	}

	if size != 8 {
		reg64, _ := regName(regi, 8)
		s.out.writeil(fmt.Sprintf("xor %s, %s", reg64, reg64))
	}

	switch {
	case v.DerefN == 0:
		s.out.writeil(fmt.Sprintf("mov %s, %s [rbp%+d] ; read", reg, movs, v.Base))
	case v.DerefN > 0:
		s.out.writeil(fmt.Sprintf("; read (deref_n=%d) {", v.DerefN))
		s.out.writeil(fmt.Sprintf("mov rcx, qword [rbp%+d]", v.Base))
		for i := 0; i < v.DerefN-1; i++ {
			s.out.writeil("mov rcx, [rcx]")
		}
		s.out.writeil(fmt.Sprintf("mov %s, %s [rcx]", reg, movs))
		s.out.writeil("; }")
	default:
		panic("ValRead: negative deref_n")
	}
	return nil
}

// ValStore writes scratch register regi into v's location, using the
// same deref_n chase as ValRead.
func (s *State) ValStore(v *Val, regi int) error {
	size, err := v.Type.Size()
	if err != nil {
		return err
	}
	if size == 0 {
		return fmt.Errorf("can't store void type")
	}
	reg, err := regName(regi, size)
	if err != nil {
		return err
	}
	movs, err := movSizeSuffix(size)
	if err != nil {
		return err
	}

	switch {
	case v.DerefN == 0:
		s.out.writeil(fmt.Sprintf("mov %s [rbp%+d], %s ; store", movs, v.Base, reg))
	case v.DerefN > 0:
		s.out.writeil(fmt.Sprintf("; store (deref_n=%d) {", v.DerefN))
		s.out.writeil(fmt.Sprintf("mov rcx, qword [rbp%+d]", v.Base))
		for i := 0; i < v.DerefN-1; i++ {
			s.out.writeil("mov rcx, [rcx]")
		}
		s.out.writeil(fmt.Sprintf("mov %s [rcx], %s", movs, reg))
		s.out.writeil("; }")
	default:
		panic("ValStore: negative deref_n")
	}
	return nil
}

// ValPushNew spills scratch register regi onto a freshly bumped stack
// slot of type t and returns the rvalue describing it.
func (s *State) ValPushNew(t Type, regi int) (Val, error) {
	s.sp -= 8
	v := Val{DerefN: 0, Base: int64(s.sp), Lvalue: false, Type: t}
	if err := s.ValStore(&v, regi); err != nil {
		return Val{}, err
	}
	return v, nil
}
