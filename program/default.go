package program

import "sync"

// NumRegisters is the size of the default register file. Register 0 always
// reads as zero.
const NumRegisters = 32

func reg(name string) Operand { return Operand{Name: name, Kind: RegisterOperand} }
func imm(name string) Operand { return Operand{Name: name, Kind: ImmediateOperand} }
func lbl(name string) Operand { return Operand{Name: name, Kind: LabelOperand} }

func instADD(s State, a map[string]int64) bool {
	s.SetReg(a["rd"], s.Reg(a["rs"])+s.Reg(a["rt"]))
	return false
}

func instADDI(s State, a map[string]int64) bool {
	s.SetReg(a["rd"], s.Reg(a["rs"])+a["imm"])
	return false
}

func instSUB(s State, a map[string]int64) bool {
	s.SetReg(a["rd"], s.Reg(a["rs"])-s.Reg(a["rt"]))
	return false
}

func instLI(s State, a map[string]int64) bool {
	s.SetReg(a["rd"], a["imm"])
	return false
}

func instMOV(s State, a map[string]int64) bool {
	s.SetReg(a["rd"], s.Reg(a["rs"]))
	return false
}

func instNOP(State, map[string]int64) bool {
	return false
}

func instJ(State, map[string]int64) bool {
	return true
}

func instBEQ(s State, a map[string]int64) bool {
	return s.Reg(a["rs"]) == s.Reg(a["rt"])
}

func instBNE(s State, a map[string]int64) bool {
	return s.Reg(a["rs"]) != s.Reg(a["rt"])
}

func instBLT(s State, a map[string]int64) bool {
	return s.Reg(a["rs"]) < s.Reg(a["rt"])
}

var (
	defaultISA     *ISA
	defaultISAOnce sync.Once
)

// DefaultISA returns the small register-machine ISA used by the reference
// engine.
func DefaultISA() *ISA {
	defaultISAOnce.Do(defaultISAinit)
	return defaultISA
}

func defaultISAinit() {
	defaultISA = NewISA("progen default ISA")

	defaultISA.RegisterNewInst(Descriptor{"add", []Operand{reg("rd"), reg("rs"), reg("rt")}, instADD})
	defaultISA.RegisterNewInst(Descriptor{"addi", []Operand{reg("rd"), reg("rs"), imm("imm")}, instADDI})
	defaultISA.RegisterNewInst(Descriptor{"sub", []Operand{reg("rd"), reg("rs"), reg("rt")}, instSUB})
	defaultISA.RegisterNewInst(Descriptor{"li", []Operand{reg("rd"), imm("imm")}, instLI})
	defaultISA.RegisterNewInst(Descriptor{"mov", []Operand{reg("rd"), reg("rs")}, instMOV})
	defaultISA.RegisterNewInst(Descriptor{"nop", nil, instNOP})
	defaultISA.RegisterNewInst(Descriptor{"j", []Operand{lbl("target")}, instJ})
	defaultISA.RegisterNewInst(Descriptor{"beq", []Operand{reg("rs"), reg("rt"), lbl("target")}, instBEQ})
	defaultISA.RegisterNewInst(Descriptor{"bne", []Operand{reg("rs"), reg("rt"), lbl("target")}, instBNE})
	defaultISA.RegisterNewInst(Descriptor{"blt", []Operand{reg("rs"), reg("rt"), lbl("target")}, instBLT})

	defaultISA.RegisterMode("REG", "i")
	defaultISA.RegisterMode("IMM", "v")
}
