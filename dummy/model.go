package dummy

import (
	"fmt"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/program"
)

var _ engine.Resetter = (*Model)(nil)

// Model is a register machine that runs concrete calls of the generator.
type Model struct {
	isa      *program.ISA
	regs     [program.NumRegisters]int64
	transfer *attr.LabelID
}

// NewModel creates a model with all registers cleared.
func NewModel(isa *program.ISA) *Model {
	return &Model{isa: isa}
}

// Reg reads a register. Register 0 reads as zero.
func (m *Model) Reg(i int64) int64 {
	if i == 0 {
		return 0
	}
	return m.regs[i]
}

// SetReg writes a register. Writes to register 0 are dropped.
func (m *Model) SetReg(i int64, v int64) {
	if i == 0 {
		return
	}
	m.regs[i] = v
}

// Registers returns a copy of the register file.
func (m *Model) Registers() []int64 {
	out := make([]int64, len(m.regs))
	copy(out, m.regs[:])
	return out
}

// Reset clears registers and any pending transfer.
func (m *Model) Reset() {
	m.regs = [program.NumRegisters]int64{}
	m.transfer = nil
}

// Execute runs one call.
func (m *Model) Execute(call engine.ConcreteCall) error {
	c, ok := call.(*Concrete)
	if !ok {
		return fmt.Errorf("%T is not a dummy concrete call", call)
	}

	desc, ok := m.isa.Lookup(c.Name())
	if !ok {
		return fmt.Errorf("unknown instruction %s", c.Name())
	}

	for _, o := range desc.Operands {
		if o.Kind != program.RegisterOperand {
			continue
		}
		r := c.values[o.Name]
		if r < 0 || r >= program.NumRegisters {
			return fmt.Errorf("%s: register r%d out of range", c.Name(), r)
		}
	}

	m.transfer = nil
	if !desc.Behavior(m, c.values) {
		return nil
	}

	label, err := c.transferLabel()
	if err != nil {
		return err
	}
	m.transfer = &label

	return nil
}

// ControlTransferLabel returns the label the last call jumped to and clears
// it.
func (m *Model) ControlTransferLabel() (attr.LabelID, bool) {
	if m.transfer == nil {
		return attr.LabelID{}, false
	}
	label := *m.transfer
	m.transfer = nil
	return label, true
}
