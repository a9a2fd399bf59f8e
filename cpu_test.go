// Copyright © 2024 creed petitt
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package r6502

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// registers is a plain snapshot of the architectural register file,
// handy for before/after comparisons
type registers struct {
	A    uint8
	X    uint8
	Y    uint8
	SP   uint8
	PC   uint16
	FLAG uint8
}

func snapshot(cpu *CPU) registers {
	return registers{cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC, cpu.FLAG}
}

func TestReset(t *testing.T) {
	cpu := New()
	cpu.write(VectorReset, 0x34)
	cpu.write(VectorReset+1, 0x12)

	cpu.A = 0xFF
	cpu.X = 0xFF
	cpu.Y = 0xFF
	cpu.SP = 0x00
	cpu.FLAG = 0xFF

	cpu.Reset()

	want := registers{A: 0, X: 0, Y: 0, SP: 0xFD, PC: 0x1234, FLAG: 0x24}
	if diff := deep.Equal(snapshot(cpu), want); diff != nil {
		t.Errorf("Reset register state: %v", diff)
	}
}

func TestLoad(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{0xA9, 0x42})

	if got := cpu.read(LoadAddress); got != 0xA9 {
		t.Errorf("mem[0x8000] = %02X, want A9", got)
	}
	if got := cpu.read(LoadAddress + 1); got != 0x42 {
		t.Errorf("mem[0x8001] = %02X, want 42", got)
	}
	if got := cpu.read16(VectorReset); got != LoadAddress {
		t.Errorf("reset vector = %04X, want %04X", got, LoadAddress)
	}
}

func TestStackPushPop(t *testing.T) {
	// push-then-pop is the identity for any byte and any starting SP,
	// including the wrap at the bottom of page 1
	for _, sp := range []uint8{0xFD, 0x80, 0x01, 0x00} {
		for _, v := range []uint8{0x00, 0x01, 0x7F, 0x80, 0xFF} {
			cpu := New()
			cpu.SP = sp
			cpu.push(v)
			if got, want := cpu.SP, sp-1; got != want {
				t.Fatalf("SP after push = %02X, want %02X", got, want)
			}
			if got := cpu.pop(); got != v {
				t.Fatalf("pop after push(%02X) with SP=%02X = %02X", v, sp, got)
			}
			if cpu.SP != sp {
				t.Fatalf("SP after push/pop = %02X, want %02X", cpu.SP, sp)
			}
		}
	}
}

func TestStackLocation(t *testing.T) {
	cpu := New()
	cpu.SP = 0xFD
	cpu.push(0xAB)
	if got := cpu.read(0x01FD); got != 0xAB {
		t.Errorf("mem[0x01FD] = %02X, want AB", got)
	}
}

// opcodes whose PC effect is not 1 + operand length
var flowOpcodes = map[uint8]bool{
	0x00: true, // BRK
	0x20: true, // JSR
	0x40: true, // RTI
	0x4C: true, // JMP abs
	0x60: true, // RTS
	0x6C: true, // JMP ind
}

// flag presets that keep each conditional branch untaken
var untakenBranchFlags = map[uint8]uint8{
	0x10: FlagNegative, // BPL
	0x30: 0,            // BMI
	0x50: FlagOverflow, // BVC
	0x70: 0,            // BVS
	0x90: FlagCarry,    // BCC
	0xB0: 0,            // BCS
	0xD0: FlagZero,     // BNE
	0xF0: 0,            // BEQ
}

func TestStepAdvancesPC(t *testing.T) {
	// every opcode moves PC by exactly 1 + operand length, control
	// flow and taken branches aside
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		if flowOpcodes[opcode] {
			continue
		}

		cpu := New()
		cpu.PC = 0x8000
		cpu.FLAG = FlagUnused | untakenBranchFlags[opcode]
		cpu.write(0x8000, opcode)

		cpu.Step()

		want := uint16(0x8001) + uint16(operandLength(cpu.lookup[opcode].addrMode))
		if cpu.PC != want {
			t.Errorf("opcode %02X: PC = %04X, want %04X\nstate: %s", opcode, cpu.PC, want, spew.Sdump(snapshot(cpu)))
		}
	}
}

func TestUnknownOpcodeIsNop(t *testing.T) {
	cpu := New()
	cpu.PC = 0x8000
	cpu.FLAG = FlagUnused
	cpu.write(0x8000, 0x02) // no documented instruction
	before := snapshot(cpu)

	cpu.Step()

	if got, want := cpu.Cycles(), uint64(2); got != want {
		t.Errorf("cycles = %d, want %d", got, want)
	}
	before.PC++
	if diff := deep.Equal(snapshot(cpu), before); diff != nil {
		t.Errorf("unknown opcode changed state: %v", diff)
	}
}

func TestStepChargesBaseCycles(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		cycles  uint64
	}{
		{"NOP", []uint8{0xEA}, 2},
		{"LDA imm", []uint8{0xA9, 0x01}, 2},
		{"LDA zp", []uint8{0xA5, 0x10}, 3},
		{"LDA abs", []uint8{0xAD, 0x00, 0x02}, 4},
		{"INC zpx", []uint8{0xF6, 0x10}, 6},
		{"BRK", []uint8{0x00}, 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cpu := New()
			cpu.Load(test.program)
			cpu.Reset()
			cpu.Step()
			if got := cpu.Cycles(); got != test.cycles {
				t.Errorf("cycles = %d, want %d", got, test.cycles)
			}
		})
	}
}

func TestJSRThenRTS(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0x20, 0x10, 0x80, // JSR $8010
		0xEA, // NOP, the return target
	})
	cpu.write(0x8010, 0x60) // RTS
	cpu.Reset()

	cpu.Step()
	if got, want := cpu.PC, uint16(0x8010); got != want {
		t.Fatalf("PC after JSR = %04X, want %04X", got, want)
	}
	// JSR pushes the address of its last operand byte, high first
	if got, want := cpu.read(0x01FD), uint8(0x80); got != want {
		t.Errorf("pushed PCH = %02X, want %02X", got, want)
	}
	if got, want := cpu.read(0x01FC), uint8(0x02); got != want {
		t.Errorf("pushed PCL = %02X, want %02X", got, want)
	}

	cpu.Step()
	if got, want := cpu.PC, uint16(0x8003); got != want {
		t.Errorf("PC after RTS = %04X, want %04X", got, want)
	}
	if got, want := cpu.SP, uint8(0xFD); got != want {
		t.Errorf("SP after RTS = %02X, want %02X", got, want)
	}
}

func TestPHPThenPLP(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0x08, // PHP
		0x28, // PLP
	})
	cpu.Reset()
	cpu.FLAG = FlagNegative | FlagCarry | FlagUnused

	cpu.Step()
	// the pushed copy carries B and U regardless of the live register
	if got, want := cpu.read(0x01FD), FlagNegative|FlagCarry|FlagUnused|FlagBreak; got != want {
		t.Errorf("pushed P = %02X, want %02X", got, want)
	}
	if cpu.GetFlag(FlagBreak) != 0 {
		t.Errorf("PHP leaked B into the live register")
	}

	cpu.FLAG = 0xFF
	cpu.Step()
	// every flag restored except B (clear) and U (set)
	if got, want := cpu.FLAG, FlagNegative|FlagCarry|FlagUnused; got != want {
		t.Errorf("P after PLP = %02X, want %02X", got, want)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	cpu := New()
	cpu.write(0x02FF, 0x34)
	cpu.write(0x0300, 0x12) // would be the high byte on a sane part
	cpu.write(0x0200, 0x56) // the high byte the 6502 actually reads
	cpu.write(0x8000, 0x6C) // JMP ($02FF)
	cpu.write(0x8001, 0xFF)
	cpu.write(0x8002, 0x02)
	cpu.PC = 0x8000

	cpu.Step()

	if got, want := cpu.PC, uint16(0x5634); got != want {
		t.Errorf("PC after JMP ($02FF) = %04X, want %04X", got, want)
	}
}

func TestZeroPageIndexedWraps(t *testing.T) {
	cpu := New()
	cpu.write(0x007F, 0x42)
	cpu.Load([]uint8{0xB5, 0xFF}) // LDA $FF,X
	cpu.Reset()
	cpu.X = 0x80

	cpu.Step()

	if got, want := cpu.A, uint8(0x42); got != want {
		t.Errorf("A = %02X, want %02X (zero page index must wrap)", got, want)
	}
}

func TestIndirectXPointerWraps(t *testing.T) {
	cpu := New()
	cpu.write(0x00FF, 0x00)
	cpu.write(0x0000, 0x03) // pointer high byte wraps to $00
	cpu.write(0x0300, 0x5A)
	cpu.Load([]uint8{0xA1, 0xFB}) // LDA ($FB,X)
	cpu.Reset()
	cpu.X = 0x04

	cpu.Step()

	if got, want := cpu.A, uint8(0x5A); got != want {
		t.Errorf("A = %02X, want %02X ((zp,X) pointer must wrap)", got, want)
	}
}

func TestIndirectYDerefAndOffset(t *testing.T) {
	cpu := New()
	cpu.write(0x0080, 0x00)
	cpu.write(0x0081, 0x03)
	cpu.write(0x0305, 0x77)
	cpu.Load([]uint8{0xB1, 0x80}) // LDA ($80),Y
	cpu.Reset()
	cpu.Y = 0x05

	cpu.Step()

	if got, want := cpu.A, uint8(0x77); got != want {
		t.Errorf("A = %02X, want %02X", got, want)
	}
	if cpu.PageCrossed() {
		t.Errorf("PageCrossed = true, want false")
	}
}

func TestPageCrossExposed(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{0xBD, 0xF0, 0x02}) // LDA $02F0,X
	cpu.Reset()
	cpu.X = 0x20

	cpu.Step()

	if !cpu.PageCrossed() {
		t.Errorf("PageCrossed = false, want true for $02F0+$20")
	}
	// the base cycle model must not charge for the crossing
	if got, want := cpu.Cycles(), uint64(4); got != want {
		t.Errorf("cycles = %d, want %d", got, want)
	}
}

func TestIRQ(t *testing.T) {
	cpu := New()
	cpu.write(VectorIRQ, 0x00)
	cpu.write(VectorIRQ+1, 0x90)
	cpu.PC = 0x8123
	cpu.FLAG = FlagUnused | FlagCarry

	cpu.IRQ()

	if got, want := cpu.PC, uint16(0x9000); got != want {
		t.Fatalf("PC after IRQ = %04X, want %04X", got, want)
	}
	if got, want := cpu.read(0x01FD), uint8(0x81); got != want {
		t.Errorf("pushed PCH = %02X, want %02X", got, want)
	}
	if got, want := cpu.read(0x01FC), uint8(0x23); got != want {
		t.Errorf("pushed PCL = %02X, want %02X", got, want)
	}
	// hardware interrupts push P with B clear and U set
	if got, want := cpu.read(0x01FB), FlagUnused|FlagCarry; got != want {
		t.Errorf("pushed P = %02X, want %02X", got, want)
	}
	if cpu.GetFlag(FlagInterrupt) != 1 {
		t.Errorf("I not set after IRQ")
	}
}

func TestIRQMaskedByInterruptFlag(t *testing.T) {
	cpu := New()
	cpu.PC = 0x8123
	cpu.FLAG = FlagUnused | FlagInterrupt
	before := snapshot(cpu)

	cpu.IRQ()

	if diff := deep.Equal(snapshot(cpu), before); diff != nil {
		t.Errorf("masked IRQ changed state: %v", diff)
	}
}

func TestNMIIgnoresInterruptFlag(t *testing.T) {
	cpu := New()
	cpu.write(VectorNMI, 0x00)
	cpu.write(VectorNMI+1, 0xA0)
	cpu.PC = 0x8123
	cpu.FLAG = FlagUnused | FlagInterrupt

	cpu.NMI()

	if got, want := cpu.PC, uint16(0xA000); got != want {
		t.Errorf("PC after NMI = %04X, want %04X", got, want)
	}
}

func TestBRKThenRTI(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0x00, // BRK
		0xFF, // signature byte, skipped on return
		0xEA, // NOP, where RTI lands
	})
	cpu.write(VectorIRQ, 0x00)
	cpu.write(VectorIRQ+1, 0x90)
	cpu.write(0x9000, 0x40) // RTI
	cpu.Reset()
	cpu.FLAG = FlagUnused | FlagCarry

	cpu.Step()
	if got, want := cpu.PC, uint16(0x9000); got != want {
		t.Fatalf("PC after BRK = %04X, want %04X", got, want)
	}
	// BRK pushes P with B set
	if got, want := cpu.read(0x01FB), FlagUnused|FlagBreak|FlagCarry; got != want {
		t.Errorf("pushed P = %02X, want %02X", got, want)
	}
	if cpu.GetFlag(FlagInterrupt) != 1 {
		t.Errorf("I not set after BRK")
	}

	cpu.Step()
	// the signature byte is skipped, no +1 on the popped PC
	if got, want := cpu.PC, uint16(0x8002); got != want {
		t.Errorf("PC after RTI = %04X, want %04X", got, want)
	}
	if got, want := cpu.FLAG, FlagUnused|FlagCarry; got != want {
		t.Errorf("P after RTI = %02X, want %02X", got, want)
	}
}

func TestRunHaltsOnSelfJump(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{0x4C, 0x00, 0x80}) // JMP $8000
	cpu.Run()

	if got, want := cpu.PC, LoadAddress; got != want {
		t.Errorf("PC after Run = %04X, want %04X", got, want)
	}
}

func TestRunHaltsOnPCZero(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{0x4C, 0x00, 0x00}) // JMP $0000
	cpu.Run()

	if got, want := cpu.PC, uint16(0x0000); got != want {
		t.Errorf("PC after Run = %04X, want %04X", got, want)
	}
}

func TestTXSLeavesFlagsAlone(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{0x9A}) // TXS
	cpu.Reset()
	cpu.X = 0x00
	flags := cpu.FLAG

	cpu.Step()

	if got, want := cpu.SP, uint8(0x00); got != want {
		t.Errorf("SP = %02X, want %02X", got, want)
	}
	if cpu.FLAG != flags {
		t.Errorf("TXS changed flags: %02X -> %02X", flags, cpu.FLAG)
	}
}
