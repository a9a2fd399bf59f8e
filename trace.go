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
	"fmt"
	"strings"
)

// operandLength returns how many operand bytes follow an opcode of the
// given addressing mode
func operandLength(addrMode int) int {
	switch addrMode {
	case AddrModeIMM, AddrModeZP0, AddrModeZPX, AddrModeZPY, AddrModeREL, AddrModeIZX, AddrModeIZY:
		return 1
	case AddrModeABS, AddrModeABX, AddrModeABY, AddrModeIND:
		return 2
	}
	return 0
}

// Trace renders the instruction at the current program counter as one
// line of the canonical Nintendulator/nestest log: address, raw bytes,
// disassembly and the register file. The snapshot is taken before the
// instruction executes and the rendering never mutates the CPU, so it
// is safe to call between any two steps.
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
func Trace(cpu *CPU) string {
	pc := cpu.PC
	opcode := cpu.read(pc)
	instruction := cpu.lookup[opcode]

	length := operandLength(instruction.addrMode)

	raw := &strings.Builder{}
	fmt.Fprintf(raw, "%02X", opcode)
	for i := 1; i <= length; i++ {
		fmt.Fprintf(raw, " %02X", cpu.read(pc+uint16(i)))
	}

	asm := fmt.Sprintf("%04X  %-8s %4s %s",
		pc, raw.String(), instruction.name, renderOperand(cpu, instruction, pc))

	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		strings.TrimRight(asm, " "), cpu.A, cpu.X, cpu.Y, cpu.FLAG, cpu.SP)
}

// renderOperand formats the operand of the instruction at pc the way
// the nestest log does, including the values currently in memory for
// the modes that show them
func renderOperand(cpu *CPU, instruction *Instruction, pc uint16) string {
	op1 := cpu.read(pc + 1)
	op2 := cpu.read(pc + 2)
	abs := uint16(op2)<<8 | uint16(op1)

	switch instruction.addrMode {
	case AddrModeACC:
		return "A"
	case AddrModeIMM:
		return fmt.Sprintf("#$%02X", op1)
	case AddrModeZP0:
		return fmt.Sprintf("$%02X = %02X", op1, cpu.read(uint16(op1)))
	case AddrModeZPX:
		ea := op1 + cpu.X
		return fmt.Sprintf("$%02X,X @ %02X = %02X", op1, ea, cpu.read(uint16(ea)))
	case AddrModeZPY:
		ea := op1 + cpu.Y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", op1, ea, cpu.read(uint16(ea)))
	case AddrModeABS:
		// jumps show the bare target, everything else dereferences
		if instruction.name == "JMP" || instruction.name == "JSR" {
			return fmt.Sprintf("$%04X", abs)
		}
		return fmt.Sprintf("$%04X = %02X", abs, cpu.read(abs))
	case AddrModeABX:
		ea := abs + uint16(cpu.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", abs, ea, cpu.read(ea))
	case AddrModeABY:
		ea := abs + uint16(cpu.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", abs, ea, cpu.read(ea))
	case AddrModeIND:
		var target uint16
		if op1 == 0xFF {
			// same-page high byte, as the hardware does it
			target = uint16(cpu.read(abs&0xFF00))<<8 | uint16(cpu.read(abs))
		} else {
			target = uint16(cpu.read(abs+1))<<8 | uint16(cpu.read(abs))
		}
		return fmt.Sprintf("($%04X) = %04X", abs, target)
	case AddrModeIZX:
		ptr := op1 + cpu.X
		deref := uint16(cpu.read(uint16(ptr+1)))<<8 | uint16(cpu.read(uint16(ptr)))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", op1, ptr, deref, cpu.read(deref))
	case AddrModeIZY:
		deref := uint16(cpu.read(uint16(op1+1)))<<8 | uint16(cpu.read(uint16(op1)))
		ea := deref + uint16(cpu.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", op1, deref, ea, cpu.read(ea))
	case AddrModeREL:
		target := pc + 2 + uint16(int16(int8(op1)))
		return fmt.Sprintf("$%04X", target)
	}
	return ""
}

// Disassembly represents disassembly of a memory range, with keys
// equivalent to instruction start locations in memory
type Disassembly struct {
	// Index contains address list in disassembly order
	Index []uint16
	// Lines maps addr to rendered instruction
	Lines map[uint16]string
}

// Disassemble a range of memory into human readable form. Operands are
// rendered statically (no memory dereferencing), which makes this
// suitable for code panes that are drawn while the CPU is mid-program.
func (cpu *CPU) Disassemble(start, end uint16) *Disassembly {
	addr := uint32(start)
	disassembly := &Disassembly{
		Index: []uint16{},
		Lines: make(map[uint16]string),
	}

	for addr <= uint32(end) {
		lineAddr := uint16(addr)

		opcode := cpu.read(uint16(addr))
		addr++
		instruction := cpu.lookup[opcode]

		op1 := cpu.read(uint16(addr))
		op2 := cpu.read(uint16(addr) + 1)
		abs := uint16(op2)<<8 | uint16(op1)
		addr += uint32(operandLength(instruction.addrMode))

		sb := &strings.Builder{}
		fmt.Fprintf(sb, "$%04X: %s", lineAddr, instruction.name)

		switch instruction.addrMode {
		case AddrModeACC:
			sb.WriteString(" A")
		case AddrModeIMM:
			fmt.Fprintf(sb, " #$%02X", op1)
		case AddrModeZP0:
			fmt.Fprintf(sb, " $%02X", op1)
		case AddrModeZPX:
			fmt.Fprintf(sb, " $%02X,X", op1)
		case AddrModeZPY:
			fmt.Fprintf(sb, " $%02X,Y", op1)
		case AddrModeABS:
			fmt.Fprintf(sb, " $%04X", abs)
		case AddrModeABX:
			fmt.Fprintf(sb, " $%04X,X", abs)
		case AddrModeABY:
			fmt.Fprintf(sb, " $%04X,Y", abs)
		case AddrModeIND:
			fmt.Fprintf(sb, " ($%04X)", abs)
		case AddrModeIZX:
			fmt.Fprintf(sb, " ($%02X,X)", op1)
		case AddrModeIZY:
			fmt.Fprintf(sb, " ($%02X),Y", op1)
		case AddrModeREL:
			fmt.Fprintf(sb, " $%04X", uint16(addr)+uint16(int16(int8(op1))))
		}

		disassembly.Index = append(disassembly.Index, lineAddr)
		disassembly.Lines[lineAddr] = sb.String()
	}

	return disassembly
}
