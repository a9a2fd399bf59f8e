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

type Instruction struct {
	name     string
	op       func(cpu *CPU)
	am       func(cpu *CPU)
	addrMode int
}

// Addressing modes ===========================================================
// Each opcode contains information about which address mode should be
// employed to facilitate the instruction, in regards to where it
// reads/writes the data it uses. The address mode changes the number of
// bytes that makes up the full instruction, so these functions also
// advance the program counter past any operand bytes. Modes whose
// effective address can land on a different page than their base
// record that in cpu.pageCross.

// Address Mode: Implied
// There is no additional data required for this instruction
func amIMP(cpu *CPU) {
	cpu.fetched = cpu.A
}

// Address Mode: Accumulator
// The instruction operates on the accumulator itself, used by the
// shifts and rotates
func amACC(cpu *CPU) {
	cpu.fetched = cpu.A
}

// Address Mode: Immediate
// The instruction expects the next byte to be used as a value, so we'll
// prep the read address to point to the next byte
func amIMM(cpu *CPU) {
	cpu.addrAbs = cpu.PC
	cpu.PC++
}

// Address Mode: Zero Page
// To save program bytes, zero page addressing allows you to absolutely
// address a location in the first 256 bytes of the address range
func amZP0(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.PC))
	cpu.PC++
	cpu.addrAbs &= 0x00FF
}

// Address Mode: Zero Page with X Offset
// Fundamentally the same as Zero Page addressing, but the contents of
// the X register is added to the supplied single byte address. The sum
// wraps within the first page.
func amZPX(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.X)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
}

// Address Mode: Zero Page with Y Offset
// Same as above but uses Y register for offset, only LDX/STX use it
func amZPY(cpu *CPU) {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.Y)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
}

// Address Mode: Relative
// This address mode is exclusive to branch instructions. The target
// must reside within -128 to +127 of the byte following the branch
// instruction.
func amREL(cpu *CPU) {
	cpu.addrRel = uint16(cpu.read(cpu.PC))
	cpu.PC++
	if cpu.addrRel&0x80 > 0 {
		cpu.addrRel |= 0xFF00
	}
}

// Address Mode: Absolute
// A full 16-bit address is loaded little-endian and used
func amABS(cpu *CPU) {
	cpu.addrAbs = cpu.read16(cpu.PC)
	cpu.PC += 2
}

// Address Mode: Absolute with X Offset
// Fundamentally the same as absolute addressing, but the contents of
// the X register is added to the supplied two byte address. If the
// resulting address changes the page the crossing is recorded.
func amABX(cpu *CPU) {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr + uint16(cpu.X)

	cpu.pageCross = cpu.addrAbs&0xFF00 != addr&0xFF00
}

// Address Mode: Absolute with Y Offset
// Fundamentally the same as absolute addressing, but the contents of
// the Y register is added to the supplied two byte address. If the
// resulting address changes the page the crossing is recorded.
func amABY(cpu *CPU) {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr + uint16(cpu.Y)

	cpu.pageCross = cpu.addrAbs&0xFF00 != addr&0xFF00
}

// Note: The next 3 address modes use indirection (aka Pointers)

// Address Mode: Indirect
// The supplied 16-bit address is read to get the actual 16-bit address.
// This instruction is unusual in that it has a bug in the hardware! To
// emulate its function accurately, we also need to emulate this bug. If
// the low byte of the supplied address is 0xFF, then to read the high
// byte of the actual address we need to cross a page boundary. This
// doesn't actually work on the chip as designed, instead it wraps back
// around in the same page, yielding an invalid actual address.
func amIND(cpu *CPU) {
	var ptrLo, ptrHi, ptr uint16
	ptrLo = uint16(cpu.read(cpu.PC))
	cpu.PC++
	ptrHi = uint16(cpu.read(cpu.PC))
	cpu.PC++

	ptr = (ptrHi << 8) | ptrLo

	if ptrLo == 0x00FF {
		// simulate page boundary hardware bug
		cpu.addrAbs = uint16(cpu.read(ptr&0xFF00))<<8 | uint16(cpu.read(ptr+0))
	} else {
		cpu.addrAbs = uint16(cpu.read(ptr+1))<<8 | uint16(cpu.read(ptr+0))
	}
}

// Address Mode: Indirect X
// The supplied 8-bit address is offset by the X register to index a
// location in page 0x00. The actual 16-bit address is read from this
// location, with the pointer itself wrapping within the zero page.
func amIZX(cpu *CPU) {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read((t + uint16(cpu.X)) & 0x00FF))
	hi := uint16(cpu.read((t + uint16(cpu.X) + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo
}

// Address Mode: Indirect Y
// The supplied 8-bit address indexes a location in page 0x00. From here
// the actual 16-bit address is read, and the contents of the Y register
// is added to it to offset it. If the offset causes a change in page
// the crossing is recorded.
func amIZY(cpu *CPU) {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read(t & 0x00FF))
	hi := uint16(cpu.read((t + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.Y)

	cpu.pageCross = cpu.addrAbs&0xFF00 != (hi << 8)
}

// Opcodes =====================================================================
// There are 56 "legitimate" opcodes provided by the 6502 CPU, spread
// over 151 opcode bytes once the addressing mode variants are counted.
// Unofficial codes are not modelled, the dispatcher treats them as
// plain NOPs.

// branch folds the shared tail of the eight conditional branches: the
// relative operand was already fetched, so on a taken branch the offset
// is added to the post-operand PC.
func (cpu *CPU) branch() {
	cpu.addrAbs = cpu.PC + cpu.addrRel
	cpu.pageCross = cpu.addrAbs&0xFF00 != cpu.PC&0xFF00
	cpu.PC = cpu.addrAbs
}

// Instruction: Add with Carry In
// Function:    A = A + M + C
// Flags Out:   C, V, N, Z
//
// In binary mode the add is performed in the 16-bit domain to capture
// the carry in bit 8. The signed overflow flag is set when two operands
// with equal sign bits produce a result whose sign differs:
// V = (A^R) & (M^R) & 0x80.
//
// In decimal mode each nibble is treated as a BCD digit 0-9 and
// adjusted by 6 when it overflows. The NMOS parts still derive Z, N and
// V from the pure binary sum, only A and C reflect the adjusted
// result.
func opADC(cpu *CPU) {
	cpu.fetch()

	a := uint16(cpu.A)
	m := uint16(cpu.fetched)
	c := uint16(cpu.GetFlag(FlagCarry))
	sum := a + m + c

	cpu.SetFlag(FlagZero, sum&0x00FF == 0)
	cpu.SetFlag(FlagNegative, sum&0x80 != 0)
	cpu.SetFlag(FlagOverflow, (a^sum)&(m^sum)&0x80 != 0)

	if cpu.GetFlag(FlagDecimal) == 1 {
		lo := (a & 0x0F) + (m & 0x0F) + c
		var carry uint16
		if lo > 9 {
			lo += 6
			carry = 1
		}
		hi := (a >> 4) + (m >> 4) + carry
		if hi > 9 {
			hi += 6
		}
		cpu.SetFlag(FlagCarry, hi > 0x0F)
		cpu.A = uint8((hi&0x0F)<<4 | (lo & 0x0F))
	} else {
		cpu.SetFlag(FlagCarry, sum > 0xFF)
		cpu.A = uint8(sum & 0x00FF)
	}
}

// Instruction: Subtraction with Borrow In
// Function:    A = A - M - (1 - C)
// Flags Out:   C, V, N, Z
//
// Binary subtraction reuses the adder by inverting the operand:
// A - M - (1-C) == A + ^M + C. The carry flag then reads as "no
// borrow". Decimal mode adjusts each nibble by 6 when it borrows, but
// Z, N and V still come from the binary difference and C from the
// overall binary borrow.
func opSBC(cpu *CPU) {
	cpu.fetch()

	a := uint16(cpu.A)
	value := uint16(cpu.fetched) ^ 0x00FF
	c := uint16(cpu.GetFlag(FlagCarry))
	diff := a + value + c

	cpu.SetFlag(FlagZero, diff&0x00FF == 0)
	cpu.SetFlag(FlagNegative, diff&0x80 != 0)
	cpu.SetFlag(FlagOverflow, (a^diff)&(value^diff)&0x80 != 0)
	cpu.SetFlag(FlagCarry, diff > 0xFF)

	if cpu.GetFlag(FlagDecimal) == 1 {
		m := cpu.fetched
		borrow := int16(1 - c)
		lo := int16(cpu.A&0x0F) - int16(m&0x0F) - borrow
		var highBorrow int16
		if lo < 0 {
			lo -= 6
			highBorrow = 1
		}
		hi := int16(cpu.A>>4) - int16(m>>4) - highBorrow
		if hi < 0 {
			hi -= 6
		}
		cpu.A = uint8((hi&0x0F)<<4 | (lo & 0x0F))
	} else {
		cpu.A = uint8(diff & 0x00FF)
	}
}

// Instruction: Bitwise Logic AND
// Function: A = A & M
// Flags Out: N, Z
func opAND(cpu *CPU) {
	cpu.fetch()
	cpu.A &= cpu.fetched
	cpu.setZN(cpu.A)
}

// Instruction: Arithmetic Shift Left
// Function: C <- (value << 1) <- 0
// Flags Out: N, Z, C
func opASL(cpu *CPU) {
	cpu.fetch()
	cpu.SetFlag(FlagCarry, cpu.fetched&0x80 != 0)
	result := cpu.fetched << 1
	cpu.setZN(result)

	if cpu.lookup[cpu.opcode].addrMode == AddrModeACC {
		cpu.A = result
	} else {
		cpu.write(cpu.addrAbs, result)
	}
}

// Instruction: Branch if Carry Clear
// Function: if C == 0 { pc = address }
func opBCC(cpu *CPU) {
	if cpu.GetFlag(FlagCarry) == 0 {
		cpu.branch()
	}
}

// Instruction: Branch if Carry Set
// Function: if C == 1 { pc = address }
func opBCS(cpu *CPU) {
	if cpu.GetFlag(FlagCarry) == 1 {
		cpu.branch()
	}
}

// Instruction: Branch if Equal
// Function: if Z == 1 { pc = address }
func opBEQ(cpu *CPU) {
	if cpu.GetFlag(FlagZero) == 1 {
		cpu.branch()
	}
}

// Instruction: Bit Test
// Function: Z = (A & M) == 0, N = bit 7 of M, V = bit 6 of M
// Flags Out: Z, N, V. The accumulator is unchanged.
func opBIT(cpu *CPU) {
	cpu.fetch()
	cpu.SetFlag(FlagZero, cpu.A&cpu.fetched == 0x00)
	cpu.SetFlag(FlagNegative, cpu.fetched&(1<<7) != 0)
	cpu.SetFlag(FlagOverflow, cpu.fetched&(1<<6) != 0)
}

// Instruction: Branch if Negative
// Function: if N == 1 { pc = address }
func opBMI(cpu *CPU) {
	if cpu.GetFlag(FlagNegative) == 1 {
		cpu.branch()
	}
}

// Instruction: Branch if Not Equal
// Function: if Z == 0 { pc = address }
func opBNE(cpu *CPU) {
	if cpu.GetFlag(FlagZero) == 0 {
		cpu.branch()
	}
}

// Instruction: Branch if Positive
// Function: if N == 0 { pc = address }
func opBPL(cpu *CPU) {
	if cpu.GetFlag(FlagNegative) == 0 {
		cpu.branch()
	}
}

// Instruction: Break
// Function: Program Sourced Interrupt
// The byte after the BRK opcode is a signature byte: the pushed return
// address skips it, so RTI resumes two bytes past the BRK.
func opBRK(cpu *CPU) {
	cpu.PC++
	cpu.interrupt(VectorIRQ, true)
}

// Instruction: Branch if Overflow Clear
// Function: if V == 0 { pc = address }
func opBVC(cpu *CPU) {
	if cpu.GetFlag(FlagOverflow) == 0 {
		cpu.branch()
	}
}

// Instruction: Branch if Overflow Set
// Function: if V == 1 { pc = address }
func opBVS(cpu *CPU) {
	if cpu.GetFlag(FlagOverflow) == 1 {
		cpu.branch()
	}
}

// Instruction: Clear Carry Flag
// Function: C = 0
func opCLC(cpu *CPU) {
	cpu.SetFlag(FlagCarry, false)
}

// Instruction: Clear Decimal Flag
// Function: D = 0
func opCLD(cpu *CPU) {
	cpu.SetFlag(FlagDecimal, false)
}

// Instruction: Clear Interrupt Flag / Enable Interrupts
// Function: I = 0
func opCLI(cpu *CPU) {
	cpu.SetFlag(FlagInterrupt, false)
}

// Instruction: Clear Overflow Flag
// Function: V = 0
func opCLV(cpu *CPU) {
	cpu.SetFlag(FlagOverflow, false)
}

// Instruction: Compare Accumulator
// Function: C <- A >= M	Z <- (A - M) == 0
// Flags Out: N, C, Z
func opCMP(cpu *CPU) {
	cpu.fetch()
	result := cpu.A - cpu.fetched
	cpu.SetFlag(FlagCarry, cpu.A >= cpu.fetched)
	cpu.setZN(result)
}

// Instruction: Compare X Register
// Function: C <- X >= M	Z <- (X - M) == 0
// Flags Out: N, C, Z
func opCPX(cpu *CPU) {
	cpu.fetch()
	result := cpu.X - cpu.fetched
	cpu.SetFlag(FlagCarry, cpu.X >= cpu.fetched)
	cpu.setZN(result)
}

// Instruction: Compare Y Register
// Function: C <- Y >= M	Z <- (Y - M) == 0
// Flags Out: N, C, Z
func opCPY(cpu *CPU) {
	cpu.fetch()
	result := cpu.Y - cpu.fetched
	cpu.SetFlag(FlagCarry, cpu.Y >= cpu.fetched)
	cpu.setZN(result)
}

// Instruction: Decrement Value at Memory Location
// Function: M = M - 1
// Flags Out: N, Z
func opDEC(cpu *CPU) {
	cpu.fetch()
	result := cpu.fetched - 1
	cpu.write(cpu.addrAbs, result)
	cpu.setZN(result)
}

// Instruction: Decrement X Register
// Function: X = X - 1
// Flags Out: N, Z
func opDEX(cpu *CPU) {
	cpu.X--
	cpu.setZN(cpu.X)
}

// Instruction: Decrement Y Register
// Function: Y = Y - 1
// Flags Out: N, Z
func opDEY(cpu *CPU) {
	cpu.Y--
	cpu.setZN(cpu.Y)
}

// Instruction: Bitwise Logic XOR
// Function: A = A xor M
// Flags Out: N, Z
func opEOR(cpu *CPU) {
	cpu.fetch()
	cpu.A ^= cpu.fetched
	cpu.setZN(cpu.A)
}

// Instruction: Increment Value at Memory Location
// Function: M = M + 1
// Flags Out: N, Z
func opINC(cpu *CPU) {
	cpu.fetch()
	result := cpu.fetched + 1
	cpu.write(cpu.addrAbs, result)
	cpu.setZN(result)
}

// Instruction: Increment X Register
// Function: X = X + 1
// Flags Out: N, Z
func opINX(cpu *CPU) {
	cpu.X++
	cpu.setZN(cpu.X)
}

// Instruction: Increment Y Register
// Function: Y = Y + 1
// Flags Out: N, Z
func opINY(cpu *CPU) {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

// Instruction: Jump to Location
// Function: pc = address
func opJMP(cpu *CPU) {
	cpu.PC = cpu.addrAbs
}

// Instruction: Jump to Sub-Routine
// Function: Push the address of the last operand byte, pc = address
func opJSR(cpu *CPU) {
	cpu.PC--
	cpu.pushPC()
	cpu.PC = cpu.addrAbs
}

// Instruction: Load The Accumulator
// Function: A = M
// Flags Out: N, Z
func opLDA(cpu *CPU) {
	cpu.fetch()
	cpu.A = cpu.fetched
	cpu.setZN(cpu.A)
}

// Instruction: Load The X Register
// Function: X = M
// Flags Out: N, Z
func opLDX(cpu *CPU) {
	cpu.fetch()
	cpu.X = cpu.fetched
	cpu.setZN(cpu.X)
}

// Instruction: Load The Y Register
// Function: Y = M
// Flags Out: N, Z
func opLDY(cpu *CPU) {
	cpu.fetch()
	cpu.Y = cpu.fetched
	cpu.setZN(cpu.Y)
}

// Instruction: Logical Shift Right
// Function: 0 -> (value >> 1) -> C
// Flags Out: N, Z, C
func opLSR(cpu *CPU) {
	cpu.fetch()
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	result := cpu.fetched >> 1
	cpu.setZN(result)

	if cpu.lookup[cpu.opcode].addrMode == AddrModeACC {
		cpu.A = result
	} else {
		cpu.write(cpu.addrAbs, result)
	}
}

// Instruction: No Operation
func opNOP(cpu *CPU) {
}

// Instruction: Bitwise Logic OR
// Function: A = A | M
// Flags Out: N, Z
func opORA(cpu *CPU) {
	cpu.fetch()
	cpu.A |= cpu.fetched
	cpu.setZN(cpu.A)
}

// Instruction: Push Accumulator to Stack
// Function: A -> stack
func opPHA(cpu *CPU) {
	cpu.push(cpu.A)
}

// Instruction: Push Status Register to Stack
// Function: status -> stack
// Note: Break and unused flags are set on the pushed copy, the live
// register is untouched
func opPHP(cpu *CPU) {
	cpu.push(cpu.FLAG | FlagBreak | FlagUnused)
}

// Instruction: Pop Accumulator off Stack
// Function: A <- stack
// Flags Out: N, Z
func opPLA(cpu *CPU) {
	cpu.A = cpu.pop()
	cpu.setZN(cpu.A)
}

// Instruction: Pop Status Register off Stack
// Function: Status <- stack
// Note: Break clears and unused sets regardless of the popped bits
func opPLP(cpu *CPU) {
	cpu.FLAG = cpu.pop()
	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
}

// Instruction: Rotate Left
// Function: C <- (value << 1) <- C
// Flags Out: N, Z, C
func opROL(cpu *CPU) {
	cpu.fetch()
	result := cpu.fetched<<1 | cpu.GetFlag(FlagCarry)
	cpu.SetFlag(FlagCarry, cpu.fetched&0x80 != 0)
	cpu.setZN(result)

	if cpu.lookup[cpu.opcode].addrMode == AddrModeACC {
		cpu.A = result
	} else {
		cpu.write(cpu.addrAbs, result)
	}
}

// Instruction: Rotate Right
// Function: C -> (value >> 1) -> C
// Flags Out: N, Z, C
func opROR(cpu *CPU) {
	cpu.fetch()
	result := cpu.fetched>>1 | cpu.GetFlag(FlagCarry)<<7
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	cpu.setZN(result)

	if cpu.lookup[cpu.opcode].addrMode == AddrModeACC {
		cpu.A = result
	} else {
		cpu.write(cpu.addrAbs, result)
	}
}

// Instruction: Return from Interrupt
// Function: Status <- stack, pc <- stack
// Unlike RTS the popped program counter is used as is.
func opRTI(cpu *CPU) {
	cpu.FLAG = cpu.pop()
	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)

	cpu.popPC()
}

// Instruction: Return from Subroutine
// Function: pc <- stack, pc = pc + 1
func opRTS(cpu *CPU) {
	cpu.popPC()
	cpu.PC++
}

// Instruction: Set Carry Flag
// Function: C = 1
func opSEC(cpu *CPU) {
	cpu.SetFlag(FlagCarry, true)
}

// Instruction: Set Decimal Flag
// Function: D = 1
func opSED(cpu *CPU) {
	cpu.SetFlag(FlagDecimal, true)
}

// Instruction: Set Interrupt Flag / Disable Interrupts
// Function: I = 1
func opSEI(cpu *CPU) {
	cpu.SetFlag(FlagInterrupt, true)
}

// Instruction: Store Accumulator at Address
// Function: M = A
func opSTA(cpu *CPU) {
	cpu.write(cpu.addrAbs, cpu.A)
}

// Instruction: Store X Register at Address
// Function: M = X
func opSTX(cpu *CPU) {
	cpu.write(cpu.addrAbs, cpu.X)
}

// Instruction: Store Y Register at Address
// Function: M = Y
func opSTY(cpu *CPU) {
	cpu.write(cpu.addrAbs, cpu.Y)
}

// Instruction: Transfer Accumulator to X Register
// Function: X = A
// Flags Out: N, Z
func opTAX(cpu *CPU) {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

// Instruction: Transfer Accumulator to Y Register
// Function: Y = A
// Flags Out: N, Z
func opTAY(cpu *CPU) {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

// Instruction: Transfer Stack Pointer to X Register
// Function: X = stack pointer
// Flags Out: N, Z
func opTSX(cpu *CPU) {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
}

// Instruction: Transfer X Register to Accumulator
// Function: A = X
// Flags Out: N, Z
func opTXA(cpu *CPU) {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

// Instruction: Transfer X Register to Stack Pointer
// Function: stack pointer = X
// The only register transfer that leaves the flags alone.
func opTXS(cpu *CPU) {
	cpu.SP = cpu.X
}

// Instruction: Transfer Y Register to Accumulator
// Function: A = Y
// Flags Out: N, Z
func opTYA(cpu *CPU) {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}

// capture all "unofficial" opcodes with this function.
// It is functionally identical to a NOP
func opXXX(cpu *CPU) {
	_ = cpu
}
