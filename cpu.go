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

const (
	// FlagNegative N
	FlagNegative uint8 = 0x80
	// FlagOverflow V
	FlagOverflow uint8 = 0x40
	// FlagUnused U, reads back as 1
	FlagUnused uint8 = 0x20
	// FlagBreak B
	FlagBreak uint8 = 0x10
	// FlagDecimal D
	FlagDecimal uint8 = 0x08
	// FlagInterrupt I
	FlagInterrupt uint8 = 0x04
	// FlagZero Z
	FlagZero uint8 = 0x02
	// FlagCarry C
	FlagCarry uint8 = 0x01

	// VectorNMI holds the PC loaded on a non-maskable interrupt
	VectorNMI = uint16(0xFFFA)
	// VectorReset holds the PC loaded on reset
	VectorReset = uint16(0xFFFC)
	// VectorIRQ holds the PC loaded on IRQ and BRK
	VectorIRQ = uint16(0xFFFE)

	// LoadAddress is where Load places a program image
	LoadAddress = uint16(0x8000)

	// Addressing Mode Unknown
	AddrModeUnknown = iota
	// Addressing Mode Implied
	AddrModeIMP
	// Addressing Mode Accumulator
	AddrModeACC
	// Addressing Mode Immediate
	AddrModeIMM
	// Addressing Mode Zero Page
	AddrModeZP0
	// Addressing Mode Zero Page with X Offset
	AddrModeZPX
	// Addressing Mode Zero Page with Y Offset
	AddrModeZPY
	// Addressing Mode Relative
	AddrModeREL
	// Addressing Mode Absolute
	AddrModeABS
	// Addressing Mode Absolute with X Offset
	AddrModeABX
	// Addressing Mode Absolute with Y Offset
	AddrModeABY
	// Addressing Mode Indirect
	AddrModeIND
	// Addressing Mode Indirect X
	AddrModeIZX
	// Addressing Mode Indirect Y
	AddrModeIZY
)

// CPU emulates a MOS 6502 from the software perspective: one call to
// Step fetches, decodes and executes a whole instruction. Cycle
// accounting is per-instruction from the base cycle table, not per bus
// access.
type CPU struct {
	// registers

	// A accumulator
	A uint8
	// X register
	X uint8
	// Y register
	Y uint8
	// Stack pointer register
	SP uint8
	// Program counter register
	PC uint16
	// Flag status register
	FLAG uint8

	// memory
	mem Memory

	// assistive variables
	fetched   uint8  // Represents the working input value to the ALU
	addrAbs   uint16 // All used memory addresses end up in here
	addrRel   uint16 // Sign-extended branch offset from relative addressing
	opcode    uint8  // Instruction byte
	pageCross bool   // Whether the last addressing computation crossed a page
	cycles    uint64 // Global accumulation of base instruction cycles

	lookup []*Instruction
}

// New creates a 6502 cpu attached to a fresh 64KB plain memory
func New() *CPU {
	cpu := &CPU{
		SP:     0xFD,
		mem:    NewPlainMemory(),
		lookup: newInstructionSet(),
	}

	return cpu
}

// Attach replaces the memory the CPU reads and writes through
func (cpu *CPU) Attach(mem Memory) {
	cpu.mem = mem
}

// Memory returns the memory the CPU is attached to
func (cpu *CPU) Memory() Memory {
	return cpu.mem
}

// Cycles returns the number of base cycles consumed since creation
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}

// PageCrossed reports whether the addressing computation of the most
// recently executed instruction crossed a page boundary. The base
// cycle model does not charge for it, the flag is only exposed.
func (cpu *CPU) PageCrossed() bool {
	return cpu.pageCross
}

// Load copies a program image into memory at 0x8000 and points the
// reset vector there
func (cpu *CPU) Load(program []uint8) {
	for i, b := range program {
		cpu.write(LoadAddress+uint16(i), b)
	}
	cpu.write(VectorReset, uint8(LoadAddress&0x00FF))
	cpu.write(VectorReset+1, uint8(LoadAddress>>8))
}

// Reset forces the 6502 into a known state. The registers are cleared,
// the stack pointer returns to 0xFD and the status register keeps only
// the interrupt-disable and unused bits. An absolute address is read
// from location 0xFFFC which contains a second address that the
// program counter is set to.
func (cpu *CPU) Reset() {
	// get reset vector
	cpu.PC = cpu.read16(VectorReset)

	// clear register
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SP = 0xFD
	cpu.FLAG = FlagInterrupt | FlagUnused

	// clear internal stuff
	cpu.addrRel = 0
	cpu.addrAbs = 0
	cpu.fetched = 0
	cpu.pageCross = false
}

// IRQ Interrupt Request
// Interrupt requests only happen if the "disable interrupt" flag is
// unset. The current program counter and status register are stored on
// the stack so the service routine can restore them with RTI, then a
// programmable address is read from hard coded location 0xFFFE and set
// as the program counter.
func (cpu *CPU) IRQ() {
	if cpu.GetFlag(FlagInterrupt) != 0 {
		return
	}
	cpu.interrupt(VectorIRQ, false)
}

// NMI Non-Maskable Interrupt
// A non-maskable interrupt cannot be ignored. It behaves in exactly
// the same way as a regular IRQ, but reads the new program counter
// address from location 0xFFFA.
func (cpu *CPU) NMI() {
	cpu.interrupt(VectorNMI, false)
}

// interrupt is the protocol shared by IRQ, NMI and BRK: push PC high
// then low, push the status register with U set and B set only for
// BRK, disable interrupts and load PC from the vector.
func (cpu *CPU) interrupt(vector uint16, brk bool) {
	cpu.pushPC()

	flags := cpu.FLAG | FlagUnused
	if brk {
		flags |= FlagBreak
	} else {
		flags &^= FlagBreak
	}
	cpu.push(flags)

	cpu.SetFlag(FlagInterrupt, true)
	cpu.PC = cpu.read16(vector)
}

// Step executes a single instruction: read the opcode at PC, advance
// PC, charge the base cycle cost, resolve the addressing mode and run
// the handler. When trace logging is enabled a pre-execution trace
// line is emitted first.
func (cpu *CPU) Step() {
	if logEnable {
		logger.Log(Trace(cpu))
	}

	cpu.opcode = cpu.read(cpu.PC)
	cpu.PC++

	instruction := cpu.lookup[cpu.opcode]

	// always set the unused flag to 1
	cpu.SetFlag(FlagUnused, true)
	// charge the base cycle cost
	cpu.cycles += uint64(cycleTable[cpu.opcode])
	// resolve the operand location using the required addressing mode
	cpu.pageCross = false
	instruction.am(cpu)
	// perform opcode
	instruction.op(cpu)

	// always set the unused flag to 1
	cpu.SetFlag(FlagUnused, true)
}

// Run resets the CPU and steps until the program counter stops moving
// (the self-jump idiom 6502 test ROMs halt with) or reaches 0
func (cpu *CPU) Run() {
	cpu.Reset()
	for {
		prev := cpu.PC
		cpu.Step()
		if cpu.PC == prev || cpu.PC == 0 {
			break
		}
	}
}

// GetFlag returns the flag
func (cpu *CPU) GetFlag(flag uint8) uint8 {
	if cpu.FLAG&flag > 0 {
		return 1
	} else {
		return 0
	}
}

// SetFlag sets the flag
func (cpu *CPU) SetFlag(flag uint8, v bool) {
	if v {
		cpu.FLAG |= flag
	} else {
		cpu.FLAG &^= flag
	}
}

// setZN folds the common Z/N update on a freshly produced byte
func (cpu *CPU) setZN(value uint8) {
	cpu.SetFlag(FlagZero, value == 0x00)
	cpu.SetFlag(FlagNegative, value&0x80 != 0)
}

// push data byte to stack
func (cpu *CPU) push(data uint8) {
	cpu.write(0x0100+uint16(cpu.SP), data)
	cpu.SP--
}

// pop data from stack
func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.read(0x0100 + uint16(cpu.SP))
}

// push program counter to the stack
func (cpu *CPU) pushPC() {
	cpu.write(0x0100+uint16(cpu.SP), uint8((cpu.PC>>8)&0x00FF))
	cpu.SP--
	cpu.write(0x0100+uint16(cpu.SP), uint8(cpu.PC&0x00FF))
	cpu.SP--
}

// pop program counter from the stack
func (cpu *CPU) popPC() {
	cpu.SP++
	lo := uint16(cpu.read(0x0100 + uint16(cpu.SP)))
	cpu.SP++
	hi := uint16(cpu.read(0x0100 + uint16(cpu.SP)))
	cpu.PC = hi<<8 | lo
}

// communication with memory

// reads an 8-bit data from memory, located at the specified 16-bit address
func (cpu *CPU) read(addr uint16) uint8 {
	return cpu.mem.Read(addr)
}

// read a 16-bit data from memory, the lower 8-bit is read first
func (cpu *CPU) read16(addr uint16) uint16 {
	var lo, hi uint16
	lo = uint16(cpu.read(addr))
	hi = uint16(cpu.read(addr + 1))
	return hi<<8 | lo
}

// writes a byte to memory at the specified address
func (cpu *CPU) write(addr uint16, data uint8) {
	cpu.mem.Write(addr, data)
}

// This function sources the data used by the instruction into a
// convenient numeric variable. Implied and accumulator instructions
// don't touch memory, their source was primed by the addressing mode.
// For all other modes the data resides at the location held within
// addrAbs, so it is read from there.
func (cpu *CPU) fetch() uint8 {
	switch cpu.lookup[cpu.opcode].addrMode {
	case AddrModeIMP, AddrModeACC:
	default:
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}
