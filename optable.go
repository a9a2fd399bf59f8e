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

// newInstructionSet builds the 256-entry decode table, one row of 16
// entries per high nibble. Bytes with no documented instruction decode
// to "???" and behave as NOPs.
func newInstructionSet() []*Instruction {
	lookup := []*Instruction{
		{"BRK", opBRK, amIMP, AddrModeIMP}, {"ORA", opORA, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ORA", opORA, amZP0, AddrModeZP0}, {"ASL", opASL, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"PHP", opPHP, amIMP, AddrModeIMP}, {"ORA", opORA, amIMM, AddrModeIMM}, {"ASL", opASL, amACC, AddrModeACC}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ORA", opORA, amABS, AddrModeABS}, {"ASL", opASL, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BPL", opBPL, amREL, AddrModeREL}, {"ORA", opORA, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ORA", opORA, amZPX, AddrModeZPX}, {"ASL", opASL, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"CLC", opCLC, amIMP, AddrModeIMP}, {"ORA", opORA, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ORA", opORA, amABX, AddrModeABX}, {"ASL", opASL, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
		{"JSR", opJSR, amABS, AddrModeABS}, {"AND", opAND, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"BIT", opBIT, amZP0, AddrModeZP0}, {"AND", opAND, amZP0, AddrModeZP0}, {"ROL", opROL, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"PLP", opPLP, amIMP, AddrModeIMP}, {"AND", opAND, amIMM, AddrModeIMM}, {"ROL", opROL, amACC, AddrModeACC}, {"???", opXXX, amIMP, AddrModeIMP}, {"BIT", opBIT, amABS, AddrModeABS}, {"AND", opAND, amABS, AddrModeABS}, {"ROL", opROL, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BMI", opBMI, amREL, AddrModeREL}, {"AND", opAND, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"AND", opAND, amZPX, AddrModeZPX}, {"ROL", opROL, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"SEC", opSEC, amIMP, AddrModeIMP}, {"AND", opAND, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"AND", opAND, amABX, AddrModeABX}, {"ROL", opROL, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
		{"RTI", opRTI, amIMP, AddrModeIMP}, {"EOR", opEOR, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"EOR", opEOR, amZP0, AddrModeZP0}, {"LSR", opLSR, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"PHA", opPHA, amIMP, AddrModeIMP}, {"EOR", opEOR, amIMM, AddrModeIMM}, {"LSR", opLSR, amACC, AddrModeACC}, {"???", opXXX, amIMP, AddrModeIMP}, {"JMP", opJMP, amABS, AddrModeABS}, {"EOR", opEOR, amABS, AddrModeABS}, {"LSR", opLSR, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BVC", opBVC, amREL, AddrModeREL}, {"EOR", opEOR, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"EOR", opEOR, amZPX, AddrModeZPX}, {"LSR", opLSR, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"CLI", opCLI, amIMP, AddrModeIMP}, {"EOR", opEOR, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"EOR", opEOR, amABX, AddrModeABX}, {"LSR", opLSR, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
		{"RTS", opRTS, amIMP, AddrModeIMP}, {"ADC", opADC, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ADC", opADC, amZP0, AddrModeZP0}, {"ROR", opROR, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"PLA", opPLA, amIMP, AddrModeIMP}, {"ADC", opADC, amIMM, AddrModeIMM}, {"ROR", opROR, amACC, AddrModeACC}, {"???", opXXX, amIMP, AddrModeIMP}, {"JMP", opJMP, amIND, AddrModeIND}, {"ADC", opADC, amABS, AddrModeABS}, {"ROR", opROR, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BVS", opBVS, amREL, AddrModeREL}, {"ADC", opADC, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ADC", opADC, amZPX, AddrModeZPX}, {"ROR", opROR, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"SEI", opSEI, amIMP, AddrModeIMP}, {"ADC", opADC, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"ADC", opADC, amABX, AddrModeABX}, {"ROR", opROR, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
		{"???", opXXX, amIMP, AddrModeIMP}, {"STA", opSTA, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"STY", opSTY, amZP0, AddrModeZP0}, {"STA", opSTA, amZP0, AddrModeZP0}, {"STX", opSTX, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"DEY", opDEY, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"TXA", opTXA, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"STY", opSTY, amABS, AddrModeABS}, {"STA", opSTA, amABS, AddrModeABS}, {"STX", opSTX, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BCC", opBCC, amREL, AddrModeREL}, {"STA", opSTA, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"STY", opSTY, amZPX, AddrModeZPX}, {"STA", opSTA, amZPX, AddrModeZPX}, {"STX", opSTX, amZPY, AddrModeZPY}, {"???", opXXX, amIMP, AddrModeIMP}, {"TYA", opTYA, amIMP, AddrModeIMP}, {"STA", opSTA, amABY, AddrModeABY}, {"TXS", opTXS, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"STA", opSTA, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP},
		{"LDY", opLDY, amIMM, AddrModeIMM}, {"LDA", opLDA, amIZX, AddrModeIZX}, {"LDX", opLDX, amIMM, AddrModeIMM}, {"???", opXXX, amIMP, AddrModeIMP}, {"LDY", opLDY, amZP0, AddrModeZP0}, {"LDA", opLDA, amZP0, AddrModeZP0}, {"LDX", opLDX, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"TAY", opTAY, amIMP, AddrModeIMP}, {"LDA", opLDA, amIMM, AddrModeIMM}, {"TAX", opTAX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"LDY", opLDY, amABS, AddrModeABS}, {"LDA", opLDA, amABS, AddrModeABS}, {"LDX", opLDX, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BCS", opBCS, amREL, AddrModeREL}, {"LDA", opLDA, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"LDY", opLDY, amZPX, AddrModeZPX}, {"LDA", opLDA, amZPX, AddrModeZPX}, {"LDX", opLDX, amZPY, AddrModeZPY}, {"???", opXXX, amIMP, AddrModeIMP}, {"CLV", opCLV, amIMP, AddrModeIMP}, {"LDA", opLDA, amABY, AddrModeABY}, {"TSX", opTSX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"LDY", opLDY, amABX, AddrModeABX}, {"LDA", opLDA, amABX, AddrModeABX}, {"LDX", opLDX, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP},
		{"CPY", opCPY, amIMM, AddrModeIMM}, {"CMP", opCMP, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CPY", opCPY, amZP0, AddrModeZP0}, {"CMP", opCMP, amZP0, AddrModeZP0}, {"DEC", opDEC, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"INY", opINY, amIMP, AddrModeIMP}, {"CMP", opCMP, amIMM, AddrModeIMM}, {"DEX", opDEX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CPY", opCPY, amABS, AddrModeABS}, {"CMP", opCMP, amABS, AddrModeABS}, {"DEC", opDEC, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BNE", opBNE, amREL, AddrModeREL}, {"CMP", opCMP, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CMP", opCMP, amZPX, AddrModeZPX}, {"DEC", opDEC, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"CLD", opCLD, amIMP, AddrModeIMP}, {"CMP", opCMP, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CMP", opCMP, amABX, AddrModeABX}, {"DEC", opDEC, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
		{"CPX", opCPX, amIMM, AddrModeIMM}, {"SBC", opSBC, amIZX, AddrModeIZX}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CPX", opCPX, amZP0, AddrModeZP0}, {"SBC", opSBC, amZP0, AddrModeZP0}, {"INC", opINC, amZP0, AddrModeZP0}, {"???", opXXX, amIMP, AddrModeIMP}, {"INX", opINX, amIMP, AddrModeIMP}, {"SBC", opSBC, amIMM, AddrModeIMM}, {"NOP", opNOP, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"CPX", opCPX, amABS, AddrModeABS}, {"SBC", opSBC, amABS, AddrModeABS}, {"INC", opINC, amABS, AddrModeABS}, {"???", opXXX, amIMP, AddrModeIMP},
		{"BEQ", opBEQ, amREL, AddrModeREL}, {"SBC", opSBC, amIZY, AddrModeIZY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"SBC", opSBC, amZPX, AddrModeZPX}, {"INC", opINC, amZPX, AddrModeZPX}, {"???", opXXX, amIMP, AddrModeIMP}, {"SED", opSED, amIMP, AddrModeIMP}, {"SBC", opSBC, amABY, AddrModeABY}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"???", opXXX, amIMP, AddrModeIMP}, {"SBC", opSBC, amABX, AddrModeABX}, {"INC", opINC, amABX, AddrModeABX}, {"???", opXXX, amIMP, AddrModeIMP},
	}
	return lookup
}
