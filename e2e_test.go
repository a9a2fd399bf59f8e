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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

const testDir = "testdata"

func TestProgramIncDecBit(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0xA9, 0x01, // LDA #$01
		0x85, 0x10, // STA $10
		0xE6, 0x10, // INC $10
		0xC6, 0x10, // DEC $10
		0xA9, 0x00, // LDA #$00
		0x24, 0x10, // BIT $10
		0x4C, 0x0C, 0x80, // JMP $800C
	})
	cpu.Run()

	if got := cpu.read(0x0010); got != 0x01 {
		t.Errorf("mem[0x10] = %02X, want 01", got)
	}
	if cpu.GetFlag(FlagZero) != 1 {
		t.Errorf("Z = 0, want 1 after BIT with A=0")
	}
	if cpu.GetFlag(FlagNegative) != 0 {
		t.Errorf("N = 1, want 0")
	}
	if cpu.GetFlag(FlagOverflow) != 0 {
		t.Errorf("V = 1, want 0")
	}
}

func TestProgramCompareGreater(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0xA9, 0x10, // LDA #$10
		0xC9, 0x05, // CMP #$05
		0xC9, 0x20, // CMP #$20
		0x4C, 0x06, 0x80, // JMP $8006
	})
	cpu.Run()

	if cpu.GetFlag(FlagCarry) != 0 {
		t.Errorf("C = 1, want 0 after comparing 0x10 against 0x20")
	}
	if cpu.GetFlag(FlagNegative) != 1 {
		t.Errorf("N = 0, want 1")
	}
	if cpu.GetFlag(FlagZero) != 0 {
		t.Errorf("Z = 1, want 0")
	}
}

func TestProgramBranchLoop(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0xA2, 0x03, // LDX #$03
		0xCA,       // DEX
		0xD0, 0xFD, // BNE -3
		0x4C, 0x05, 0x80, // JMP $8005
	})
	cpu.Run()

	if cpu.X != 0 {
		t.Errorf("X = %02X, want 00\nstate: %s", cpu.X, spew.Sdump(snapshot(cpu)))
	}
	if cpu.GetFlag(FlagZero) != 1 {
		t.Errorf("Z = 0, want 1")
	}
}

func TestProgramShiftsAndRotates(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0xA9, 0x81, // LDA #$81
		0x0A,       // ASL A
		0x6A,       // ROR A
		0x4A,       // LSR A
		0x4C, 0x05, 0x80, // JMP $8005
	})
	cpu.Reset()

	cpu.Step() // LDA
	cpu.Step() // ASL
	if cpu.A != 0x02 || cpu.GetFlag(FlagCarry) != 1 {
		t.Fatalf("after ASL: A = %02X C = %d, want A=02 C=1", cpu.A, cpu.GetFlag(FlagCarry))
	}
	cpu.Step() // ROR with C=1
	if cpu.A != 0x81 || cpu.GetFlag(FlagCarry) != 0 {
		t.Fatalf("after ROR: A = %02X C = %d, want A=81 C=0", cpu.A, cpu.GetFlag(FlagCarry))
	}
	cpu.Step() // LSR
	if cpu.A != 0x40 || cpu.GetFlag(FlagCarry) != 1 {
		t.Fatalf("after LSR: A = %02X C = %d, want A=40 C=1", cpu.A, cpu.GetFlag(FlagCarry))
	}
}

func TestProgramBCDArithmetic(t *testing.T) {
	cpu := New()
	cpu.Load([]uint8{
		0xA9, 0x05, // LDA #$05
		0x69, 0x0A, // ADC #$0A  (binary)
		0xAA,       // TAX
		0xF8,       // SED
		0xA9, 0x05, // LDA #$05
		0x18,       // CLC
		0x69, 0x10, // ADC #$10  (decimal)
		0x4C, 0x0B, 0x80, // JMP $800B
	})
	cpu.Run()

	if cpu.X != 0x0F {
		t.Errorf("X = %02X, want 0F (binary 5 + 10)", cpu.X)
	}
	if cpu.A != 0x15 {
		t.Errorf("A = %02X, want 15 (decimal 05 + 10)", cpu.A)
	}
}

// TestKlausFunctional runs the Klaus Dormann functional test ROM when
// present under testdata/. The ROM exercises every documented opcode
// including decimal mode and traps at 0x3469 once every subtest has
// passed; any other trap address is a failure.
func TestKlausFunctional(t *testing.T) {
	filename := filepath.Join(testDir, "6502_functional_test.bin")
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		t.Skipf("%s not present", filename)
	}

	rom, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatalf("can't read ROM: %v", err)
	}

	cpu := New()
	for i, b := range rom {
		cpu.write(uint16(i), b)
	}
	cpu.PC = 0x0400

	const successTrap = uint16(0x3469)
	for {
		prev := cpu.PC
		cpu.Step()
		if cpu.PC == prev {
			break
		}
	}
	if cpu.PC != successTrap {
		t.Fatalf("CPU looping at PC: 0x%04X\nstate: %s", cpu.PC, spew.Sdump(snapshot(cpu)))
	}
}
