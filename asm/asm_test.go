package asm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var source = []Source{
	{Label: "COPY", Opcode: "START", Operand: "1000"},
	{Label: "LOOP", Opcode: "LDA", Operand: "TEN"},
	{Opcode: "ADD", Operand: "ONE"},
	{Opcode: "JLT", Operand: "LOOP"},
	{Opcode: "STA", Operand: "RESULT"},
	{Opcode: "LDA", Operand: "=C'EOF'"},
	{Label: "TEN", Opcode: "WORD", Operand: "10"},
	{Label: "ONE", Opcode: "RESW", Operand: "1"},
	{Label: "RESULT", Opcode: "RESB", Operand: "3"},
	{Opcode: "END"},
}

func TestPassOne(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne(source)
	assert.NoError(err)

	assert.Equal("COPY", unit.Name)
	assert.Equal(0x1000, unit.Start)
	assert.Equal(0x1B, unit.Length)

	assert.Equal(map[string]int{
		"LOOP":   0x1000,
		"TEN":    0x100F,
		"ONE":    0x1012,
		"RESULT": 0x1015,
	}, unit.Symbols)

	assert.Equal([]Literal{
		{Text: "=C'EOF'", Addr: 0x1018, Length: 3},
	}, unit.Literals)

	assert.Empty(unit.Diagnostics)

	lcs := []int{}
	for _, line := range unit.Intermediate {
		lcs = append(lcs, line.LC)
	}
	assert.Equal([]int{0x1000, 0x1000, 0x1003, 0x1006, 0x1009, 0x100C, 0x100F, 0x1012, 0x1015, 0x1018}, lcs)
}

func TestRecords(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne(source)
	assert.NoError(err)

	records, diags := unit.Records()
	assert.Empty(diags)
	assert.Equal([]string{
		"HCOPY  100000001B",
		"T10001200100F1810123810000C101500101800000A",
		"E1000",
	}, records)
}

func TestRecordsUnresolved(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne([]Source{
		{Label: "P", Opcode: "START", Operand: "1000"},
		{Opcode: "LDA", Operand: "MISSING"},
		{Opcode: "END"},
	})
	assert.NoError(err)

	records, diags := unit.Records()
	assert.Equal([]string{
		"HP     1000000003",
		"T1000" + "03" + "000000",
		"E1000",
	}, records)
	assert.Equal([]string{
		"Warning: Symbol/Literal 'MISSING' not found. Using address 0000.",
	}, diags)
}

func TestRecordsTextBudget(t *testing.T) {
	assert := assert.New(t)

	// 11 word-sized instructions overflow the 30-byte text record budget;
	// the eleventh opens a fresh record at its own location counter.
	src := []Source{{Opcode: "START", Operand: "100"}}
	for range 11 {
		src = append(src, Source{Opcode: "LDA"})
	}
	src = append(src, Source{Opcode: "END"})

	asm := &Assembler{}
	unit, err := asm.PassOne(src)
	assert.NoError(err)

	records, diags := unit.Records()
	assert.Empty(diags)
	assert.Equal([]string{
		"H      0100000021",
		"T01001E" + strings.Repeat("000000", 10),
		"T011E03000000",
		"E0100",
	}, records)
}

func TestPassOneDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne([]Source{
		{Label: "P", Opcode: "START", Operand: "0"},
		{Label: "A", Opcode: "WORD", Operand: "1"},
		{Label: "A", Opcode: "WORD", Operand: "2"},
		{Opcode: "END"},
	})
	assert.NoError(err)

	// The later definition overwrites the earlier address.
	assert.Equal(3, unit.Symbols["A"])
	assert.Equal([]string{"Error: Duplicate label 'A' at LC 0003"}, unit.Diagnostics)
}

func TestPassOneByte(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne([]Source{
		{Label: "P", Opcode: "START", Operand: "0"},
		{Label: "CH", Opcode: "BYTE", Operand: "C'AB'"},
		{Label: "HX", Opcode: "BYTE", Operand: "X'F1'"},
		{Label: "W", Opcode: "WORD", Operand: "5"},
		{Opcode: "END"},
	})
	assert.NoError(err)

	assert.Equal(0, unit.Symbols["CH"])
	assert.Equal(2, unit.Symbols["HX"])
	assert.Equal(3, unit.Symbols["W"])
	assert.Equal(6, unit.Length)

	records, diags := unit.Records()
	assert.Empty(diags)
	assert.Equal("T0000064142F1000005", records[1])
}

func TestPassOneByteMalformed(t *testing.T) {
	assert := assert.New(t)

	// Truncated constants assemble to no code with a diagnostic, and a
	// truncated literal still reserves a full word.
	asm := &Assembler{}
	unit, err := asm.PassOne([]Source{
		{Label: "P", Opcode: "START", Operand: "0"},
		{Label: "A", Opcode: "BYTE", Operand: "C'"},
		{Label: "B", Opcode: "BYTE", Operand: "X'"},
		{Opcode: "LDA", Operand: "=C'"},
		{Opcode: "END"},
	})
	assert.NoError(err)

	assert.Equal([]Literal{{Text: "=C'", Addr: 3, Length: 3}}, unit.Literals)
	assert.Equal(6, unit.Length)

	var records, diags []string
	assert.NotPanics(func() { records, diags = unit.Records() })
	assert.Equal([]string{
		"HP     0000000006",
		"T000003000003",
		"E0000",
	}, records)
	assert.Equal([]string{
		"Warning: BYTE operand 'C'' not convertible. No code generated.",
		"Warning: BYTE operand 'X'' not convertible. No code generated.",
	}, diags)
}

func TestPassOneEquates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne([]Source{
		{Label: "BUF", Opcode: "START"},
		{Label: "COUNT", Opcode: "EQU", Operand: "3"},
		{Label: "SIZE", Opcode: "EQU", Operand: "$(COUNT * 2)"},
		{Label: "A", Opcode: "RESB", Operand: "$(SIZE)"},
		{Label: "B", Opcode: "WORD", Operand: "$(COUNT)"},
		{Opcode: "END"},
	})
	assert.NoError(err)

	assert.Equal(map[string]int{"COUNT": 3, "SIZE": 6}, unit.Equates)
	assert.Equal(0, unit.Symbols["A"])
	assert.Equal(6, unit.Symbols["B"])
	assert.Equal(9, unit.Length)

	records, diags := unit.Records()
	assert.Empty(diags)
	assert.Equal([]string{
		"HBUF   0000000009",
		"T000603000003",
		"E0000",
	}, records)
}

func TestPassOneErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source []Source
		line   int
	}{
		{[]Source{{Opcode: "START", Operand: "XYZZY"}}, 1},
		{[]Source{{Opcode: "START"}, {Label: "A", Opcode: "RESW", Operand: "many"}}, 2},
		{[]Source{{Opcode: "START"}, {Opcode: "EQU", Operand: "1"}}, 2},
		{[]Source{{Opcode: "START"}, {Label: "A", Opcode: "EQU", Operand: "$(unbound)"}}, 2},
		{[]Source{{Opcode: "START"}, {Label: "A", Opcode: "RESB"}}, 2},
	}

	asm := &Assembler{}
	for _, entry := range table {
		_, err := asm.PassOne(entry.source)
		var se *ErrSyntax
		assert.NotNil(err)
		if err != nil {
			assert.True(errors.As(err, &se))
			assert.Equal(entry.line, se.LineNo)
		}
	}
}

func TestReport(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	unit, err := asm.PassOne(source)
	assert.NoError(err)

	var first, second bytes.Buffer
	unit.Report(&first)
	unit.Report(&second)

	assert.Equal(first.String(), second.String())
	assert.Contains(first.String(), "LOOP: 1000")
	assert.Contains(first.String(), "TEN: 100F")
	assert.Contains(first.String(), "=C'EOF': 1018 (Len: 3)")
	assert.Contains(first.String(), "[1018]  END ")
}
