// Package asm implements a two-pass assembler for a small pseudo-machine.
//
// Pass I walks the source once, assigning a location counter to every
// statement, collecting labels into the symbol table and literals into the
// literal table, and emitting the intermediate listing. Pass II walks the
// intermediate listing and resolves operands against those tables to
// produce the object program as header, text, and end records.
//
// Forward references are never resolved during Pass I; all resolution
// happens in Pass II, which treats the Pass I tables as immutable.
// Directive operands may carry compile-time $( ... ) expressions over
// equates defined with EQU.
package asm
