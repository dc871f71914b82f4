// Package macro implements a two-pass macroprocessor.
//
// Pass I folds every MACRO..MEND block into a macro name table and a macro
// definition table, rewriting formal parameters as positional placeholders,
// and emits all remaining lines as the intermediate listing. Pass II replays
// the intermediate listing, expanding each call of a known macro by
// substituting its actual arguments for the placeholders. The tables are
// write-once: expansion never modifies them.
package macro
