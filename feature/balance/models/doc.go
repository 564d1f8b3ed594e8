// Package models defines the data structures shared by the balance pipeline.
//
// # Types
//
//   - Category / Mask: a single OBJ_MASK flag and a bitset of flags carried by a unit.
//   - UnitIndex: ordered unit name -> category membership, built from unitrules.xml.
//   - ModifierTable: ordered sparse entry -> target -> percentage, read from balance.xml.
//   - Table: the dense square output table written back as balance.xml.
//   - Diagnostics: non-fatal warnings collected while building the above.
//
// Every ordered structure keeps first-seen order so the written table is
// byte-identical between runs on the same input.
package models
