// Package parser interprets the structural event stream of a clock
// configuration document.
//
// A Machine walks an explicit finite-state automaton over (state, event kind)
// pairs. Every accepted pair has an entry in the transition table; anything
// else is a StructuralError and the parse stops without trying to recover.
// Scalars in key positions are classified into Keywords before dispatch.
//
// The result is a Context owning the settings store, the font table and the
// alarm registry. Collaborators read it through Settings, Font, Alarms and
// Snapshot.
package parser
