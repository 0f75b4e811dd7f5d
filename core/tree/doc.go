// Package tree models locale translation trees and their flat, dotted-path projection.
//
// A locale file is a nested mapping rooted at a single locale segment:
//
//	en:
//	  users:
//	    title: Users
//	    empty: No users yet
//
// The same data flattened below the locale root becomes a FlatMap:
//
//	users.title -> "Users"
//	users.empty -> "No users yet"
//
// Every reconciliation in this module happens on FlatMaps, so the conversion in both
// directions is the foundation of the whole system.
//
// # Types
//
//   - Key: a validated sequence of segments, joined by Delimiter when flattened.
//   - Node: a map from segment to either a nested Node or a leaf value.
//   - FlatMap: dotted path -> leaf value.
//   - KeySet: a set of dotted paths, used as the comparison side of set operations.
//
// Leaves are opaque. Strings, numbers, booleans, nil and sequences are carried through
// untouched; only mappings are descended into.
//
// # Invariants
//
// Segments never contain Delimiter and are never empty. Segment strings are not escaped,
// so callers building trees by hand must preserve this; Flatten and ParseKey reject
// violations with ErrInvalidKey.
//
// A path can not be both a leaf and the parent of other paths. Unflatten and Set report
// such collisions as ErrStructuralConflict instead of resolving them silently.
//
// # Round trip
//
// For any Node without empty sub-nodes, Unflatten(Flatten(n)) equals n. Empty nodes carry
// no leaves and therefore vanish on the way through a FlatMap.
//
// # Ordering
//
// Node and FlatMap are plain Go maps and have no order. Writers call SortedKeys (or
// FlatMap.Keys) to emit keys in lexicographic order at every level.
package tree
