// Package arr provides generic slice and map helpers for the appkit
// runtime: positional access with optional predicates, grouping, ordering,
// field plucking, key white/black-listing, and the usual slice toolbox.
//
// Helpers that need a named-field lookup (Pluck, Group, Order) take an
// explicit accessor function instead of reflecting over element types, so
// they work uniformly over structs, maps, and anything else the caller can
// project a key out of.
package arr
