// Package momepy computes morphometric intensity indicators for urban
// form analysis: per-unit scalars (counts, densities, ratios) aggregated
// over a topological neighborhood graph of buildings, plots, street
// segments, and street network nodes.
//
// 🚀 What is momepy?
//
//	A small, focused library that brings together:
//		• adjacency/ — the immutable unit-adjacency graph, 1-hop neighborhood
//		  expansion, and connected-component closure (roaring-bitmap sets)
//		• aggregate/ — count/sum/mean/std reductions with an explicit
//		  optional result type (Undefined is not 0)
//		• table/     — the in-memory tabular-join collaborator for secondary
//		  record tables keyed by unit id
//		• intensity/ — the indicators themselves: ElementsCount, Courtyards,
//		  BlocksCount, Reached, NodeDensity, CoveredAreaRatio, FloorAreaRatio
//
// Geometry stays outside: areas, lengths, kinds, and footprint unions are
// consumed through narrow interfaces, so any GIS backend can plug in.
// Every indicator returns a Series aligned one-to-one with the input unit
// order, the single artifact a caller attaches as a new column.
//
// Per-unit work is independent by construction; pass WithWorkers(n) to
// any indicator to fan the unit map out on a bounded errgroup.
package momepy
