package search

// This file documents, without implementing, where a hardware-
// accelerated entity-seed search would plug in.
//
// The teacher's own CPU/GPU split (internal/cuda, `//go:build cuda`
// vs `!cuda`) offloaded its combinatorial search to an Nvidia kernel
// behind a CGO bridge when built with the `cuda` tag. The same seam
// applies here in principle: a `//go:build cuda` sibling to
// native_portable.go could offload searchChunk's inner loop to a GPU
// or FPGA kernel with an identical FindEntitySeeds signature.
//
// No such file exists in this repository — the native path was never
// part of the core contract, only the portable CPU path. Adding one
// means writing a new `native_cuda.go` that satisfies the same
// FindEntitySeeds signature declared in native_portable.go; nothing
// else in this package would need to change.
