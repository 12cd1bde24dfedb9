package cache

// Statistics is a read-only side channel the engine maintains alongside the
// trace. It never affects trace output and has no bearing on correctness;
// it exists purely for optional diagnostic reporting.
type Statistics struct {
	Reads      uint64
	Writes     uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Writebacks uint64
}
