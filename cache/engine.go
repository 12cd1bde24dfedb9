package cache

// Engine is the set-associative write-back, write-allocate cache. It owns
// the Array and drives the BackingStore and Logger; it never exposes the
// Array to callers directly.
type Engine struct {
	geometry Geometry
	array    *Array
	backing  BackingStore
	logger   Logger
	stats    Statistics
}

// New constructs an Engine over the given geometry, backed by backing and
// logging every transfer to logger.
func New(geometry Geometry, backing BackingStore, logger Logger) *Engine {
	return &Engine{
		geometry: geometry,
		array:    NewArray(geometry),
		backing:  backing,
		logger:   logger,
	}
}

// Stats returns a snapshot of the engine's access statistics.
func (e *Engine) Stats() Statistics {
	return e.stats
}

// Read performs a cache read of one word at address, filling or evicting as
// needed, and logs the resulting processor-facing transfer.
func (e *Engine) Read(address int) int32 {
	o := e.geometry.Offset(address)
	s := e.geometry.SetIndex(address)
	t := e.geometry.Tag(address)
	base := e.geometry.BlockBase(address)

	e.ageSet(s)
	way := e.locateOrAllocate(s, t, base)

	entry := e.array.At(s, way)
	entry.Age = 0
	entry.Valid = true
	entry.Tag = t

	e.stats.Reads++
	e.logger.Log(CacheToProcessor, address, address)

	return entry.Data[o]
}

// Write performs a cache write of one word to address under write-back,
// write-allocate policy, and logs the resulting processor-facing transfer.
func (e *Engine) Write(address int, value int32) {
	o := e.geometry.Offset(address)
	s := e.geometry.SetIndex(address)
	t := e.geometry.Tag(address)
	base := e.geometry.BlockBase(address)

	e.ageSet(s)
	way := e.locateOrAllocate(s, t, base)

	entry := e.array.At(s, way)
	entry.Age = 0
	entry.Valid = true
	entry.Tag = t
	entry.Dirty = true
	entry.Data[o] = value

	e.stats.Writes++
	e.logger.Log(ProcessorToCache, address, address)
}

// Flush writes back every dirty block and invalidates every entry, in
// ascending (set, way) order. It is invoked exactly once, when the
// interpreter executes HALT.
func (e *Engine) Flush() {
	for s := 0; s < e.array.NumSets(); s++ {
		for w := 0; w < e.array.Associativity(); w++ {
			entry := e.array.At(s, w)
			if entry.Dirty {
				e.writeBlock(entry)
				e.logger.Log(CacheToMemory, entry.BaseAddress, entry.BaseAddress+e.geometry.BlockSize-1)
				e.stats.Writebacks++
				entry.Dirty = false
			}
			entry.Valid = false
		}
	}
}

// ageSet increments the age of every valid way in set s, ahead of
// locate-or-allocate choosing (and resetting) the touched way.
func (e *Engine) ageSet(s int) {
	for w := 0; w < e.array.Associativity(); w++ {
		entry := e.array.At(s, w)
		if entry.Valid {
			entry.Age++
		}
	}
}

// locateOrAllocate implements the hit-scan / empty-scan / evict-LRU search
// within set s for tag t, returning the way to use. Ascending-index
// tie-breaks in every scan keep the result deterministic.
func (e *Engine) locateOrAllocate(s, t, base int) int {
	ways := e.array.Associativity()

	for w := 0; w < ways; w++ {
		entry := e.array.At(s, w)
		if entry.Valid && entry.Tag == t {
			e.stats.Hits++
			return w
		}
	}

	for w := 0; w < ways; w++ {
		if !e.array.At(s, w).Valid {
			e.stats.Misses++
			e.fill(s, w, base)
			return w
		}
	}

	victim := e.findLRU(s)
	entry := e.array.At(s, victim)
	if entry.Dirty {
		e.writeBlock(entry)
		e.logger.Log(CacheToMemory, entry.BaseAddress, entry.BaseAddress+e.geometry.BlockSize-1)
		e.stats.Writebacks++
		entry.Dirty = false
	} else {
		e.logger.Log(CacheToNowhere, entry.BaseAddress, entry.BaseAddress+e.geometry.BlockSize-1)
	}
	e.stats.Evictions++
	e.stats.Misses++
	e.fill(s, victim, base)
	return victim
}

// findLRU returns the valid way in set s with the maximum age, breaking
// ties toward the lowest way index.
func (e *Engine) findLRU(s int) int {
	victim := 0
	maxAge := -1
	for w := 0; w < e.array.Associativity(); w++ {
		age := e.array.At(s, w).Age
		if age > maxAge {
			maxAge = age
			victim = w
		}
	}
	return victim
}

// fill loads a block from the backing store into the given way and logs the
// transfer. Tag/valid/dirty/age are left for the caller to set.
func (e *Engine) fill(s, w, base int) {
	entry := e.array.At(s, w)
	e.logger.Log(MemoryToCache, base, base+e.geometry.BlockSize-1)
	for i := 0; i < e.geometry.BlockSize; i++ {
		entry.Data[i] = e.backing.ReadWord(base + i)
	}
	entry.BaseAddress = base
}

// writeBlock copies an entry's resident block back to the backing store.
func (e *Engine) writeBlock(entry *Entry) {
	for i, word := range entry.Data {
		e.backing.WriteWord(entry.BaseAddress+i, word)
	}
}
