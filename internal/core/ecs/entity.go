package ecs

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. Generation increments on release so a handle
// held across a sweep never resolves to the slot's next occupant.
// Generations start at 1, which keeps the zero ID permanently invalid.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// EntityPool hands out generational handles and recycles released slots.
type EntityPool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
	live        int
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		generations: make([]uint32, 0, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

func (p *EntityPool) Create() EntityID {
	p.live++
	if len(p.freeList) > 0 {
		idx := p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
		return NewEntityID(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	if int(idx) >= len(p.generations) {
		p.generations = append(p.generations, 1)
	}
	return NewEntityID(idx, p.generations[idx])
}

func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	if idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == id.Generation()
}

func (p *EntityPool) Destroy(id EntityID) {
	if !p.Alive(id) {
		return // stale handle
	}
	idx := id.Index()
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
	p.live--
}

// Live returns the number of handles created and not yet destroyed.
func (p *EntityPool) Live() int { return p.live }

// Reset invalidates every outstanding handle.
func (p *EntityPool) Reset() {
	for i := range p.generations[:p.nextIndex] {
		p.generations[i]++
	}
	p.freeList = p.freeList[:0]
	for i := p.nextIndex; i > 0; i-- {
		p.freeList = append(p.freeList, i-1)
	}
	p.live = 0
}
