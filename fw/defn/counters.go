package defn

// NodeCounters are the forwarding counters of a single node.
type NodeCounters struct {
	NPitEntries         int
	NCsEntries          int
	NInInterests        uint64
	NInData             uint64
	NOutInterests       uint64
	NOutData            uint64
	NSatisfiedInterests uint64
	NExpiredInterests   uint64
	NCsHits             uint64
	NCsMisses           uint64
	NNoRoute            uint64
}
