package gstile

// Hasher is a rolling hash over a sliding window of fixed width w (the
// current RKR-GST search length, spec §4.1). It is a cyclic-polynomial
// ("Buzhash"-like) hash: each token is mapped to a pseudo-random 64-bit
// constant from a fixed table, and the window hash is the XOR of those
// constants, each rotated left by its distance from the window's end.
// Sliding the window by one position costs O(1): XOR out the leaving
// token's constant (rotated by w-1), rotate the running hash by one, XOR
// in the entering token's constant.
//
// Any O(1)-roll rolling hash satisfies spec §4.1's contract; this one is
// chosen (over, say, classic Rabin-Karp modular arithmetic, as the
// teacher's rabin_karp.go uses) because XOR/rotate avoids the modulo and
// multiply-heavy inner loop, and because it degrades gracefully for the
// small, low-entropy token alphabets (source tokens, log templates) this
// library typically sees. Adversarial inputs can still defeat any fixed
// hash family; collisions are always re-verified token-by-token before a
// match is accepted (spec §4.3 step 2), so a bad hash only costs time,
// never correctness.
type Hasher struct {
	table  [256]uint64
	seq    Sequence
	w      int
	start  int
	hash   uint64
}

// tokenConstant derives this Hasher's pseudo-random 64-bit constant for a
// token via a splitmix64-style mix, then looks it up in a small table so
// repeated tokens reuse the same rotation-friendly constant.
func (h *Hasher) tokenConstant(t Token) uint64 {
	x := uint64(t)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return h.table[byte(x)]
}

func rol64(x uint64, k int) uint64 {
	k &= 63
	if k == 0 {
		return x
	}
	return (x << uint(k)) | (x >> uint(64-k))
}

// newHasherTable fills a 256-entry table of pseudo-random constants using
// a fixed seed, so the hash is deterministic across runs (spec §4.1
// "The hash must be deterministic").
func newHasherTable() [256]uint64 {
	var table [256]uint64
	seed := uint64(0x9E3779B97F4A7C15)
	for i := range table {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		table[i] = z
	}
	return table
}

var sharedHasherTable = newHasherTable()

// NewHasher constructs a Hasher; call Reset before first use.
func NewHasher() *Hasher {
	return &Hasher{table: sharedHasherTable}
}

// Reset initializes the Hasher over seq[start:start+w].
func (h *Hasher) Reset(seq Sequence, start, w int) {
	h.seq = seq
	h.w = w
	h.start = start
	var hash uint64
	for i := 0; i < w; i++ {
		hash ^= rol64(h.tokenConstant(seq[start+i]), w-1-i)
	}
	h.hash = hash
}

// Roll advances the window by one position in O(1): seq[start] leaves,
// seq[start+w] enters.
func (h *Hasher) Roll() {
	outgoing := h.tokenConstant(h.seq[h.start])
	h.hash = rol64(h.hash^rol64(outgoing, h.w-1), 1)
	h.start++
	h.hash ^= h.tokenConstant(h.seq[h.start+h.w-1])
}

// Value returns the current window's hash.
func (h *Hasher) Value() uint64 {
	return h.hash
}

// Start returns the current window's starting index.
func (h *Hasher) Start() int {
	return h.start
}
