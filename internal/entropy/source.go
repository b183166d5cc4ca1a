// Package entropy derives pseudo-random values from a pair of monotonically
// increasing external counters plus a caller seed.
//
// The derivation is NOT cryptographically secure. An adversary who can predict
// or influence the clock and sequence values ahead of a call can predict every
// output. This is a known, accepted weakness inherited from the on-chain
// drop-rate contract; a deployment that needs unpredictability must source
// entropy from a verifiable-randomness provider instead of this package.
package entropy

import (
	"math"
	"sync/atomic"
	"time"
)

// Next derives a value in [0, 2^32-1) from the two external counters and a
// seed. Pure and total: wraparound 64-bit multiply and add, then reduction
// modulo MaxUint32. The reduction matches the published contract bit-for-bit
// and must not be "fixed" to a power-of-two modulus.
func Next(timestamp, sequence, seed uint64) uint32 {
	combined := timestamp*sequence + seed
	return uint32(combined % math.MaxUint32)
}

// Ledger supplies the two external counters the derivation mixes. In the
// upstream chain deployment these are the ledger close time and ledger
// sequence number.
type Ledger interface {
	Timestamp() uint64
	Sequence() uint64
}

// SystemLedger implements Ledger off the wall clock and an in-process
// counter that advances on every read, approximating the block sequence the
// on-chain deployment reads.
type SystemLedger struct {
	seq atomic.Uint64
}

// NewSystemLedger creates a SystemLedger with a non-zero starting sequence so
// the multiply never degenerates to zero on the first roll.
func NewSystemLedger() *SystemLedger {
	l := &SystemLedger{}
	l.seq.Store(1)
	return l
}

// Timestamp returns the current wall-clock time in unix seconds.
func (l *SystemLedger) Timestamp() uint64 {
	return uint64(time.Now().Unix())
}

// Sequence returns the current sequence value and advances it.
func (l *SystemLedger) Sequence() uint64 {
	return l.seq.Add(1)
}
