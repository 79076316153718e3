package shuffle

import (
	"fmt"

	"github.com/alttpx/linkshuffle/sheet"
)

// ConfigError reports a policy that asks for resources which were not
// supplied or a combination of modes that selects nothing.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// ConfigErrorf returns a ConfigError with a formatted message.
func ConfigErrorf(format string, a ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, a...)}
}

// BucketMode selects which pools shuffle and whether they share one
// bucket.
type BucketMode int

const (
	// BucketsNone disables cosmetic shuffling; only meaningful together
	// with bunny substitution.
	BucketsNone BucketMode = iota
	// BucketsHead shuffles head cells among themselves.
	BucketsHead
	// BucketsBody shuffles body cells among themselves.
	BucketsBody
	// BucketsHeadBody shuffles heads and bodies, each within their own
	// bucket.
	BucketsHeadBody
	// BucketsChaos merges heads and bodies into a single bucket.
	BucketsChaos
)

// MultiMode selects how auxiliary sprites contribute tiles.
type MultiMode int

const (
	// MultiNone permutes tiles of the primary sprite only.
	MultiNone MultiMode = iota
	// MultiSimple draws each destination cell from the same cell of a
	// randomly chosen sprite.
	MultiSimple
	// MultiFull draws both the sprite and the cell at random.
	MultiFull
)

// Policy is a validated shuffle configuration. The zero value is not
// valid; use NewPolicy.
type Policy struct {
	buckets BucketMode
	multi   MultiMode
	bunny   bool
}

// NewPolicy validates and builds a Policy. Bunny substitution may be
// combined with any bucket mode; a multi-source mode without a shuffle
// bucket, or a policy that selects nothing at all, is rejected.
func NewPolicy(buckets BucketMode, multi MultiMode, bunny bool) (Policy, error) {
	if buckets < BucketsNone || buckets > BucketsChaos {
		return Policy{}, ConfigErrorf("shuffle: unknown bucket mode %d", buckets)
	}
	if multi < MultiNone || multi > MultiFull {
		return Policy{}, ConfigErrorf("shuffle: unknown multi-source mode %d", multi)
	}
	if buckets == BucketsNone {
		if multi != MultiNone {
			return Policy{}, ConfigErrorf("shuffle: multi-source mode without a shuffle bucket")
		}
		if !bunny {
			return Policy{}, ConfigErrorf("shuffle: policy selects nothing to shuffle")
		}
	}
	return Policy{buckets: buckets, multi: multi, bunny: bunny}, nil
}

// Buckets returns the pool groups that each share one shuffle draw.
// Bunny cells are never part of any bucket.
func (p Policy) Buckets() [][]sheet.Pool {
	switch p.buckets {
	case BucketsHead:
		return [][]sheet.Pool{{sheet.PoolHead}}
	case BucketsBody:
		return [][]sheet.Pool{{sheet.PoolBody}}
	case BucketsHeadBody:
		return [][]sheet.Pool{{sheet.PoolHead}, {sheet.PoolBody}}
	case BucketsChaos:
		return [][]sheet.Pool{{sheet.PoolHead, sheet.PoolBody}}
	}
	return nil
}

// NeedsAux reports whether the policy requires at least one auxiliary
// sprite.
func (p Policy) NeedsAux() bool {
	return p.multi != MultiNone || p.bunny
}

// Check verifies that the policy can run with the given number of
// auxiliary sprites.
func (p Policy) Check(aux int) error {
	if p.NeedsAux() && aux == 0 {
		return ConfigErrorf("shuffle: policy requires auxiliary sprites but none were supplied")
	}
	return nil
}

// String names the policy the way the output file prefix spells it.
func (p Policy) String() string {
	switch p.buckets {
	case BucketsHead:
		return "head"
	case BucketsBody:
		return "body"
	case BucketsHeadBody:
		return "full"
	case BucketsChaos:
		return "chaos"
	}
	return "bunny"
}
