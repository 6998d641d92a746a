package alloc

import (
	"os"
	"strconv"
	"sync/atomic"

	"github.com/brickingsoft/errors"
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "alloc"
	errMetaOpKey  = "op"
)

// BudgetConfig configures a memory budget.
type BudgetConfig struct {
	// HardLimit is the maximum number of bytes the budget hands out at the
	// same time. A value <= 0 means unlimited.
	HardLimit int64
}

// Stats is a snapshot of a budget's accounting.
type Stats struct {
	Limit    int64  // hard limit in bytes, <= 0 if unlimited
	InUse    int64  // bytes currently handed out
	Peak     int64  // high-water mark of InUse
	Allocs   uint64 // successful Alloc and Realloc calls
	Failures uint64 // refused requests
}

// Budget is an allocator which tracks the bytes it has handed out and refuses
// requests which would exceed a hard limit.
//
// A budget may be shared between buffers living on different goroutines;
// accounting is lock-free. The buffers themselves are not synchronized.
type Budget struct {
	limit    atomic.Int64
	inUse    atomic.Int64
	peak     atomic.Int64
	allocs   atomic.Uint64
	failures atomic.Uint64
}

// NewBudget creates a budget allocator from a configuration.
func NewBudget(cfg BudgetConfig) *Budget {
	b := &Budget{}
	b.limit.Store(cfg.HardLimit)
	return b
}

// BudgetFromEnvironment creates a budget configured from the environment.
//
// SSTRING_DISABLE_BUDGET=1 makes the budget unlimited. Otherwise
// SSTRING_HARD_LIMIT is read as a byte count. Missing or malformed values
// leave the budget unlimited.
func BudgetFromEnvironment() *Budget {
	cfg := BudgetConfig{}
	if getEnv("DISABLE_BUDGET") == "1" {
		return NewBudget(cfg)
	}
	if v := getEnv("HARD_LIMIT"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			tracer().Errorf("alloc: ignoring malformed SSTRING_HARD_LIMIT=%q", v)
		} else {
			cfg.HardLimit = limit
		}
	}
	tracer().Debugf("alloc: budget from environment, hard limit = %d", cfg.HardLimit)
	return NewBudget(cfg)
}

// getEnv returns the value of the SSTRING_<key> environment variable.
func getEnv(key string) string {
	return os.Getenv("SSTRING_" + key)
}

// SetLimit changes the hard limit. Blocks already handed out are not affected,
// even if they exceed the new limit.
func (b *Budget) SetLimit(limit int64) {
	b.limit.Store(limit)
}

// Stats returns a snapshot of the budget's accounting.
func (b *Budget) Stats() Stats {
	return Stats{
		Limit:    b.limit.Load(),
		InUse:    b.inUse.Load(),
		Peak:     b.peak.Load(),
		Allocs:   b.allocs.Load(),
		Failures: b.failures.Load(),
	}
}

// Alloc returns n zeroed bytes if the budget allows it.
func (b *Budget) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if !b.acquire(int64(n)) {
		return nil, b.refuse("alloc", n)
	}
	b.allocs.Add(1)
	return make([]byte, n), nil
}

// Realloc resizes old to n bytes if the budget allows growing by the difference.
// Shrinking always succeeds. On failure old is untouched.
func (b *Budget) Realloc(old []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	delta := int64(n - len(old))
	if delta > 0 {
		if !b.acquire(delta) {
			return nil, b.refuse("realloc", n)
		}
	} else {
		b.release(-delta)
	}
	b.allocs.Add(1)
	return resize(old, n), nil
}

// Free gives the bytes of block back to the budget.
func (b *Budget) Free(block []byte) {
	b.release(int64(len(block)))
}

func (b *Budget) acquire(n int64) bool {
	for {
		cur := b.inUse.Load()
		next := cur + n
		if limit := b.limit.Load(); limit > 0 && next > limit {
			return false
		}
		if b.inUse.CompareAndSwap(cur, next) {
			b.notePeak(next)
			return true
		}
	}
}

func (b *Budget) release(n int64) {
	if n == 0 {
		return
	}
	if b.inUse.Add(-n) < 0 {
		// a block freed twice or freed to the wrong budget
		tracer().Errorf("alloc: budget accounting went negative")
		b.inUse.Store(0)
	}
}

func (b *Budget) notePeak(v int64) {
	for {
		p := b.peak.Load()
		if v <= p || b.peak.CompareAndSwap(p, v) {
			return
		}
	}
}

func (b *Budget) refuse(op string, n int) error {
	b.failures.Add(1)
	tracer().Infof("alloc: %s of %d bytes refused, %d of %d bytes in use",
		op, n, b.inUse.Load(), b.limit.Load())
	return errors.New(
		"allocation refused",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithWrap(ErrBudgetExceeded),
	)
}

var _ Allocator = (*Budget)(nil)
