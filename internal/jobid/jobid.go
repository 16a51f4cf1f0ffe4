// Package jobid issues unique identifiers for download jobs. IDs carry a
// timestamp prefix for human-readable ordering; uniqueness within the same
// second is guaranteed by an atomic sequence plus a random suffix.
package jobid

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	idPrefix        = "dl"
	timestampLayout = "20060102_150405"
)

// Generator produces job IDs. The zero value is not usable; create one with
// NewGenerator.
type Generator struct {
	seq atomic.Uint64
}

// NewGenerator creates a new ID generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns an ID that has never been returned by this generator.
func (g *Generator) Next() string {
	ts := time.Now().UTC().Format(timestampLayout)
	seq := g.seq.Add(1)
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%s_%06d_%s", idPrefix, ts, seq, suffix)
}
