// SPDX-License-Identifier: MIT

package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// solveCache memoizes priority results keyed by matrix content.
// The evaluator id is not part of the key: it never changes the weights.
type solveCache struct {
	lru *lru.Cache[string, priority.Result]

	hits   atomic.Uint64
	misses atomic.Uint64
}

func newSolveCache(size int) (*solveCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", size)
	}
	c, err := lru.New[string, priority.Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create solve cache: %w", err)
	}

	return &solveCache{lru: c}, nil
}

// matrixKey hashes labels and the IEEE-754 bits of every cell.
func matrixKey(m *pairwise.Matrix) string {
	h := sha256.New()
	var buf [8]byte
	for _, c := range m.Criteria() {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(c)))
		h.Write(buf[:])
		h.Write([]byte(c))
	}
	for _, row := range m.Rows() {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func (c *solveCache) get(key string) (priority.Result, bool) {
	if c == nil {
		return priority.Result{}, false
	}
	res, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return priority.Result{}, false
	}
	c.hits.Add(1)

	return cloneResult(res), true
}

func (c *solveCache) add(key string, res priority.Result) {
	if c != nil {
		c.lru.Add(key, cloneResult(res))
	}
}

// CacheStats reports solve cache usage.
type CacheStats struct {
	Items  int    `json:"items" yaml:"items"`
	Hits   uint64 `json:"hits" yaml:"hits"`
	Misses uint64 `json:"misses" yaml:"misses"`
}

func (c *solveCache) stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}

	return CacheStats{Items: c.lru.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// cloneResult deep-copies the slices and map so cached entries stay immutable.
func cloneResult(r priority.Result) priority.Result {
	out := r
	out.Criteria = append([]string(nil), r.Criteria...)
	out.Vector = append([]float64(nil), r.Vector...)
	out.Rank = append([]string(nil), r.Rank...)
	out.Weights = make(map[string]float64, len(r.Weights))
	for k, v := range r.Weights {
		out.Weights[k] = v
	}

	return out
}
