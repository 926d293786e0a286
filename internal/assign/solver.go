// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package assign solves the token-pairing assignment problem: given two
// token sequences and a pairwise score function, it finds the one-to-one
// partial matching with the globally maximal total score. Greedy per-token
// matching is provably suboptimal when one token is the best match for two
// opposing tokens, so the solver runs the Hungarian algorithm (O(n^3))
// rather than any heuristic.
package assign

import "sort"

// Pair links token A (by position in the first sequence) with token B (by
// position in the second) at the given score.
type Pair struct {
	A     int
	B     int
	Score int
}

const (
	// weightScale separates raw score totals from tie-break perturbations:
	// perturbations always sum to less than one scaled score unit.
	weightScale = 1024
	// alignBonusMax is the largest per-pair tie-break bonus, awarded to
	// position-aligned pairs. With at most 16 pairs carrying a bonus the
	// perturbation total stays below weightScale.
	alignBonusMax = 63
	// alignBonusLimit disables the perturbation for absurdly long inputs
	// where the bonus sum could no longer be bounded below weightScale.
	alignBonusLimit = 16
)

// Solve finds the maximum-total-score one-to-one partial matching between
// positions 0..m-1 and 0..n-1. Pairs scoring below floor are rejected: the
// corresponding tokens stay unmatched instead of dragging the pairing down.
// When several pairings tie on total score, the one whose matched indices
// are closest to identity order wins, which keeps results deterministic and
// position-aligned. Returned pairs are ordered by A.
//
// The score function must be free of side effects; it is called at most
// once per (a, b) combination.
func Solve(m, n int, score func(a, b int) int, floor int) []Pair {
	if m == 0 || n == 0 {
		return nil
	}

	size := m
	if n > size {
		size = n
	}

	raw := make([][]int, m)
	for i := 0; i < m; i++ {
		raw[i] = make([]int, n)
		for j := 0; j < n; j++ {
			raw[i][j] = score(i, j)
		}
	}

	// Build the padded square weight matrix. Sub-floor and padding cells
	// weigh zero, which makes "leave unmatched" exactly as attractive as
	// any rejected pairing; rejected cells are filtered from the output.
	weights := make([][]int64, size)
	for i := range weights {
		weights[i] = make([]int64, size)
		if i >= m {
			continue
		}
		for j := 0; j < n; j++ {
			s := raw[i][j]
			if s < floor {
				continue
			}
			w := int64(s) * weightScale
			if size <= alignBonusLimit {
				w += alignBonus(i, j)
			}
			weights[i][j] = w
		}
	}

	assignment := maxWeightAssignment(weights)

	var pairs []Pair
	for i := 0; i < m; i++ {
		j := assignment[i]
		if j < 0 || j >= n {
			continue
		}
		if raw[i][j] < floor {
			continue
		}
		pairs = append(pairs, Pair{A: i, B: j, Score: raw[i][j]})
	}
	sort.Slice(pairs, func(x, y int) bool { return pairs[x].A < pairs[y].A })
	return pairs
}

// alignBonus rewards position-aligned pairs, decaying with displacement.
func alignBonus(i, j int) int64 {
	d := i - j
	if d < 0 {
		d = -d
	}
	if d >= alignBonusMax {
		return 0
	}
	return int64(alignBonusMax - d)
}

// maxWeightAssignment computes a perfect matching of maximal total weight
// on a square matrix, returning the column assigned to each row. It is the
// classic Hungarian algorithm with potentials, run on costs derived by
// subtracting each weight from the matrix maximum.
func maxWeightAssignment(weights [][]int64) []int {
	n := len(weights)

	var maxW int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if weights[i][j] > maxW {
				maxW = weights[i][j]
			}
		}
	}

	const inf = int64(1) << 62

	// 1-based arrays; p[j] is the row matched to column j.
	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	cost := func(i, j int) int64 { return maxW - weights[i-1][j-1] }

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0, j) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			assignment[p[j]-1] = j - 1
		}
	}
	return assignment
}
