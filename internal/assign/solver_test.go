// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assign

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixScorer(m [][]int) func(a, b int) int {
	return func(a, b int) int { return m[a][b] }
}

func total(pairs []Pair) int {
	sum := 0
	for _, p := range pairs {
		sum += p.Score
	}
	return sum
}

// bruteForceBest enumerates every one-to-one partial matching whose pairs
// all clear the floor and returns the maximal total score.
func bruteForceBest(m, n int, scores [][]int, floor int) int {
	usedB := make([]bool, n)
	var recurse func(a int) int
	recurse = func(a int) int {
		if a == m {
			return 0
		}
		// leave token a unmatched
		best := recurse(a + 1)
		for b := 0; b < n; b++ {
			if usedB[b] || scores[a][b] < floor {
				continue
			}
			usedB[b] = true
			if candidate := scores[a][b] + recurse(a+1); candidate > best {
				best = candidate
			}
			usedB[b] = false
		}
		return best
	}
	return recurse(0)
}

func TestSolveEmptyInputs(t *testing.T) {
	assert.Nil(t, Solve(0, 3, func(a, b int) int { return 100 }, 1))
	assert.Nil(t, Solve(3, 0, func(a, b int) int { return 100 }, 1))
}

func TestSolveIdentity(t *testing.T) {
	scores := [][]int{
		{100, 10},
		{10, 100},
	}
	pairs := Solve(2, 2, matrixScorer(scores), 1)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{A: 0, B: 0, Score: 100}, pairs[0])
	assert.Equal(t, Pair{A: 1, B: 1, Score: 100}, pairs[1])
}

// A greedy matcher would grab the 90 first and strand the second token at
// zero; the optimal pairing crosses over for a higher total.
func TestSolveBeatsGreedy(t *testing.T) {
	scores := [][]int{
		{90, 80},
		{85, 0},
	}
	pairs := Solve(2, 2, matrixScorer(scores), 1)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{A: 0, B: 1, Score: 80}, pairs[0])
	assert.Equal(t, Pair{A: 1, B: 0, Score: 85}, pairs[1])
	assert.Equal(t, 165, total(pairs))
}

func TestSolveFloorRejectsWeakPairs(t *testing.T) {
	scores := [][]int{
		{100, 0},
		{0, 40},
	}
	pairs := Solve(2, 2, matrixScorer(scores), 50)
	require.Len(t, pairs, 1)
	assert.Equal(t, Pair{A: 0, B: 0, Score: 100}, pairs[0])
}

func TestSolveUnevenSizes(t *testing.T) {
	// three tokens against two: exactly two pairs, the weakest token
	// stays unmatched
	scores := [][]int{
		{100, 5},
		{5, 100},
		{60, 60},
	}
	pairs := Solve(3, 2, matrixScorer(scores), 1)
	require.Len(t, pairs, 2)
	assert.Equal(t, 200, total(pairs))
}

// When several pairings tie on total score, the position-aligned one must
// win so results stay deterministic and intuitive.
func TestSolveTieBreakPrefersIdentityOrder(t *testing.T) {
	scores := [][]int{
		{70, 70},
		{70, 70},
	}
	pairs := Solve(2, 2, matrixScorer(scores), 1)
	require.Len(t, pairs, 2)
	assert.Equal(t, 0, pairs[0].B)
	assert.Equal(t, 1, pairs[1].B)
}

// Optimality property: for random score matrices the solver's total must
// equal the brute-force maximum over all feasible partial matchings.
func TestSolveOptimalityAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		m := 1 + rng.Intn(5)
		n := 1 + rng.Intn(5)
		floor := rng.Intn(40)

		scores := make([][]int, m)
		for i := range scores {
			scores[i] = make([]int, n)
			for j := range scores[i] {
				scores[i][j] = rng.Intn(101)
			}
		}

		pairs := Solve(m, n, matrixScorer(scores), floor)

		seenA := map[int]bool{}
		seenB := map[int]bool{}
		for _, p := range pairs {
			require.False(t, seenA[p.A], "token A %d paired twice", p.A)
			require.False(t, seenB[p.B], "token B %d paired twice", p.B)
			seenA[p.A] = true
			seenB[p.B] = true
			require.GreaterOrEqual(t, p.Score, floor)
			require.Equal(t, scores[p.A][p.B], p.Score)
		}

		want := bruteForceBest(m, n, scores, floor)
		require.Equal(t, want, total(pairs),
			"trial %d: m=%d n=%d floor=%d scores=%v", trial, m, n, floor, scores)
	}
}

func TestSolveDeterministic(t *testing.T) {
	scores := [][]int{
		{50, 50, 80},
		{50, 50, 80},
		{80, 80, 80},
	}
	first := Solve(3, 3, matrixScorer(scores), 1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Solve(3, 3, matrixScorer(scores), 1))
	}
}
