package quicksort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: []int{}, expected: []int{}},
		{name: "single element", input: []int{1}, expected: []int{1}},
		{name: "two elements", input: []int{2, 1}, expected: []int{1, 2}},
		{name: "reversed", input: []int{5, 4, 3, 2, 1}, expected: []int{1, 2, 3, 4, 5}},
		{name: "same elements", input: []int{1, 1, 1, 1, 1}, expected: []int{1, 1, 1, 1, 1}},
		{name: "sorted", input: []int{1, 2, 3, 4, 5}, expected: []int{1, 2, 3, 4, 5}},
		{name: "one different element", input: []int{1, 1, 1, 4, 1, 1}, expected: []int{1, 1, 1, 1, 1, 4}},
		{name: "negative numbers", input: []int{3, -7, 0, -7, 12, 1}, expected: []int{-7, -7, 0, 1, 3, 12}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			Sort(test.input)
			require.Equal(t, test.expected, test.input)
		})
	}
}

func TestSort_Strings(t *testing.T) {
	words := []string{"pear", "apple", "fig", "banana"}
	Sort(words)
	require.Equal(t, []string{"apple", "banana", "fig", "pear"}, words)
}

func TestSort_Random(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		input := make([]int, random.Intn(300))
		for i := range input {
			input[i] = random.Intn(50)
		}

		expected := append([]int(nil), input...)
		sort.Ints(expected)

		Sort(input)
		require.Equal(t, expected, input)
	}
}

func TestSortFunc_Descending(t *testing.T) {
	values := []int{4, 1, 3, 5, 2}
	SortFunc(values, func(a, b int) int {
		return b - a
	})
	require.Equal(t, []int{5, 4, 3, 2, 1}, values)
}

func TestSortValues(t *testing.T) {
	values := []interface{}{"c", "a", "b"}
	SortValues(values, utils.StringComparator)
	require.Equal(t, []interface{}{"a", "b", "c"}, values)
}

func BenchmarkSort(b *testing.B) {
	random := rand.New(rand.NewSource(1))
	input := make([]int, 10_000)
	for i := range input {
		input[i] = random.Int()
	}

	values := make([]int, len(input))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(values, input)
		Sort(values)
	}
}
