package quiz

import "math/rand/v2"

// Permutation возвращает случайную перестановку чисел 0..n-1 (Фишер–Йейтс).
func Permutation(n int) []int {
	if n <= 0 {
		return []int{}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return order
}
