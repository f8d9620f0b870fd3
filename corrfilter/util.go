package corrfilter

func min(a, b int) int {
	if b < a {
		return b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func mod(a, b int) int {
	if b <= 0 {
		panic("non-positive mod")
	}
	return ((a % b) + b) % b
}
