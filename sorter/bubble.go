package sorter

// SortRange - bubble sort arr[start:end) in place, ascending.
// Every pass pushes the largest remaining element to the end of the
// unsorted part; a pass without swaps ends the sort early.
func SortRange(arr []int, start, end int) {
	for last := end - 1; last > start; last-- {
		swapped := false
		for j := start; j < last; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}
