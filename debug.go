//go:build lfu_debug

package lfu

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
