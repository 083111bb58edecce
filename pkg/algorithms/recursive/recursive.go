// Package recursive generates step traces for algorithms that are naturally
// written as recursion: the Tower of Hanoi and Huffman code assignment.
//
// Neither generator recurses in Go. Each keeps an explicit stack of frames
// holding the call's parameters and the point at which it resumes, which
// fixes the emission order and keeps deep inputs off the goroutine stack.
package recursive

// Algorithm names.
const (
	NameHanoi   = "hanoi"
	NameHuffman = "huffman"
)
