// Package huffcode builds Huffman codes for short text messages.
//
// The pipeline counts symbol frequencies over a fixed 256-symbol alphabet,
// seeds a min-heap with one leaf per symbol that occurs, merges the two
// lowest-frequency trees until a single root remains, and then walks that
// root to assign a bit string to every leaf.  The result reports the total
// coded length against a fixed-width 8-bit baseline.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcode
