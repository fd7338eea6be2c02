/*
Package wordsearch finds dictionary words hidden in a rectangular grid of
letters, reading in all eight directions: across, down, both diagonals, and
each of those backwards.

The dictionary is held in a prefix tree stored as a flat array of nodes, each
with 26 child slots, one per ASCII letter. Words are case-insensitive and
anything other than a-z or A-Z is rejected. To build one, create a builder
using NewBuilder() and Add words in any order, then call Finish() which returns
a *Trie. Build() does the same for a slice of words. A finished Trie is never
modified again, so any number of goroutines can read it without locking.

An Explorer walks the trie one letter at a time. Each letter it is given
either extends a word (PartialWord), completes one (ValidWord), or leads
nowhere (Reset), in which case the explorer starts over from the root.

A Grid is built with FromLinear() or FromRows(). Solve() starts a scan in every
direction from every cell and records each completed word as a Match. The
columns of the grid are split into contiguous bands that are searched in
parallel; every band has its own Explorer, and the band results are merged
once all of them are done. Use SolveWith() to search on the calling goroutine
with an Explorer you own.

The Result keeps every occurrence, so a single word can be counted
(see Count()), as well as the set of distinct words found.
*/
package wordsearch
