// Package exercise runs learner sessions over the powers of one graph.
//
// A session fixes a base graph and a semiring (classic, logical or tropical).
// Level p asks for the p-th power: the answer is computed with core.Powered
// and the learner's board starts with every cell Hidden. Levels run from the
// starting level (WithLevel, default 1) up to WithMaxLevel (default 5).
//
// Modes:
//
//	Demonstration  the board fills itself through Reveal / RevealNext.
//	Training       Enter reports each cell's correctness immediately.
//	Check          Enter is silent; Complete and Mismatches judge the board.
//
// A board is complete when no cell is Hidden and every filled value equals
// the answer. Advance then stores the level in History and starts the next.
package exercise
