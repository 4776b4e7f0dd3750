// SPDX-License-Identifier: MIT

// Package training runs the tutorial that precedes the puzzle.
//
// The tutorial is an explicit ordered list of Stage descriptors and a stage
// index. Entering a stage adds its sticks to the movable set and restores
// every stick to its home cell; the stage is left when its Done predicate
// holds after a tick. DefaultStages reproduces the three-step tutorial:
// move one marked stick onto a marked cell, rotate and place two sticks,
// press the on-screen button.
package training
