// Package phase2 implements the snake engine that runs once Phase I's
// singleton elimination has exhausted every degree-1 vertex. Every
// still-unmatched vertex starts out as its own one-vertex fragment;
// each round every fragment's head tries to absorb one more neighbor,
// locally via direct splicing or across a process boundary via the
// same propose/confirm exchange Phase I uses for its singletons. Run
// loops to global quiescence exactly as phase1.Run does.
package phase2
