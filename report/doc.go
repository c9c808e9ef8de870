// Package report renders influence simulations for people.
//
// Text writers mirror the classic console layout:
//
//	Starting node (most influential person): 7
//	Step 1: [2 9]
//	Step 2: [4]
//	Total number of influenced nodes: 4
//	Total number of steps: 2
//
// Observers plug into diffusion.Engine:
//
//	StepPrinter  — prints each step as it happens
//	Pacer        — sleeps between steps so a live display can keep up
//	DOTRecorder  — writes one Graphviz file per step (gonum encoding/dot)
//
// Aggregate summarises repeated trials with gonum/stat.
package report
