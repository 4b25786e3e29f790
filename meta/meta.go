// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS simulations per move decision.
const ITERATIONS = 1000

// EXPLORATION defines the UCB1 exploration constant used during tree descent.
const EXPLORATION = 2.0

// GAMES defines the number of games per experiment matchup.
const GAMES = 20

// OUTPUT_DIR defines where experiment CSV files are written.
const OUTPUT_DIR = "experiments"
