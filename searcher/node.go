package searcher

import (
	"fmt"

	"tictactoe/game"
)

const noParent = -1

// node is a search tree entry. Nodes live in a tree arena and refer to each
// other by index: a parent owns its children, a child only remembers its
// parent's index for backup.
type node struct {
	board    game.Board
	parent   int
	terminal bool
	expanded bool // terminal, or every legal child materialized
	visits   int
	score    float64
	children []int          // insertion order
	keys     map[string]int // board key -> child index
}

type tree struct {
	nodes []node
}

func newTree(root game.Board) *tree {
	t := &tree{nodes: make([]node, 0, 64)}
	t.add(noParent, root)
	return t
}

const root = 0

// add appends a node for board and links it under parent.
func (t *tree) add(parent int, board game.Board) int {
	terminal := board.IsTerminal()
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		board:    board,
		parent:   parent,
		terminal: terminal,
		expanded: terminal,
		keys:     map[string]int{},
	})

	if parent != noParent {
		p := &t.nodes[parent]
		p.keys[board.Key()] = id
		p.children = append(p.children, id)
	}
	return id
}

// expand materializes the first legal child of id not yet in the tree.
func (t *tree) expand(id int) int {
	if t.nodes[id].expanded {
		panic(fmt.Sprintf("node %s is already fully expanded", t.nodes[id].board.Key()))
	}

	children := t.nodes[id].board.Children()
	for _, child := range children {
		if _, ok := t.nodes[id].keys[child.Key()]; ok {
			continue
		}
		childID := t.add(id, child)
		if n := &t.nodes[id]; len(n.children) == len(children) {
			n.expanded = true
		}
		return childID
	}
	panic(fmt.Sprintf("node %s has no unexpanded child", t.nodes[id].board.Key()))
}

// backup adds outcome to every node from id up to the root.
func (t *tree) backup(id int, outcome float64) {
	for id != noParent {
		n := &t.nodes[id]
		n.visits++
		n.score += outcome
		id = n.parent
	}
}

func (t *tree) size() int {
	return len(t.nodes)
}
