package searcher

import "math"

type uct struct {
	c        float64
	lnVisits float64
}

func newUCT(c float64, parentVisits int) *uct {
	if parentVisits == 0 {
		panic("cannot score children of an unvisited node")
	}
	return &uct{c: c, lnVisits: math.Log(float64(parentVisits))}
}

// evaluate computes sign*q/n + c*sqrt(ln(N)/n) where sign is +1 when the child
// was reached by a move of the win symbol and -1 otherwise.
func (u uct) evaluate(sign float64, q float64, n int) float64 {
	if n == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	visits := float64(n)
	return sign*q/visits + u.c*math.Sqrt(u.lnVisits/visits)
}
