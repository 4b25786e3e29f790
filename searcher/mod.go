package searcher

import "errors"

var ErrTerminalState = errors.New("cannot search a terminal state")
