package cnf

// A Literal is a propositional symbol or its negation.
// Literals are immutable values; two literals are equal iff they name the
// same symbol with the same polarity.
type Literal struct {
	Symbol   string
	Positive bool
}

// Pos returns the positive literal for the given symbol.
func Pos(symbol string) Literal {
	return Literal{Symbol: symbol, Positive: true}
}

// Neg returns the negative literal for the given symbol.
func Neg(symbol string) Literal {
	return Literal{Symbol: symbol}
}

// Negation returns the literal over the same symbol with flipped polarity.
func (l Literal) Negation() Literal {
	return Literal{Symbol: l.Symbol, Positive: !l.Positive}
}

func (l Literal) String() string {
	if l.Positive {
		return l.Symbol
	}
	return "!" + l.Symbol
}
