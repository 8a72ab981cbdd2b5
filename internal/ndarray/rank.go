package ndarray

// Rank fixes the number of axes of an Array at the type level.
//
// Implementations are zero-size marker types. Rank must return the same
// positive value for every value of the type.
type Rank interface {
	Rank() int
}

// Built-in ranks.
type (
	Rank1 struct{}
	Rank2 struct{}
	Rank3 struct{}
	Rank4 struct{}
	Rank5 struct{}
	Rank6 struct{}
	Rank7 struct{}
	Rank8 struct{}
)

// Rank returns 1.
func (Rank1) Rank() int { return 1 }

// Rank returns 2.
func (Rank2) Rank() int { return 2 }

// Rank returns 3.
func (Rank3) Rank() int { return 3 }

// Rank returns 4.
func (Rank4) Rank() int { return 4 }

// Rank returns 5.
func (Rank5) Rank() int { return 5 }

// Rank returns 6.
func (Rank6) Rank() int { return 6 }

// Rank returns 7.
func (Rank7) Rank() int { return 7 }

// Rank returns 8.
func (Rank8) Rank() int { return 8 }

// rankOf returns the rank carried by R.
func rankOf[R Rank]() int {
	var r R
	return r.Rank()
}
