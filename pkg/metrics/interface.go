package metrics

// Recorder receives catalog events worth counting.
type Recorder interface {
	ItemCreated()
	ItemRemoved()
	OrderCountAdjusted(delta int)
	ValidationFailed(field string)
	CatalogSize(n int)
	Projected(shown, total int)
}

type nop struct{}

// NewNop returns a Recorder that drops everything.
func NewNop() Recorder { return nop{} }

func (nop) ItemCreated()               {}
func (nop) ItemRemoved()               {}
func (nop) OrderCountAdjusted(int)     {}
func (nop) ValidationFailed(string)    {}
func (nop) CatalogSize(int)            {}
func (nop) Projected(shown, total int) {}
