package repository

// CreateItemOptions holds parameters for inserting a new Item.
// Text fields are expected to be validated and trimmed by the caller.
type CreateItemOptions struct {
	Name                 string
	Description          string
	ImageRef             string
	QualityVerified      bool
	IntegrityCompromised bool
}

// AdjustOrderCountOptions holds parameters for shifting an Item's order count.
type AdjustOrderCountOptions struct {
	ID    string
	Delta int
}
