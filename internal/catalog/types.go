package catalog

import "time"

// --- Item Domain Model ---

// Item is a single catalog entry.
type Item struct {
	ID                   string
	Name                 string
	Description          string
	ImageRef             string
	OrderCount           int
	QualityVerified      bool
	IntegrityCompromised bool
	CreatedAt            time.Time
}

// PresetImage is one choice of the image picker offered to clients.
type PresetImage struct {
	Name string
	Path string
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name                 string `field:"name"        validate:"notblank"`
	Description          string `field:"description" validate:"notblank"`
	ImageRef             string `field:"image_ref"   validate:"notblank"`
	QualityVerified      bool
	IntegrityCompromised bool
}

type AdjustOrderCountInput struct {
	ID    string
	Delta int
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type AdjustOrderCountOutput struct {
	Item  Item
	Found bool
}

type DetailItemOutput struct {
	Item Item
}

// Projection is the filtered, sorted view of the catalog.
type Projection struct {
	Items []Item
	// Shown is len(Items); Total is the size of the whole catalog.
	Shown int
	Total int
	// Empty is true when the catalog holds no items at all, as opposed to
	// none of them matching the view.
	Empty bool
}
