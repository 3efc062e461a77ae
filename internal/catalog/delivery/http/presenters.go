package http

import (
	"catalog-manager/internal/catalog"
	"catalog-manager/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name                 string `json:"name"                  binding:"max=255"`
	Description          string `json:"description"           binding:"max=2000"`
	ImageRef             string `json:"image_ref"             binding:"max=2048"`
	QualityVerified      *bool  `json:"quality_verified"`
	IntegrityCompromised bool   `json:"integrity_compromised"`
}

// toInput maps the request; quality_verified defaults to true like the web form.
func (r createReq) toInput() catalog.CreateItemInput {
	verified := true
	if r.QualityVerified != nil {
		verified = *r.QualityVerified
	}
	return catalog.CreateItemInput{
		Name:                 r.Name,
		Description:          r.Description,
		ImageRef:             r.ImageRef,
		QualityVerified:      verified,
		IntegrityCompromised: r.IntegrityCompromised,
	}
}

// ---

// viewReq carries view parameters. Absent fields keep the value of the
// base view they are applied to.
type viewReq struct {
	Search      *string `json:"search"       form:"search"`
	Quality     *string `json:"quality"      form:"quality"`
	Integrity   *string `json:"integrity"    form:"integrity"`
	Sort        *string `json:"sort"         form:"sort"`
	ColorCoding *bool   `json:"color_coding" form:"color_coding"`
}

func (r viewReq) empty() bool {
	return r.Search == nil && r.Quality == nil && r.Integrity == nil && r.Sort == nil && r.ColorCoding == nil
}

func (r viewReq) apply(base catalog.ViewParams) (catalog.ViewParams, error) {
	out := base
	if r.Search != nil {
		out.SearchText = *r.Search
	}
	if r.Quality != nil {
		f, err := catalog.ParseQualityFilter(*r.Quality)
		if err != nil {
			return base, err
		}
		out.Quality = f
	}
	if r.Integrity != nil {
		f, err := catalog.ParseIntegrityFilter(*r.Integrity)
		if err != nil {
			return base, err
		}
		out.Integrity = f
	}
	if r.Sort != nil {
		k, err := catalog.ParseSortKey(*r.Sort)
		if err != nil {
			return base, err
		}
		out.Sort = k
	}
	if r.ColorCoding != nil {
		out.ColorCoding = *r.ColorCoding
	}
	return out, nil
}

// ---

type adjustReq struct {
	ID    string `json:"-"` // populated from URI param
	Delta *int   `json:"delta" binding:"required"`
}

func (r adjustReq) toInput() catalog.AdjustOrderCountInput {
	return catalog.AdjustOrderCountInput{ID: r.ID, Delta: *r.Delta}
}

// --- Response DTOs ---

// Tones drive the colour coding of an item card.
const (
	toneNeutral     = "neutral"
	toneCompromised = "compromised"
	toneVerified    = "verified"
	toneUnverified  = "unverified"
)

// Empty-state markers let clients tell an empty catalog from an empty result.
const (
	emptyStateCatalog = "catalog_empty"
	emptyStateNoMatch = "no_match"
)

type itemResp struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	ImageRef             string            `json:"image_ref"`
	OrderCount           int               `json:"order_count"`
	QualityVerified      bool              `json:"quality_verified"`
	IntegrityCompromised bool              `json:"integrity_compromised"`
	Tone                 string            `json:"tone"`
	CreatedAt            response.DateTime `json:"created_at"`
}

func toneOf(item catalog.Item, colorCoding bool) string {
	switch {
	case !colorCoding:
		return toneNeutral
	case item.IntegrityCompromised:
		return toneCompromised
	case item.QualityVerified:
		return toneVerified
	default:
		return toneUnverified
	}
}

func newItemResp(item catalog.Item, colorCoding bool) itemResp {
	return itemResp{
		ID:                   item.ID,
		Name:                 item.Name,
		Description:          item.Description,
		ImageRef:             item.ImageRef,
		OrderCount:           item.OrderCount,
		QualityVerified:      item.QualityVerified,
		IntegrityCompromised: item.IntegrityCompromised,
		Tone:                 toneOf(item, colorCoding),
		CreatedAt:            response.DateTime(item.CreatedAt),
	}
}

type itemEnvelope struct {
	Item itemResp `json:"item"`
}

type viewResp struct {
	Search      string `json:"search"`
	Quality     string `json:"quality"`
	Integrity   string `json:"integrity"`
	Sort        string `json:"sort"`
	ColorCoding bool   `json:"color_coding"`
}

func newViewResp(p catalog.ViewParams) viewResp {
	return viewResp{
		Search:      p.SearchText,
		Quality:     p.Quality.String(),
		Integrity:   p.Integrity.String(),
		Sort:        p.Sort.String(),
		ColorCoding: p.ColorCoding,
	}
}

type listResp struct {
	Items      []itemResp `json:"items"`
	Shown      int        `json:"shown"`
	Total      int        `json:"total"`
	EmptyState string     `json:"empty_state,omitempty"`
	View       viewResp   `json:"view"`
}

func (h *handler) newListResp(out catalog.Projection, params catalog.ViewParams) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item, params.ColorCoding)
	}

	var emptyState string
	switch {
	case out.Empty:
		emptyState = emptyStateCatalog
	case out.Shown == 0:
		emptyState = emptyStateNoMatch
	}

	return listResp{
		Items:      items,
		Shown:      out.Shown,
		Total:      out.Total,
		EmptyState: emptyState,
		View:       newViewResp(params),
	}
}

type adjustResp struct {
	Found bool      `json:"found"`
	Item  *itemResp `json:"item,omitempty"`
}

func (h *handler) newAdjustResp(out catalog.AdjustOrderCountOutput, colorCoding bool) adjustResp {
	if !out.Found {
		return adjustResp{Found: false}
	}
	item := newItemResp(out.Item, colorCoding)
	return adjustResp{Found: true, Item: &item}
}

type imageResp struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type imagesResp struct {
	Images []imageResp `json:"images"`
}

func (h *handler) newImagesResp(images []catalog.PresetImage) imagesResp {
	out := make([]imageResp, len(images))
	for i, img := range images {
		out[i] = imageResp{Name: img.Name, Path: img.Path}
	}
	return imagesResp{Images: out}
}
