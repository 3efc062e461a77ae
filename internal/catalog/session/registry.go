package session

import "catalog-manager/internal/catalog"

// Get returns the params held for id, or the default view when none are.
func (r *implRegistry) Get(id string) catalog.ViewParams {
	if id == "" {
		return catalog.DefaultViewParams()
	}
	if params, ok := r.views.Get(id); ok {
		return params
	}
	return catalog.DefaultViewParams()
}

func (r *implRegistry) Put(id string, params catalog.ViewParams) {
	if id == "" {
		return
	}
	r.views.Add(id, params)
}

func (r *implRegistry) Delete(id string) {
	r.views.Remove(id)
}

func (r *implRegistry) Len() int {
	return r.views.Len()
}
