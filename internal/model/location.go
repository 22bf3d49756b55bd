package model

// Location is a bookable venue, optionally nested one level under a parent
// venue (a room inside a hotel, for example). Nesting deeper than one level
// is not modelled: a child's parent is assumed to be a root location.
type Location struct {
	ID       uint64  `json:"id"`        // locations.id
	Name     string  `json:"name"`      // locations.name
	ParentID *uint64 `json:"parent_id"` // locations.parent_id (nullable)
	FullName string  `json:"full_name,omitempty"`
}

// DisplayName builds the human-readable name of a location from its own
// name and the (possibly absent) parent name: "Parent - Child" when a
// parent exists, just the name otherwise.
func DisplayName(parentName *string, name string) string {
	if parentName != nil && *parentName != "" {
		return *parentName + " - " + name
	}
	return name
}
