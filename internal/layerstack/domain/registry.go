package domain

// LayerTypeColor pairs a layer category with its display color.
type LayerTypeColor struct {
	Name  LayerType `json:"name"`
	Color string    `json:"color"`
}

var layerTypes = []LayerTypeColor{
	{Name: TypeCore, Color: "#3b82f6"},
	{Name: TypeFrontend, Color: "#10b981"},
	{Name: TypeBackend, Color: "#f59e0b"},
	{Name: TypeDatabase, Color: "#8b5cf6"},
	{Name: TypeDevOps, Color: "#ef4444"},
	{Name: TypeAPI, Color: "#06b6d4"},
	{Name: TypeOther, Color: "#6b7280"},
}

// LayerTypes returns the fixed registry in display order. The slice is a
// copy; callers may not alter the registry through it.
func LayerTypes() []LayerTypeColor {
	return append([]LayerTypeColor(nil), layerTypes...)
}

// ColorOf returns the color for t and whether t is a known category.
func ColorOf(t LayerType) (string, bool) {
	for _, lt := range layerTypes {
		if lt.Name == t {
			return lt.Color, true
		}
	}
	return "", false
}

func (t LayerType) Valid() bool {
	_, ok := ColorOf(t)
	return ok
}
