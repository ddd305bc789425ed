package domain

// LayerPatch carries the fields a client supplied for a layer. Nil
// fields were absent from the request and are left untouched.
type LayerPatch struct {
	ID               *int
	Name             *string
	Type             *LayerType
	Status           *string
	Description      *string
	Technology       *string
	Responsibilities *string
	Connections      *[]int
	Dependencies     *[]int
	Visible          *bool
	Locked           *bool
	Substacks        *[]Layer
}

// Apply copies the supplied fields onto l. The id is never touched.
func (lp LayerPatch) Apply(l *Layer) {
	if lp.Name != nil {
		l.Name = *lp.Name
	}
	if lp.Type != nil {
		l.Type = *lp.Type
	}
	if lp.Status != nil {
		l.Status = *lp.Status
	}
	if lp.Description != nil {
		l.Description = *lp.Description
	}
	if lp.Technology != nil {
		l.Technology = *lp.Technology
	}
	if lp.Responsibilities != nil {
		l.Responsibilities = *lp.Responsibilities
	}
	if lp.Connections != nil {
		l.Connections = append([]int{}, (*lp.Connections)...)
	}
	if lp.Dependencies != nil {
		l.Dependencies = append([]int{}, (*lp.Dependencies)...)
	}
	if lp.Visible != nil {
		l.Visible = *lp.Visible
	}
	if lp.Locked != nil {
		l.Locked = *lp.Locked
	}
	if lp.Substacks != nil {
		subs := make([]Layer, 0, len(*lp.Substacks))
		for _, s := range *lp.Substacks {
			subs = append(subs, s.Clone())
		}
		l.Substacks = subs
	}
}

// FlagsOnly reports whether the patch touches nothing but the visible
// and locked flags. Such patches are allowed on locked layers.
func (lp LayerPatch) FlagsOnly() bool {
	return lp.Name == nil && lp.Type == nil && lp.Status == nil &&
		lp.Description == nil && lp.Technology == nil && lp.Responsibilities == nil &&
		lp.Connections == nil && lp.Dependencies == nil && lp.Substacks == nil
}
