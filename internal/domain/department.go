package domain

// Department represents an organizational unit owning zero or more employees.
type Department struct {
	ID    int64
	Title string
}

// DepartmentPatch carries the mutable department fields. A nil field is left
// unchanged when the patch is applied.
type DepartmentPatch struct {
	Title *string
}

// Apply writes the set fields onto the department.
func (p DepartmentPatch) Apply(d *Department) {
	if p.Title != nil {
		d.Title = *p.Title
	}
}
