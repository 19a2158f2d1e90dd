package catalog

// Status is the visibility status shared by catalog records
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// orDefault returns the status, falling back to active when unset
func (s Status) orDefault() Status {
	if s == "" {
		return StatusActive
	}
	return s
}
