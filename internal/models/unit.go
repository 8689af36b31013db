package models

// Unit is the caller-held design state: one chassis configuration plus
// its mounted equipment. The engine treats a Unit as a value passed in
// and a value returned; atomic replace-on-write is the caller's job.
type Unit struct {
	Chassis string  `json:"chassis"`
	Model   string  `json:"model,omitempty"`
	Config  Config  `json:"config"`
	Mounts  []Mount `json:"mounts,omitempty"`
}

// FullName returns "Chassis Model", or just the chassis when the model
// code is empty.
func (u *Unit) FullName() string {
	if u.Model == "" {
		return u.Chassis
	}
	return u.Chassis + " " + u.Model
}

// CloneMounts returns a deep copy of the mount list, so callers can apply
// a new layout without aliasing the previous state.
func (u *Unit) CloneMounts() []Mount {
	out := make([]Mount, len(u.Mounts))
	for i, m := range u.Mounts {
		out[i] = m
		if m.Placement != nil {
			slots := make([]int, len(m.Placement.Slots))
			copy(slots, m.Placement.Slots)
			out[i].Placement = &Placement{Location: m.Placement.Location, Slots: slots}
		}
	}
	return out
}
