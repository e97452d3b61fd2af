package actorsys

// PID is a unique reference to a spawned actor instance.
type PID struct {
	id string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.id
}
