package chrono

import "time"

// API is the interface that anything depending on the system clock should use.
type API interface {
	Now() time.Time
}

// StandardImpl reads the system clock in the local timezone.
type StandardImpl struct{}

func NewStandardImpl() StandardImpl {
	return StandardImpl{}
}

func (StandardImpl) Now() time.Time {
	return time.Now().In(time.Local)
}

// FakeImpl is a manually advanced clock for tests, every call to Now moves it
// forward by Step.
type FakeImpl struct {
	Current time.Time
	Step    time.Duration
}

func (f *FakeImpl) Now() time.Time {
	now := f.Current
	f.Current = f.Current.Add(f.Step)
	return now
}
