package resource

// noCopy makes `go vet -copylocks` flag wrappers copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
