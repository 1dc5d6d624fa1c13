package component

// Persistent entities survive a run reset.
type Persistent struct {
	ID string
}

var PersistentComponent = NewComponent[Persistent]()
