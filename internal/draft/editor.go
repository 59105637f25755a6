package draft

// Mode is the state of an entity editor.
type Mode int

const (
	Idle Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	}
	return "idle"
}

// Editor holds the single working draft of one entity type. Opening a new
// draft while one is open discards the old one without prompting.
//
// An Editor is not safe for concurrent use.
type Editor[D any] struct {
	mode     Mode
	id       int64
	draft    D
	defaults func() D
}

func NewEditor[D any](defaults func() D) *Editor[D] {
	return &Editor[D]{defaults: defaults, draft: defaults()}
}

// Begin starts a new record from default values.
func (e *Editor[D]) Begin() {
	e.mode = Creating
	e.id = 0
	e.draft = e.defaults()
}

// Edit starts editing the record identified by id with d as the working copy.
func (e *Editor[D]) Edit(id int64, d D) {
	e.mode = Editing
	e.id = id
	e.draft = d
}

// Cancel closes the draft and discards its changes.
func (e *Editor[D]) Cancel() {
	e.reset()
}

// Complete closes the draft after a confirmed save.
func (e *Editor[D]) Complete() {
	e.reset()
}

func (e *Editor[D]) reset() {
	e.mode = Idle
	e.id = 0
	e.draft = e.defaults()
}

func (e *Editor[D]) Mode() Mode { return e.mode }

// Open reports whether a draft is being edited.
func (e *Editor[D]) Open() bool { return e.mode != Idle }

// Target returns the identifier being edited. ok is false unless Editing.
func (e *Editor[D]) Target() (id int64, ok bool) {
	return e.id, e.mode == Editing
}

// Draft returns the working copy for in-place changes.
func (e *Editor[D]) Draft() *D { return &e.draft }
