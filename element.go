package vscene

// Scheduler is the scene/repaint scheduler notified when an attached
// element owes a repaint. It is a shared external resource: elements only
// notify it, they never drive it.
type Scheduler interface {
	RequestRepaint()
}

// Dirtier is anything that can be marked stale. Clip-target dirtiness
// propagates through this interface: when a shape used as a clip region
// changes, the entities clipped by it are marked dirty too.
type Dirtier interface {
	MarkDirty(rebuildGeometry bool)
}

// Element is the base visual-element state shared by scene entities.
// The transform is owned by the scene graph; shapes read it but never
// mutate it.
type Element struct {
	// Transform is the externally owned affine transform mapping local
	// coordinates into the parent coordinate space. Nil means identity.
	Transform *Matrix

	// dirty means any visual aspect is stale and a repaint is owed.
	dirty bool

	scheduler Scheduler
}

// Attach binds the element to a repaint scheduler.
func (e *Element) Attach(s Scheduler) {
	e.scheduler = s
}

// Detach unbinds the element from its scheduler.
func (e *Element) Detach() {
	e.scheduler = nil
}

// Dirty reports whether a repaint is owed.
func (e *Element) Dirty() bool {
	return e.dirty
}

// notifyScheduler signals the attached scheduler, if any.
func (e *Element) notifyScheduler() {
	if e.scheduler != nil {
		e.scheduler.RequestRepaint()
	}
}
