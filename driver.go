package framer

// Driver advances an Animator on every tick of a Scheduler and reports the
// values it produces.
type Driver struct {
	animator    Animator
	scheduler   Scheduler
	onUpdate    func(value any)
	onFinish    func(finished bool)
	unsubscribe func()
}

// NewDriver creates a driver. onUpdate receives each in-between value;
// onFinish is called once the animator reports it is finished, or when
// Finish is called, with the animator's IsFinished result. A nil scheduler
// skips animating: Play reports onFinish(false) straight away.
func NewDriver(animator Animator, scheduler Scheduler, onUpdate func(any), onFinish func(bool)) *Driver {
	if !animator.IsReady() {
		logger.Warn("animation driver created with an animator that isn't ready")
	}
	return &Driver{
		animator:  animator,
		scheduler: scheduler,
		onUpdate:  onUpdate,
		onFinish:  onFinish,
	}
}

// Play subscribes to the scheduler. Calling Play while playing is a no-op.
func (d *Driver) Play() {
	if d.scheduler == nil {
		if d.onFinish != nil {
			d.onFinish(false)
		}
		return
	}
	if d.unsubscribe != nil {
		return
	}
	d.unsubscribe = d.scheduler.OnTick(d.update)
}

func (d *Driver) update(dt float64) {
	if d.animator.IsFinished() {
		d.Finish()
		return
	}
	v := d.animator.Next(dt)
	if d.onUpdate != nil {
		d.onUpdate(v)
	}
}

// Cancel stops ticking without reporting completion.
func (d *Driver) Cancel() {
	d.stop()
}

// Finish stops ticking and reports completion.
func (d *Driver) Finish() {
	d.stop()
	if d.onFinish != nil {
		d.onFinish(d.animator.IsFinished())
	}
}

func (d *Driver) stop() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// IsFinished reports whether the animator has finished.
func (d *Driver) IsFinished() bool { return d.animator.IsFinished() }

// IsPlaying reports whether the driver is subscribed to its scheduler.
func (d *Driver) IsPlaying() bool { return d.unsubscribe != nil }
