package tooltip

// Action identifies a state transition the overlay reports.
type Action uint8

const (
	ActionInit    Action = iota // overlay constructed
	ActionMount                 // mounted onto the chart
	ActionRender                // content rendered and placed
	ActionShow                  // hidden -> visible edge
	ActionHide                  // visible -> hidden edge
	ActionPin                   // entered pinned
	ActionUnpin                 // left pinned
	ActionDestroy               // torn down (terminal)
)

// String returns the action tag used in notifications and logs.
func (a Action) String() string {
	switch a {
	case ActionInit:
		return "init"
	case ActionMount:
		return "mount"
	case ActionRender:
		return "render"
	case ActionShow:
		return "show"
	case ActionHide:
		return "hide"
	case ActionPin:
		return "pin"
	case ActionUnpin:
		return "unpin"
	case ActionDestroy:
		return "destroy"
	}
	return "?"
}

// State is a snapshot of the overlay's interaction state.
// Invariant: Pinned is only ever true while Mounted.
type State struct {
	Pinned  bool
	Visible bool
	Mounted bool
}

// Controls is the callback table handed to notification consumers so
// they can drive the overlay without holding a reference to it.
type Controls struct {
	Pin  func()
	Show func()
	Hide func()
}

// Notification describes one state transition. Notifications fire on
// defined transitions only (see the Action constants) and are one-way:
// consumers read derived state or invoke the Controls, nothing else.
type Notification struct {
	Action   Action
	State    State
	Controls Controls
	Chart    Chart
}

// notify emits a state-change notification if a callback is configured.
func (o *Overlay) notify(a Action) {
	if o.cfg.OnState == nil {
		return
	}
	o.cfg.OnState(Notification{
		Action: a,
		State:  o.State(),
		Controls: Controls{
			Pin:  o.TogglePin,
			Show: o.Show,
			Hide: o.Hide,
		},
		Chart: o.chart,
	})
}
