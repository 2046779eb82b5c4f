package domain

// ControlID identifies an interactive control. Control identifiers are
// stable across process restarts: controls posted by a previous process
// lifetime dispatch by the same identifier.
type ControlID string

const (
	// ControlOpenTicket is the panel's entry-point button.
	ControlOpenTicket ControlID = "open_ticket"
	// ControlCloseTicket is the closure button posted inside ticket channels.
	ControlCloseTicket ControlID = "close_ticket"
	// ControlIntakeForm is the structured intake modal.
	ControlIntakeForm ControlID = "intake_form"
)
