package app

// ButtonState describes one action button.
type ButtonState struct {
	Visible bool
	Enabled bool
}

// Affordances holds the state of the four row action buttons.
type Affordances struct {
	Edit     ButtonState
	Delete   ButtonState
	Validate ButtonState
	Cancel   ButtonState
}

// AffordancesFor derives button state from whether any edit session is active.
func AffordancesFor(editing bool) Affordances {
	if editing {
		return Affordances{
			Edit:     ButtonState{Visible: true, Enabled: false},
			Delete:   ButtonState{Visible: true, Enabled: false},
			Validate: ButtonState{Visible: true, Enabled: true},
			Cancel:   ButtonState{Visible: true, Enabled: true},
		}
	}
	return Affordances{
		Edit:   ButtonState{Visible: true, Enabled: true},
		Delete: ButtonState{Visible: true, Enabled: true},
	}
}
