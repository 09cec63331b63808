package app

// State represents the current application state.
type State int

const (
	StateConnecting State = iota // Waiting for backend health check / login
	StateLoading                 // Fetching tenant data
	StateBrowsing                // Navigating a list
	StateFiltering               // Typing into the filter prompt
	StateDetail                  // Viewing one item
	StateError                   // Unrecoverable until refresh
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateFiltering:
		return "filtering"
	case StateDetail:
		return "detail"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Tab identifies one of the browsable lists.
type Tab int

const (
	TabAppointments Tab = iota
	TabComments
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabAppointments:
		return "Appointments"
	case TabComments:
		return "Comments"
	default:
		return "unknown"
	}
}

// Next cycles to the following tab.
func (t Tab) Next() Tab { return (t + 1) % tabCount }
