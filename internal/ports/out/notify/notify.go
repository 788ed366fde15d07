// Package notify holds the page's user-facing side channels: blocking alerts and
// full-page navigation.
package notify

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// Navigator performs a full-page navigation to a backend path.
type Navigator interface {
	Navigate(path string)
}
