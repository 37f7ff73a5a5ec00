package tui

// NavigateTo asks the root model to switch to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

type quitMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
