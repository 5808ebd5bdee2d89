package ui

// LoadingState tracks an in-flight load and its last failure.
type LoadingState struct {
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// Start marks a load as running and clears the previous failure.
func (s *LoadingState) Start() {
	s.IsLoading = true
	s.Error = ""
}

// Fail ends the load with err. A nil err ends it without a failure.
func (s *LoadingState) Fail(err error) {
	s.IsLoading = false
	s.Error = ""
	if err != nil {
		s.Error = err.Error()
	}
}

func (s *LoadingState) Done() {
	s.IsLoading = false
}

func (s LoadingState) Failed() bool {
	return s.Error != ""
}
