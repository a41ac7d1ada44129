package application

type EvaluateCommand struct {
	Path       string
	PID        string
	Expression string
	Variable   float64
}

type RunFormulasCommand struct {
	Path  string
	Names []string
}

type HistoryQuery struct {
	PID   string
	Limit int
}
