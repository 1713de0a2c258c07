package model

// SystemLog rows back the log admin screen.
type SystemLog struct {
	ID           int64  `db:"id" json:"id"`
	Type         string `db:"type" json:"type"`
	PageName     string `db:"page_name" json:"page_name"`
	FunctionName string `db:"function_name" json:"function_name"`
	Data         string `db:"data" json:"data"`
	Timestamp    string `db:"timestamp" json:"timestamp"`
	Message      string `db:"message" json:"message"`
	StackTrace   string `db:"stack_trace" json:"stack_trace"`
}

const (
	LogTypeError   = "Error"
	LogTypeWarning = "Warning"
	LogTypeInfo    = "Info"
	LogTypeDebug   = "Debug"
)
