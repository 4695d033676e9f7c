package constants

const (
	// DateTimeFormat is the input format for target and reminder dates (local time)
	DateTimeFormat = "2006-01-02 15:04"

	// DisplayFormat is how stored timestamps are rendered back to the user
	DisplayFormat = "Mon, 02 Jan 2006 15:04"
)
