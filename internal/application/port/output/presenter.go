package output

// Notifier surfaces transient step outcomes to the user
// Different implementations can format output for CLI, JSON, or other formats
type Notifier interface {
	// Success surfaces a success notification
	Success(message string)

	// Error surfaces an error notification with the message verbatim
	Error(message string)
}
