package routes

// Version returns the current API version string used in routing.
func Version() string {
	return "v0"
}

// Base returns the versioned API base path (e.g., "/api/v0").
func Base() string {
	return "/api/" + Version()
}

// Health returns the versioned health path.
func Health() string {
	return Base() + "/health"
}

// Analyze returns the automation analysis path.
func Analyze() string {
	return Base() + "/analyze"
}

// ChatMessages returns the dashboard chat message path.
func ChatMessages() string {
	return Base() + "/chat/messages"
}

// ChatQuota returns the chat quota status path.
func ChatQuota() string {
	return Base() + "/chat/quota"
}

// SpeechToText returns the transcription proxy path.
func SpeechToText() string {
	return Base() + "/speech-to-text"
}

// Subscribe returns the newsletter signup path.
func Subscribe() string {
	return Base() + "/subscribe"
}

// ExportJSON returns the Make blueprint export path.
func ExportJSON() string {
	return Base() + "/workflows/export/json"
}

// ExportMarkdown returns the Markdown document export path.
func ExportMarkdown() string {
	return Base() + "/workflows/export/markdown"
}
