package driven

// Browser opens URLs in the user's default browser.
type Browser interface {
	Open(url string) error
}
