package xsskit

// FilterHTML passes value through the markup filter's HTML-in-HTML-content
// policy, removing any disallowed tags and attributes. It never fails; the
// worst case is an empty string.
func (s *Service) FilterHTML(value string) string {
	return s.filter.FilterHTML(value)
}
