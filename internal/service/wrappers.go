package service

// ThemeStoreServiceWrapper defines middleware composition for ThemeStoreService.
// Implementations wrap an existing ThemeStoreService to add behavior such as
// validating.
type ThemeStoreServiceWrapper interface {
	Wrap(ThemeStoreService) ThemeStoreService // returns a decorated ThemeStoreService applying additional behavior
}
