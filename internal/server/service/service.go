package service

// M is an arbitrary map.
type M map[string]any
