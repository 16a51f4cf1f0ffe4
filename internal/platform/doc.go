package platform

// Package platform wraps the small set of OS interactions the server needs:
// creating download directories and resolving the user's Downloads folder.
