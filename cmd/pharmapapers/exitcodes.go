package main

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Retrieval failure, or no papers at the search or filter stage
)
