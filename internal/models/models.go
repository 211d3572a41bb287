// Package models defines core data structures for go-sampleweb
package models

// HelloMessage is the greeting returned by /api/hello
const HelloMessage = "Hello from Flask backend!"

// Item represents a sample record served by /api/data
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HelloResponse is the body of /api/hello
type HelloResponse struct {
	Message string `json:"message"`
}

// DataResponse is the body of /api/data
type DataResponse struct {
	Items []Item `json:"items"`
}

// ErrorResponse is the body of JSON error replies under /api/
type ErrorResponse struct {
	Error string `json:"error"`
}

// sampleItems is never handed out directly, see SampleItems
var sampleItems = [...]Item{
	{ID: 1, Name: "Item 1", Description: "First item"},
	{ID: 2, Name: "Item 2", Description: "Second item"},
	{ID: 3, Name: "Item 3", Description: "Third item"},
}

// SampleItems returns a fresh copy of the hard-coded items in id order
func SampleItems() []Item {
	items := make([]Item, len(sampleItems))
	copy(items, sampleItems[:])
	return items
}

// NewHelloResponse builds the /api/hello body
func NewHelloResponse() HelloResponse {
	return HelloResponse{Message: HelloMessage}
}

// NewDataResponse builds the /api/data body
func NewDataResponse() DataResponse {
	return DataResponse{Items: SampleItems()}
}
