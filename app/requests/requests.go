// Package requests holds the bound request shapes the HTTP surface
// accepts, kept separate from the controllers per the teacher's
// app/requests convention.
package requests

// ZipcodeRequest binds the query string of a GET /v1/zipcode lookup.
type ZipcodeRequest struct {
	Address string `form:"address" binding:"required"`
}
