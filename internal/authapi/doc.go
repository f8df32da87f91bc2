// Package authapi is the HTTP client for the remote authentication
// boundary: login, logout and register. The data layer consumes it through
// domain.AuthClient and treats every failure as a terminal absent result.
package authapi
