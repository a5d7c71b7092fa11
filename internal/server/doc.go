// Package server wires and runs the application's transport servers.
//
// It runs the proxy KV HTTP server and the realtime websocket server,
// handles stop signals and shuts every enabled transport down gracefully.
package server
