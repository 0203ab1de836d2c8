package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until shutdown is requested and the server has stopped.
// Shutdown stops the server and releases its resources.
type Server interface {
	RunServer()
	Shutdown()
}
