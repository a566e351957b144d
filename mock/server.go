package mock

import "net/http/httptest"

// HTTPTestConsoleServer runs a ConsoleService on an httptest server.
type HTTPTestConsoleServer struct {
	*ConsoleService
	Server *httptest.Server
	URL    string
}

// NewHTTPTestConsoleServer starts a mock console; callers must Close it.
func NewHTTPTestConsoleServer(opts ...Option) *HTTPTestConsoleServer {
	service := NewConsoleService(opts...)
	server := &HTTPTestConsoleServer{ConsoleService: service}
	server.Server = httptest.NewServer(service.Handler())
	server.URL = server.Server.URL
	return server
}

func (s *HTTPTestConsoleServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
