package server

import (
	"net/http/httptest"
)

type TestServer struct {
	*httptest.Server
}

func (s *Server) TestServer() *TestServer {
	server := httptest.NewServer(s.Handler)
	s.httpServer = server.Config
	return &TestServer{Server: server}
}
