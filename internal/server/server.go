package server

import (
	"fmt"

	"github.com/fkleist/pinpoint/pkg/pinpoint"
)

type ServerType int

const (
	HTTP ServerType = iota
)

type Server interface {
	Init(int, chan pinpoint.Candidate, chan *pinpoint.Report) error
}

// NewServer starts a server of the passed type which exposes the passed
// session channels. Init blocks for as long as the server is running.
func NewServer(serverType ServerType, port int, candidateChan chan pinpoint.Candidate, reportChan chan *pinpoint.Report) (Server, error) {
	switch serverType {
	case HTTP:
		server := &httpServer{}
		return server, server.Init(port, candidateChan, reportChan)
	}
	return nil, fmt.Errorf("%d is not a valid server type", serverType)
}
