package server

import (
	"fmt"
	"net/http"

	"github.com/dchest/uniuri"
	"github.com/fkleist/pinpoint/pkg/pinpoint"
	"github.com/gin-gonic/gin"
)

type httpServer struct {
	candidateChan chan pinpoint.Candidate
	reportChan    chan *pinpoint.Report

	candidateMap map[string]pinpoint.Candidate
}

func (h *httpServer) Init(port int, candidateChan chan pinpoint.Candidate, reportChan chan *pinpoint.Report) error {
	h.candidateChan = candidateChan
	h.reportChan = reportChan

	h.candidateMap = make(map[string]pinpoint.Candidate)

	router := gin.Default()

	router.GET("/candidate", h.getCandidate)
	router.POST("/good/:candidateId", h.postGood)
	router.POST("/bad/:candidateId", h.postBad)
	router.POST("/skip/:candidateId", h.postSkip)

	return router.Run(fmt.Sprintf("localhost:%d", port))
}

type candidateResponse struct {
	CandidateId string `json:"candidateId"`

	Index int    `json:"index"`
	Item  string `json:"item"`
}

type boundaryItemResponse struct {
	Index  int    `json:"index"`
	Item   string `json:"item"`
	Status string `json:"status"`
}

type reportResponse struct {
	LastGood int `json:"lastGood"`
	FirstBad int `json:"firstBad"`

	LastGoodItem string `json:"lastGoodItem"`
	FirstBadItem string `json:"firstBadItem"`

	Ignored []int `json:"ignored"`

	Pinpointed bool                   `json:"pinpointed"`
	Boundary   []boundaryItemResponse `json:"boundary"`

	SequenceDigest string `json:"sequenceDigest"`
}

func (h *httpServer) getCandidate(c *gin.Context) {
	select {
	case report := <-h.reportChan:
		boundary := []boundaryItemResponse{}
		for _, item := range report.Boundary {
			boundary = append(boundary, boundaryItemResponse{
				Index:  item.Index,
				Item:   item.Item,
				Status: item.Status.String(),
			})
		}
		c.JSON(http.StatusOK, reportResponse{
			LastGood: report.LastGood,
			FirstBad: report.FirstBad,

			LastGoodItem: report.LastGoodItem,
			FirstBadItem: report.FirstBadItem,

			Ignored: report.Ignored,

			Pinpointed: report.Pinpointed(),
			Boundary:   boundary,

			SequenceDigest: report.SequenceDigest,
		})
	case candidate := <-h.candidateChan:
		id := uniuri.New()
		h.candidateMap[id] = candidate
		c.JSON(http.StatusOK, candidateResponse{
			CandidateId: id,

			Index: candidate.Index,
			Item:  candidate.Item,
		})
	}
}

func (h *httpServer) postGood(c *gin.Context) {
	id := c.Param("candidateId")
	if candidate, found := h.candidateMap[id]; found {
		candidate.Good()
		delete(h.candidateMap, id)
		c.AbortWithStatus(200)
	} else {
		c.AbortWithStatus(404)
	}
}

func (h *httpServer) postBad(c *gin.Context) {
	id := c.Param("candidateId")
	if candidate, found := h.candidateMap[id]; found {
		candidate.Bad()
		delete(h.candidateMap, id)
		c.AbortWithStatus(200)
	} else {
		c.AbortWithStatus(404)
	}
}

func (h *httpServer) postSkip(c *gin.Context) {
	id := c.Param("candidateId")
	if candidate, found := h.candidateMap[id]; found {
		candidate.Skip()
		delete(h.candidateMap, id)
		c.AbortWithStatus(200)
	} else {
		c.AbortWithStatus(404)
	}
}
