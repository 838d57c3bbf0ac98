package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type collectionRequest struct {
	Player int    `json:"player"`
	Card   string `json:"card"`
	Take   bool   `json:"take"`
}

func (s *Server) handleCollectionChoice(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.SetCollectionChoice(req.Player, req.Card, req.Take))
}

type incomeChoiceRequest struct {
	Player   int            `json:"player"`
	Card     string         `json:"card"`
	Essences map[string]int `json:"essences"`
}

func (s *Server) handleIncomeChoice(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req incomeChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.SetIncomeChoice(req.Player, req.Card, parseEssences(req.Essences)))
}

type autoSkipRequest struct {
	Player int  `json:"player"`
	Skip   bool `json:"skip"`
}

func (s *Server) handleAutoSkipPlaces(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req autoSkipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.SetAutoSkipPlaces(req.Player, req.Skip))
}

type waitRequest struct {
	Player int  `json:"player"`
	Wait   bool `json:"wait"`
}

func (s *Server) handleWaitForEarlier(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req waitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.SetWaitForEarlier(req.Player, req.Wait))
}

type playerRequest struct {
	Player int `json:"player"`
}

func (s *Server) handleFinalizeIncome(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.FinalizeIncome(req.Player))
}
