package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arcanaworks/arcana-server-go/internal/game"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
)

type playCardRequest struct {
	Player int            `json:"player"`
	Card   string         `json:"card"`
	Split  map[string]int `json:"split"`
}

func (s *Server) handlePlayCard(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req playCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.PlayCard(req.Player, req.Card, parseEssences(req.Split)))
}

func (s *Server) handleBuyPlace(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req playCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.BuyPlaceOfPower(req.Player, req.Card, parseEssences(req.Split)))
}

func (s *Server) handleBuyMonument(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req cardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.BuyMonument(req.Player, req.Card))
}

type discardRequest struct {
	Player   int            `json:"player"`
	Card     string         `json:"card"`
	Essences map[string]int `json:"essences"`
}

func (s *Server) handleDiscard(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req discardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.DiscardForResources(req.Player, req.Card, parseEssences(req.Essences)))
}

type passRequest struct {
	Player    int    `json:"player"`
	MagicItem string `json:"magic_item"`
}

func (s *Server) handlePass(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req passRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.Pass(req.Player, req.MagicItem))
}

type attackResponseDTO struct {
	Kind      string `json:"kind"`
	ReactCard string `json:"react_card"`
}

type abilityRequest struct {
	Player  int    `json:"player"`
	Card    string `json:"card"`
	Ability int    `json:"ability"`

	Costs struct {
		TapCard         string         `json:"tap_card"`
		DestroyArtifact string         `json:"destroy_artifact"`
		Discard         []string       `json:"discard"`
		VariablePayment map[string]int `json:"variable_payment"`
		AnySplit        map[string]int `json:"any_split"`
	} `json:"costs"`

	Effects struct {
		Resources       map[string]int               `json:"resources"`
		BonusType       string                       `json:"bonus_type"`
		TargetCard      string                       `json:"target_card"`
		PlayCard        string                       `json:"play_card"`
		PlaySplit       map[string]int               `json:"play_split"`
		Discard         []string                     `json:"discard"`
		DeckOrder       []string                     `json:"deck_order"`
		AttackResponses map[string]attackResponseDTO `json:"attack_responses"`
	} `json:"effects"`
}

func (req *abilityRequest) costChoices() game.CostChoices {
	return game.CostChoices{
		TapCard:         req.Costs.TapCard,
		DestroyArtifact: req.Costs.DestroyArtifact,
		Discard:         req.Costs.Discard,
		VariablePayment: parseEssences(req.Costs.VariablePayment),
		AnySplit:        parseEssences(req.Costs.AnySplit),
	}
}

func (req *abilityRequest) effectChoices() game.EffectChoices {
	choices := game.EffectChoices{
		Resources:  parseEssences(req.Effects.Resources),
		BonusType:  essence.Type(req.Effects.BonusType),
		TargetCard: req.Effects.TargetCard,
		PlayCard:   req.Effects.PlayCard,
		PlaySplit:  parseEssences(req.Effects.PlaySplit),
		Discard:    req.Effects.Discard,
		DeckOrder:  req.Effects.DeckOrder,
	}
	for key, dto := range req.Effects.AttackResponses {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if choices.AttackResponses == nil {
			choices.AttackResponses = make(map[int]game.AttackResponse)
		}
		choices.AttackResponses[id] = game.AttackResponse{
			Kind:      game.AttackResponseKind(dto.Kind),
			ReactCard: dto.ReactCard,
		}
	}
	return choices
}

func (s *Server) handleUseAbility(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	var req abilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "reason": err.Error()})
		return
	}
	s.respond(c, g, req.Player, g.UseAbility(req.Player, req.Card, req.Ability, req.costChoices(), req.effectChoices()))
}

func (s *Server) handleListAbilities(c *gin.Context) {
	g, found := s.lookup(c)
	if !found {
		return
	}
	player := viewerParam(c)
	refs := g.ActivatableAbilities(player)
	out := make([]gin.H, 0, len(refs))
	for _, ref := range refs {
		out = append(out, gin.H{"card": ref.CardName, "ability": ref.Index})
	}
	c.JSON(http.StatusOK, gin.H{"abilities": out})
}
