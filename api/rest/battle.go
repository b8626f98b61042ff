package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pokeduel/server/audit"
	"github.com/pokeduel/server/game/battle"
	"github.com/pokeduel/server/game/collection"
	"github.com/pokeduel/server/game/stats"
	mw "github.com/pokeduel/server/middleware"
)

// BattleHandler exposes the battle engine over REST.
type BattleHandler struct {
	orc   *battle.Orchestrator
	coll  *collection.Service
	audit *audit.Service
	stats *stats.Service
}

// NewBattleHandler creates a new BattleHandler.
func NewBattleHandler(orc *battle.Orchestrator, coll *collection.Service, auditSvc *audit.Service, statsSvc *stats.Service) *BattleHandler {
	return &BattleHandler{orc: orc, coll: coll, audit: auditSvc, stats: statsSvc}
}

type createBattleRequest struct {
	OpponentID int64 `json:"opponent_id" binding:"required"`
	GuildID    int64 `json:"guild_id"`
	Count      int   `json:"count" binding:"required,min=1,max=5"`
	Friendly   bool  `json:"friendly"`
}

// Create handles POST /api/battles.
func (h *BattleHandler) Create(c *gin.Context) {
	userID := mw.GetAccountID(c)
	var req createBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	s, err := h.orc.CreateBattle(c.Request.Context(), userID, req.OpponentID, req.GuildID, req.Count, req.Friendly)
	h.record(c, "create_battle", userID, sessionID(s), req, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"battle": s})
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

// Respond handles POST /api/battles/:id/respond.
func (h *BattleHandler) Respond(c *gin.Context) {
	userID := mw.GetAccountID(c)
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	s, err := h.orc.Respond(c.Request.Context(), c.Param("id"), userID, req.Accept)
	h.record(c, "respond_battle", userID, c.Param("id"), req, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"battle": s})
}

// Selectable handles GET /api/battles/:id/selectable.
func (h *BattleHandler) Selectable(c *gin.Context) {
	userID := mw.GetAccountID(c)
	if _, err := h.orc.Get(c.Request.Context(), c.Param("id"), userID); err != nil {
		battleError(c, err)
		return
	}
	creatures, err := h.coll.Selectable(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatures": creatures})
}

type selectTeamRequest struct {
	CreatureIDs []int64 `json:"creature_ids" binding:"required,min=1,max=5"`
}

// SelectTeam handles POST /api/battles/:id/team.
func (h *BattleHandler) SelectTeam(c *gin.Context) {
	userID := mw.GetAccountID(c)
	var req selectTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	s, err := h.orc.SelectTeam(c.Request.Context(), c.Param("id"), userID, req.CreatureIDs)
	h.record(c, "select_team", userID, c.Param("id"), req, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"battle": s})
}

type submitMoveRequest struct {
	Move string `json:"move" binding:"required,min=1,max=32"`
}

// SubmitMove handles POST /api/battles/:id/move.
func (h *BattleHandler) SubmitMove(c *gin.Context) {
	userID := mw.GetAccountID(c)
	var req submitMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	s, summary, err := h.orc.SubmitMove(c.Request.Context(), c.Param("id"), userID, req.Move)
	h.record(c, "submit_move", userID, c.Param("id"), req, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	h.settle(c, s)
	c.JSON(http.StatusOK, gin.H{"battle": s, "summary": summary})
}

type switchRequest struct {
	Index int `json:"index" binding:"min=0,max=4"`
}

// Switch handles POST /api/battles/:id/switch.
func (h *BattleHandler) Switch(c *gin.Context) {
	userID := mw.GetAccountID(c)
	var req switchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start := time.Now()
	s, err := h.orc.SwitchActive(c.Request.Context(), c.Param("id"), userID, req.Index)
	h.record(c, "switch_active", userID, c.Param("id"), req, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	h.settle(c, s)
	c.JSON(http.StatusOK, gin.H{"battle": s})
}

// Forfeit handles POST /api/battles/:id/forfeit.
func (h *BattleHandler) Forfeit(c *gin.Context) {
	userID := mw.GetAccountID(c)
	start := time.Now()
	s, err := h.orc.Forfeit(c.Request.Context(), c.Param("id"), userID)
	h.record(c, "forfeit_battle", userID, c.Param("id"), nil, err, start)
	if err != nil {
		battleError(c, err)
		return
	}
	h.settle(c, s)
	c.JSON(http.StatusOK, gin.H{"battle": s})
}

// Get handles GET /api/battles/:id.
func (h *BattleHandler) Get(c *gin.Context) {
	userID := mw.GetAccountID(c)
	s, err := h.orc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		battleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"battle": s})
}

func (h *BattleHandler) record(c *gin.Context, action string, userID int64, session string, req interface{}, err error, start time.Time) {
	if h.audit == nil {
		return
	}
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	h.audit.Log(audit.AuditEntry{
		TraceID:    mw.GetTraceID(c),
		UserID:     &userID,
		SessionID:  session,
		Action:     action,
		Request:    req,
		Error:      errText,
		IP:         c.ClientIP(),
		DurationMs: int(time.Since(start).Milliseconds()),
	})
}

// settle folds a decided battle into the statistics views once the
// transition that ended it has committed.
func (h *BattleHandler) settle(c *gin.Context, s *battle.Session) {
	if h.stats == nil || s == nil || s.Status != battle.StatusFinished || s.WinnerID == 0 {
		return
	}
	loser := s.ChallengerID
	if s.WinnerID == s.ChallengerID {
		loser = s.OpponentID
	}
	h.stats.RecordResult(c.Request.Context(), stats.Result{
		SessionID:  s.ID,
		WinnerID:   s.WinnerID,
		LoserID:    loser,
		Friendly:   s.Friendly,
		FinishedAt: time.Now(),
	})
}

func sessionID(s *battle.Session) string {
	if s == nil {
		return ""
	}
	return s.ID
}

// battleError maps engine sentinel errors onto HTTP status codes.
func battleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, battle.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, battle.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, battle.ErrNotYourTurn),
		errors.Is(err, battle.ErrBattleNotActive),
		errors.Is(err, battle.ErrBattlePending),
		errors.Is(err, battle.ErrTeamAlreadySet),
		errors.Is(err, battle.ErrTrapped),
		errors.Is(err, battle.ErrSwitchRequired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, battle.ErrInvalidTeam),
		errors.Is(err, battle.ErrUnknownMove),
		errors.Is(err, battle.ErrNoPP),
		errors.Is(err, battle.ErrInvalidSwitch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, battle.ErrStaleSession):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
