package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/engine"
	"github.com/hansollabs/clausecraft/internal/model"
)

// generateRequest is the body of POST /api/v1/contracts/generate. Either an
// inline quote or the ID of a stored one must be given.
type generateRequest struct {
	Quote      *model.Quote `json:"quote,omitempty"`
	QuoteID    string       `json:"quoteId,omitempty"`
	Mode       string       `json:"mode,omitempty"`
	Complexity string       `json:"complexity,omitempty"`
	DryRun     bool         `json:"dryRun,omitempty"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	quote := req.Quote
	if quote == nil {
		if req.QuoteID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "either quote or quoteId is required"})
			return
		}
		stored, err := s.quotes.GetQuote(c.Request.Context(), req.QuoteID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "quote not found: " + req.QuoteID})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		quote = stored
	}

	tier := model.ComplexityTier(req.Complexity)
	if req.Complexity != "" && !tier.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complexity: " + req.Complexity})
		return
	}

	contract, err := s.engine.Generate(c.Request.Context(), quote, engine.Options{
		Complexity:     tier,
		Mode:           req.Mode,
		SaveToDatabase: !req.DryRun,
	})
	if err != nil {
		s.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

func (s *Server) writeGenerateError(c *gin.Context, err error) {
	var (
		asmErr   *common.AssemblyError
		conflict *common.ConflictError
	)
	switch {
	case errors.As(err, &asmErr), errors.As(err, &conflict):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrNoTemplates), errors.Is(err, common.ErrNoClauses):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error("contract generation failed", "error", err, "request_id", GetRequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contract generation failed"})
	}
}

func (s *Server) handleGetContract(c *gin.Context) {
	contract, err := s.contracts.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (s *Server) handleListTemplates(c *gin.Context) {
	templates, err := s.templates.ListActiveTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates, "count": len(templates)})
}

func (s *Server) handleSaveTemplate(c *gin.Context) {
	var template model.Template
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template: " + err.Error()})
		return
	}
	if err := template.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.templates.SaveTemplate(c.Request.Context(), &template); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": template.ID})
}

func (s *Server) handleSaveQuote(c *gin.Context) {
	var quote model.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote: " + err.Error()})
		return
	}
	if err := quote.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.quotes.SaveQuote(c.Request.Context(), &quote); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": quote.ID})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
