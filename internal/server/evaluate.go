package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/decimal"
	"github.com/zephyrtronium/exactcalc/format"
)

// Codes for failures outside the evaluation engine.
const (
	CodeBadRequest    exactcalc.Code = "BAD_REQUEST"
	CodeLimitExceeded exactcalc.Code = "LIMIT_EXCEEDED"
)

// EvaluateRequest is the body of POST /v1/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
	// Precision overrides the server's default precision.
	Precision *int `json:"precision"`
}

// EvaluateResponse is the body of a successful evaluation.
type EvaluateResponse struct {
	Result  decimal.Decimal `json:"result"`
	Grouped string          `json:"grouped"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code    exactcalc.Code `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeBadRequest, Message: "error parsing request body"})
		return
	}
	prec := s.prec
	if req.Precision != nil {
		prec = *req.Precision
	}
	lim := s.cfg.Limits
	if prec < 0 || prec > lim.MaxPrecision {
		s.reject(c, CodeLimitExceeded, "precision must be between 0 and "+strconv.Itoa(lim.MaxPrecision))
		return
	}
	if n := utf8.RuneCountInString(req.Expression); n > lim.MaxLength {
		s.reject(c, CodeLimitExceeded, "expression is longer than "+strconv.Itoa(lim.MaxLength)+" characters")
		return
	}

	toks, err := exactcalc.Tokenize(req.Expression)
	if err != nil {
		s.fail(c, err)
		return
	}
	if depth(toks) > lim.MaxDepth {
		s.reject(c, CodeLimitExceeded, "parentheses nest deeper than "+strconv.Itoa(lim.MaxDepth))
		return
	}
	tree, err := exactcalc.Parse(toks)
	if err != nil {
		s.fail(c, err)
		return
	}
	r, err := exactcalc.Eval(tree, exactcalc.Precision(prec))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EvaluateResponse{Result: r, Grouped: format.Thousands(r.String())})
}

// fail reports an error from the engine.
func (s *Server) fail(c *gin.Context, err error) {
	s.reject(c, exactcalc.CodeOf(err), err.Error())
}

func (s *Server) reject(c *gin.Context, code exactcalc.Code, msg string) {
	s.log.Debug("evaluation rejected",
		slog.String("requestID", c.GetString("requestID")),
		slog.String("code", string(code)),
		slog.String("error", msg),
	)
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Code: code, Message: msg})
}

// depth gives the deepest parenthesis nesting in a token sequence. Unmatched
// brackets are left for the parser to report.
func depth(toks []exactcalc.Token) int {
	var d, m int
	for _, tok := range toks {
		if tok.Kind != exactcalc.TokenParen {
			continue
		}
		switch tok.Text {
		case "(":
			d++
			m = max(m, d)
		case ")":
			d--
		}
	}
	return m
}
