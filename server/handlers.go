package server

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/internal/logger"
	"github.com/lvillar/proposal/submission"
)

// warningsHeader carries the generation warnings, joined by "; ".
const warningsHeader = "X-Proposal-Warnings"

type handler struct {
	gen      *proposal.Generator
	log      *logger.Logger
	formPath string
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *handler) fail(c *gin.Context, status int, err error) {
	h.log.Error("generation failed",
		"request_id", c.GetString(requestIDKey),
		"path", c.Request.URL.Path,
		"error", fmt.Sprintf("%+v", err),
	)
	c.AbortWithStatusJSON(status, errorBody{Error: err.Error()})
}

func (h *handler) Index(c *gin.Context) {
	if h.formPath == "" {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{Error: "no input form configured"})
		return
	}
	if _, err := os.Stat(h.formPath); err != nil {
		h.fail(c, http.StatusNotFound, fmt.Errorf("input form unavailable: %w", err))
		return
	}
	c.File(h.formPath)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *handler) GenerateProposal(c *gin.Context) {
	h.generate(c, h.gen.Generate)
}

func (h *handler) GenerateProposalWord(c *gin.Context) {
	h.generate(c, h.gen.GenerateWord)
}

func (h *handler) generate(c *gin.Context, run func(context.Context, submission.Form) (*proposal.Artifact, error)) {
	form, err := readForm(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	art, err := run(c.Request.Context(), form)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	if len(art.Warnings) > 0 {
		c.Header(warningsHeader, headerSafe(strings.Join(art.Warnings, "; ")))
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.Name}))
	c.Data(http.StatusOK, art.ContentType, art.Data)
}

// readForm accepts a JSON object, or a url-encoded form post where every
// field is taken as a string.
func readForm(c *gin.Context) (submission.Form, error) {
	if strings.HasPrefix(c.ContentType(), "application/x-www-form-urlencoded") ||
		strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(8 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return submission.Form{}, fmt.Errorf("reading form: %w", err)
		}
		fields := make(map[string]any, len(c.Request.PostForm))
		for k, v := range c.Request.PostForm {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		return submission.New(fields), nil
	}
	return submission.Decode(c.Request.Body)
}

// headerSafe drops the characters a header value cannot carry.
func headerSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r > 0x7e {
			return -1
		}
		return r
	}, s)
}
