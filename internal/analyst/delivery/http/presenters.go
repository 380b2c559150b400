package http

import (
	"strings"

	"clientatech-analyst/internal/analyst"
)

// --- Request DTOs ---

type askReq struct {
	Question string `json:"question" binding:"required,max=2000"`
}

func (r askReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return analyst.ErrEmptyQuestion
	}
	return nil
}

func (r askReq) toInput() analyst.AskInput {
	return analyst.AskInput{Question: r.Question}
}

// --- Response DTOs ---

type askResp struct {
	Answer   string `json:"answer"`
	Intent   string `json:"intent"`
	SQL      string `json:"sql,omitempty"`
	RowCount int    `json:"row_count"`
	CacheHit bool   `json:"cache_hit"`
}

func (h *handler) newAskResp(out analyst.AskOutput) askResp {
	return askResp{
		Answer:   out.Answer,
		Intent:   out.Intent,
		SQL:      out.SQL,
		RowCount: out.RowCount,
		CacheHit: out.CacheHit,
	}
}
