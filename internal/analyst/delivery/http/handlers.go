package http

import (
	"github.com/gin-gonic/gin"

	"clientatech-analyst/internal/model"
	"clientatech-analyst/pkg/response"
)

// Ask godoc
// @Summary     Ask the analyst a question
// @Description Runs a natural-language question through intent routing, SQL generation and synthesis, returning the answer plus the pipeline trace.
// @Tags        Analyst
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable - could not generate SQL"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analyst/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{
		RequestID: c.GetString(model.ContextKeyRequestID),
		Channel:   "http",
	}

	output, err := h.uc.Ask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAskResp(output))
}
