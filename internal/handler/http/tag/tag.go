// Package tag provides the HTTP handler for the tag listing endpoint.
package tag

import (
	"net/http"

	"conduit/internal/handler/http/respond"
	tagUC "conduit/internal/usecase/tag"
)

// Response wraps the tag names in the "tags" envelope.
type Response struct {
	Tags []string `json:"tags" example:"dragons,training"`
}

type ListHandler struct{ Svc *tagUC.Service }

// ServeHTTP タグ一覧取得
// @Summary      タグ一覧取得
// @Description  記事で使用中のタグをアルファベット順に取得します
// @Tags         tags
// @Produce      json
// @Success      200 {object} Response "タグ一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/tags [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, Response{Tags: tags})
}

// Register registers the tag listing handler with the given mux.
func Register(mux *http.ServeMux, svc *tagUC.Service) {
	mux.Handle("GET    /api/tags", ListHandler{Svc: svc})
}
